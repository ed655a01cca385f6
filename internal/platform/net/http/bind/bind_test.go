package bind

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "floaty/internal/platform/errors"
	kit "floaty/internal/platform/testkit"

	"github.com/go-playground/validator/v10"
)

type textReq struct {
	Text    string `json:"text" validate:"required"`
	Context string `json:"context,omitempty" validate:"max=200"`
}

type updateReq struct {
	Field string `json:"field" validate:"oneof=speechEnabled autoSave darkMode notifications"`
	Limit int    `json:"limit" validate:"min=1"`
}

func post(body string) *http.Request {
	return httptest.NewRequest("POST", "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[textReq](post(`{"text":"Buy milk","context":"errands"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "Buy milk" || got.Context != "errands" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		opts  []JSONOptions
		code  perr.ErrorCode
		msg   string
		field string
	}{
		{name: "empty body", body: "", code: perr.ErrorCodeJSON, msg: "empty body"},
		{name: "whitespace body", body: " \n", code: perr.ErrorCodeJSON, msg: "empty body"},
		{name: "invalid json", body: `{"text":`, code: perr.ErrorCodeJSON, msg: "invalid JSON"},
		{name: "unknown field", body: `{"text":"a","x":1}`, code: perr.ErrorCodeJSON, msg: "unknown field"},
		{name: "trailing data", body: `{"text":"a"} {}`, code: perr.ErrorCodeJSON, msg: "trailing"},
		{name: "wrong type", body: `{"text":5}`, code: perr.ErrorCodeJSON, msg: "invalid JSON"},
		{name: "missing text", body: `{}`, code: perr.ErrorCodeValidation, msg: "Text is required", field: "text"},
		{name: "blank text", body: `{"text":""}`, code: perr.ErrorCodeValidation, msg: "Text is required", field: "text"},
		{
			name: "too large", body: `{"text":"` + strings.Repeat("a", 64) + `"}`,
			opts: []JSONOptions{{MaxBytes: 16, DisallowUnknown: true}},
			code: perr.ErrorCodeJSON, msg: "exceeds 16 bytes",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[textReq](post(tc.body), tc.opts...)
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
			kit.MustContain(t, err.Error(), tc.msg)
			if e, _ := perr.As(err); e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestParseJSON_BodyAtLimit(t *testing.T) {
	body := `{"text":"abcd"}`
	opts := JSONOptions{MaxBytes: int64(len(body)), DisallowUnknown: true}
	if _, err := ParseJSON[textReq](post(body), opts); err != nil {
		t.Fatalf("body of exactly MaxBytes should pass: %v", err)
	}
}

func TestParseJSON_UnknownAllowed(t *testing.T) {
	got, err := ParseJSON[textReq](post(`{"text":"a","extra":true}`), JSONOptions{})
	if err != nil || got.Text != "a" {
		t.Fatalf("got %+v err %v", got, err)
	}
}

func TestParseJSON_OptionalEmptyBody(t *testing.T) {
	type filter struct {
		Query string `json:"query"`
	}
	req := httptest.NewRequest("POST", "/", http.NoBody)
	got, err := ParseJSON[filter](req, Optional())
	if err != nil || got != (filter{}) {
		t.Fatalf("got %+v err %v", got, err)
	}

	// a required field still fails on an empty optional body
	if _, err := ParseJSON[textReq](post(""), Optional()); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestParseJSON_NilBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)
	req.Body = nil
	if _, err := ParseJSON[textReq](req); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_NonStructPayload(t *testing.T) {
	got, err := ParseJSON[[]string](post(`["Buy milk","Call mom"]`))
	if err != nil || len(got) != 2 {
		t.Fatalf("got %#v err %v", got, err)
	}
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	if _, err := ParseJSON[textReq](post(`{"text":"a"}`)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error from seam, got %v", err)
	}
}

func TestTranslations(t *testing.T) {
	tests := []struct {
		in    any
		field string
		msg   string
	}{
		{updateReq{Field: "fontSize", Limit: 1}, "field", "Field must be one of [speechEnabled autoSave darkMode notifications]"},
		{updateReq{Field: "autoSave", Limit: 0}, "limit", "Limit must be at least 1"},
		{textReq{Text: "a", Context: strings.Repeat("c", 201)}, "context", "Context must be at most 200"},
	}
	for _, tc := range tests {
		field, msg := ValidationFieldAndMessage(Get().Validator.Struct(tc.in))
		if field != tc.field || msg != tc.msg {
			t.Fatalf("got (%q, %q), want (%q, %q)", field, msg, tc.field, tc.msg)
		}
	}
}

func TestTagNames(t *testing.T) {
	type s struct {
		Dash   string `json:"-" validate:"required"`
		NoTag  string `validate:"required"`
		Option string `json:"opt,omitempty" validate:"required"`
	}
	err := Get().Validator.Struct(s{})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 3 {
		t.Fatalf("want 3 errors, got %v", err)
	}
	want := []string{"Dash", "NoTag", "opt"}
	for i, fe := range verrs {
		if fe.Field() != want[i] {
			t.Fatalf("field %d = %q, want %q", i, fe.Field(), want[i])
		}
	}
}

func TestValidationFieldAndMessage_Plain(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil: got (%q, %q)", f, m)
	}
	if f, m := ValidationFieldAndMessage(errors.New("x")); f != "" || m != "x" {
		t.Fatalf("plain: got (%q, %q)", f, m)
	}
}

func TestRegisterValidation(t *testing.T) {
	if err := RegisterValidation("notblank_floaty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	type s struct {
		V string `json:"v" validate:"notblank_floaty"`
	}
	if err := Get().Validator.Struct(s{V: "  "}); err == nil {
		t.Fatalf("expected custom rule to fail")
	}
	if err := Get().Validator.Struct(s{V: "ok"}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

package remotetext

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"floaty/internal/core/digest"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(Options{BaseURL: srv.URL + "/", Timeout: 2 * time.Second, RetryBase: time.Millisecond})
	c.sleep = func(time.Duration) {}
	return c
}

func replyWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

const longText = "Call the dentist tomorrow please and then buy milk on the way home"

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
		want string
	}{
		{"bare reply", replyWith(200, `{"title":"Dentist and milk"}`), "Dentist and milk"},
		{"enveloped reply", replyWith(200, `{"status_code":200,"data":{"title":"From envelope"}}`), "From envelope"},
		{"empty title", replyWith(200, `{"title":""}`), digest.UntitledNote},
		{"long title clamped", replyWith(200, `{"title":"`+strings.Repeat("t", 60)+`"}`), strings.Repeat("t", 47) + "..."},
		{"server error falls back", replyWith(500, `{"error":"boom"}`), "[work] Call the dentist tomorrow please and"},
		{"bad json falls back", replyWith(200, `not json`), "[work] Call the dentist tomorrow please and"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newServer(t, tc.h)
			if got := c.GenerateTitle(context.Background(), longText, "work"); got != tc.want {
				t.Fatalf("title = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGenerateSummary(t *testing.T) {
	three := "First point here. Second point here. Third point here."
	tests := []struct {
		name string
		h    http.HandlerFunc
		want string
	}{
		{"remote summary", replyWith(200, `{"summary":"Short."}`), "Short."},
		{"empty summary", replyWith(200, `{"data":{"summary":"  "}}`), digest.NoSummary},
		{"fallback", replyWith(404, `{}`), "First point here. Third point here."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newServer(t, tc.h)
			if got := c.GenerateSummary(context.Background(), three); got != tc.want {
				t.Fatalf("summary = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractActionItems(t *testing.T) {
	var got map[string]string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract-tasks" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		replyWith(200, `{"tasks":["Book flights","Pack"]}`)(w, r)
	})
	tasks := c.ExtractActionItems(context.Background(), "trip prep", "travel")
	if !reflect.DeepEqual(tasks, []string{"Book flights", "Pack"}) {
		t.Fatalf("tasks = %#v", tasks)
	}
	if got["text"] != "trip prep" || got["context"] != "travel" {
		t.Fatalf("request body = %#v", got)
	}

	c = newServer(t, replyWith(200, `{}`))
	if tasks := c.ExtractActionItems(context.Background(), "x", ""); tasks == nil || len(tasks) != 0 {
		t.Fatalf("missing tasks should be empty, got %#v", tasks)
	}

	c = newServer(t, replyWith(400, `{}`))
	if tasks := c.ExtractActionItems(context.Background(), "TODO: finish report", ""); !reflect.DeepEqual(tasks, []string{"Finish report"}) {
		t.Fatalf("fallback tasks = %#v", tasks)
	}
}

func TestRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			replyWith(503, `{}`)(w, r)
			return
		}
		replyWith(200, `{"title":"Second try"}`)(w, r)
	})
	if got := c.GenerateTitle(context.Background(), "x", ""); got != "Second try" {
		t.Fatalf("title = %q", got)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}

	calls.Store(0)
	c = newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		replyWith(400, `{}`)(w, r)
	})
	_ = c.GenerateTitle(context.Background(), "x", "")
	if calls.Load() != 1 {
		t.Fatalf("4xx should not retry, calls = %d", calls.Load())
	}
}

func TestOffline(t *testing.T) {
	c := New(Options{})
	if !c.Offline() {
		t.Fatal("empty base url should be offline")
	}
	if got := c.GenerateTitle(context.Background(), "hello world", ""); got != "hello world" {
		t.Fatalf("offline title = %q", got)
	}
	if got := c.GenerateSummary(context.Background(), "One. Two."); got != digest.AlreadyConcise {
		t.Fatalf("offline summary = %q", got)
	}
	if got := c.ExtractActionItems(context.Background(), "Buy milk", ""); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Fatalf("offline tasks = %#v", got)
	}
}

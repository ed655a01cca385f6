package module

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"floaty/internal/modkit"
	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/testkit"
	vaultrepo "floaty/internal/services/vault/repo"
	vaultsvc "floaty/internal/services/vault/service"
)

func TestRoutes(t *testing.T) {
	testkit.Serial(t)
	vault := vaultsvc.New(vaultrepo.NewMemory(), nil)
	r := chi.NewRouter()
	New(modkit.Deps{}, modkit.WithPorts(Ports{Vault: vault})).MountRoutes(phttp.AdaptChi(r))

	rec := testkit.Do(t, r, http.MethodPost, "/notes/compose", `{"text":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank compose: %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), "nothing to save")

	rec = testkit.Do(t, r, http.MethodPost, "/notes/compose", map[string]any{"text": "Buy milk", "extractTasks": true})
	if rec.Code != http.StatusCreated {
		t.Fatalf("compose: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		} `json:"data"`
	}
	testkit.DecodeJSON(t, rec, &created)
	if created.Data.Title != "Buy milk" || created.Data.ID == 0 {
		t.Fatalf("created = %+v", created.Data)
	}

	rec = testkit.Do(t, r, http.MethodPost, "/notes/capture", map[string]any{"text": "Selected", "tasks": []string{"Call Sam"}})
	testkit.MustContain(t, rec.Body.String(), `"success":true`)

	rec = testkit.Do(t, r, http.MethodPost, "/notes/list", nil)
	testkit.MustContain(t, rec.Body.String(), `"total":2`)
	rec = testkit.Do(t, r, http.MethodPost, "/notes/list", `{"q":"milk"}`)
	testkit.MustContain(t, rec.Body.String(), `"total":1`)

	rec = testkit.Do(t, r, http.MethodPost, "/notes/summarize", map[string]any{"id": created.Data.ID})
	testkit.MustContain(t, rec.Body.String(), "Text is already concise.")

	rec = testkit.Do(t, r, http.MethodPost, "/notes/delete", map[string]any{"id": created.Data.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec = testkit.Do(t, r, http.MethodPost, "/notes/delete", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("delete without id: %d", rec.Code)
	}
}

func TestCapture_RejectsOutOfRangeID(t *testing.T) {
	testkit.Serial(t)
	vault := vaultsvc.New(vaultrepo.NewMemory(), nil)
	r := chi.NewRouter()
	New(modkit.Deps{}, modkit.WithPorts(Ports{Vault: vault})).MountRoutes(phttp.AdaptChi(r))

	tests := []struct {
		name string
		body string
		want string
	}{
		{"near max int64", `{"id":9223372036854775000,"text":"Selected"}`, "must be at most"},
		{"above 2^53", `{"id":9007199254740993,"text":"Selected"}`, "must be at most"},
		{"negative", `{"id":-1,"text":"Selected"}`, "must be at least"},
	}
	for _, tc := range tests {
		rec := testkit.Do(t, r, http.MethodPost, "/notes/capture", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d %s", tc.name, rec.Code, rec.Body.String())
		}
		testkit.MustContain(t, rec.Body.String(), tc.want)
	}

	rec := testkit.Do(t, r, http.MethodPost, "/notes/capture", `{"id":9007199254740992,"text":"Selected"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("id at the bound: %d %s", rec.Code, rec.Body.String())
	}
	if id := vault.NextID(); id <= 0 {
		t.Fatalf("generator wrapped after a bounded capture: %d", id)
	}
}

package module

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"floaty/internal/modkit"
	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/testkit"
	vaultdom "floaty/internal/services/vault/domain"
	vaultrepo "floaty/internal/services/vault/repo"
	vaultsvc "floaty/internal/services/vault/service"
)

func TestSettingsRoutes(t *testing.T) {
	testkit.Serial(t)
	vault := vaultsvc.New(vaultrepo.NewMemory(), nil)
	var reasons []string
	vault.Subscribe(func(_ context.Context, c vaultdom.Change) { reasons = append(reasons, c.Reason) })

	r := chi.NewRouter()
	New(modkit.Deps{}, modkit.WithPorts(Ports{Vault: vault})).MountRoutes(phttp.AdaptChi(r))

	type env struct {
		Data vaultdom.Settings `json:"data"`
	}
	var got env
	rec := testkit.Do(t, r, http.MethodGet, "/settings/", nil)
	testkit.DecodeJSON(t, rec, &got)
	if got.Data != vaultdom.DefaultSettings() {
		t.Fatalf("defaults = %+v", got.Data)
	}

	rec = testkit.Do(t, r, http.MethodPost, "/settings/update", `{"darkMode":true,"speechEnabled":false}`)
	got = env{}
	testkit.DecodeJSON(t, rec, &got)
	want := vaultdom.Settings{SpeechEnabled: false, AutoSave: true, DarkMode: true, Notifications: true}
	if got.Data != want {
		t.Fatalf("patched = %+v", got.Data)
	}

	rec = testkit.Do(t, r, http.MethodPost, "/settings/update", nil)
	got = env{}
	testkit.DecodeJSON(t, rec, &got)
	if got.Data != want {
		t.Fatalf("empty patch changed settings: %+v", got.Data)
	}
	if len(reasons) != 1 || reasons[0] != vaultdom.ReasonSettingsUpdated {
		t.Fatalf("reasons = %v", reasons)
	}

	rec = testkit.Do(t, r, http.MethodPost, "/settings/update", `{"theme":"dark"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: %d", rec.Code)
	}
}

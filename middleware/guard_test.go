package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	boardAuth "github.com/MrEthical07/boardAuth"
)

type stubAuthorizer struct {
	method boardAuth.AuthMethod
	calls  int
}

func (s *stubAuthorizer) Authorize(_ context.Context, _ http.Header) boardAuth.AuthMethod {
	s.calls++
	return s.method
}

func TestGuardRejectsUnauthorized(t *testing.T) {
	auth := &stubAuthorizer{method: boardAuth.AuthNone}
	called := false
	h := Guard(auth)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/board", nil))

	if called {
		t.Fatal("expected next handler not to run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Unauthorized"`) {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
}

func TestGuardPassesMethodInContext(t *testing.T) {
	auth := &stubAuthorizer{method: boardAuth.AuthSession}
	var got boardAuth.AuthMethod
	h := Guard(auth)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = AuthMethodFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/board", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != boardAuth.AuthSession {
		t.Fatalf("expected session method in context, got %s", got)
	}
}

func TestGuardNilEngine(t *testing.T) {
	rec := httptest.NewRecorder()
	Guard(nil)(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGuardWithEngineAPIKey(t *testing.T) {
	cfg := boardAuth.DefaultConfig()
	cfg.Auth.APIKey = "board-key"
	engine, err := boardAuth.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	h := Guard(engine)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/board", nil)
	req.Header.Set("Authorization", "Bearer board-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with api key, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/board", nil)
	req.Header.Set("Authorization", "Bearer board-kez")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong key, got %d", rec.Code)
	}
}

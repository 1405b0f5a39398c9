package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAdminToken_AllowsMatchingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdminToken("secret-token", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/categories/recalculate", nil)
	req.Header.Set("X-Admin-Token", "secret-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("expected next handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRequireAdminToken_RejectsWrongToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run")
	})
	handler := RequireAdminToken("secret-token", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/categories/recalculate", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAdminToken_MissingConfiguredToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run")
	})
	handler := RequireAdminToken("  ", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/categories/recalculate", nil)
	req.Header.Set("X-Admin-Token", "anything")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

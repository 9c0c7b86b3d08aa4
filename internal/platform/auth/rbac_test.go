package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, role string, required ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
	if role != "" {
		ctx := context.WithValue(req.Context(), RoleKey, role)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(required...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireRole_Match(t *testing.T) {
	if err := runRBAC(t, "user", "user"); err != nil {
		t.Errorf("expected matching role to pass, got %v", err)
	}
}

func TestRequireRole_AdminPassesEverything(t *testing.T) {
	if err := runRBAC(t, "admin", "user"); err != nil {
		t.Errorf("expected admin to pass, got %v", err)
	}
}

func TestRequireRole_Mismatch(t *testing.T) {
	err := runRBAC(t, "user", "admin")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestRequireRole_NoRole(t *testing.T) {
	err := runRBAC(t, "", "admin")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 without a role, got %v", err)
	}
}

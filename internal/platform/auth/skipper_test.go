package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPublicPathSkipper(t *testing.T) {
	skip := PublicPathSkipper()
	e := echo.New()

	cases := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/health/db", true},
		{"/api/content/pricing", true},
		{"/api/content/faq", true},
		{"/api/auth/signup", true},
		{"/api/auth/login", true},
		{"/api/auth/me", false},
		{"/api/demo/patient", false},
		{"/api/demo/usage", false},
		{"/api/admin/accounts", false},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if got := skip(c); got != tc.want {
			t.Errorf("skip(%s) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// PublicPathSkipper returns a skipper for SessionMiddleware that exempts
// the public surface: health checks, the marketing content catalog, and
// the auth endpoints themselves.
func PublicPathSkipper() func(echo.Context) bool {
	prefixes := []string{
		"/health",
		"/api/content/",
		"/api/auth/signup",
		"/api/auth/login",
	}
	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		for _, p := range prefixes {
			if path == strings.TrimSuffix(p, "/") || strings.HasPrefix(path, p) {
				return true
			}
		}
		return false
	}
}

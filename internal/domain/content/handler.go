package content

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the public marketing content catalog. No auth, no
// database: the content is compiled in and the same for every caller.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/content")
	g.GET("/pricing", h.Pricing)
	g.GET("/features", h.Features)
	g.GET("/faq", h.FAQ)
}

func (h *Handler) Pricing(c echo.Context) error {
	cat := CatalogFor(c.QueryParam("lang"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"locale": cat.Locale,
		"plans":  cat.Plans,
	})
}

func (h *Handler) Features(c echo.Context) error {
	cat := CatalogFor(c.QueryParam("lang"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"locale":   cat.Locale,
		"features": cat.Features,
	})
}

func (h *Handler) FAQ(c echo.Context) error {
	cat := CatalogFor(c.QueryParam("lang"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"locale": cat.Locale,
		"faq":    cat.FAQ,
	})
}

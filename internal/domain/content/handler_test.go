package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func doGet(t *testing.T, target string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestPricing(t *testing.T) {
	h := NewHandler()
	rec := doGet(t, "/api/content/pricing", h.Pricing)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Locale string `json:"locale"`
		Plans  []Plan `json:"plans"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Locale != "en" {
		t.Errorf("expected locale en, got %s", resp.Locale)
	}
	if len(resp.Plans) != 3 {
		t.Errorf("expected 3 plans, got %d", len(resp.Plans))
	}

	var popular int
	for _, p := range resp.Plans {
		if p.Popular {
			popular++
		}
	}
	if popular != 1 {
		t.Errorf("expected exactly one popular plan, got %d", popular)
	}
}

func TestFeatures(t *testing.T) {
	h := NewHandler()
	rec := doGet(t, "/api/content/features", h.Features)
	var resp struct {
		Features []Feature `json:"features"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Features) == 0 {
		t.Error("expected a non-empty feature list")
	}
}

func TestFAQ(t *testing.T) {
	h := NewHandler()
	rec := doGet(t, "/api/content/faq", h.FAQ)
	var resp struct {
		FAQ []FAQItem `json:"faq"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.FAQ) == 0 {
		t.Error("expected a non-empty FAQ")
	}
}

func TestCatalogFor_LocaleFallback(t *testing.T) {
	if CatalogFor("en").Locale != "en" {
		t.Error("expected english catalog")
	}
	if CatalogFor("ar").Locale != "ar" {
		t.Error("expected arabic catalog")
	}
	// Not-yet-authored locales fall back to the default.
	if CatalogFor("fr").Locale != DefaultLocale {
		t.Error("expected fallback to default locale for fr")
	}
	if CatalogFor("klingon").Locale != DefaultLocale {
		t.Error("expected fallback to default locale for unknown input")
	}
}

func TestPricing_UnknownLangFallsBack(t *testing.T) {
	h := NewHandler()
	rec := doGet(t, "/api/content/pricing?lang=xx", h.Pricing)
	var resp struct {
		Locale string `json:"locale"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Locale != DefaultLocale {
		t.Errorf("expected fallback locale, got %s", resp.Locale)
	}
}

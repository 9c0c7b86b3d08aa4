package content

// Locales supported by the marketing site. English and Arabic copy ship
// with the API; fr and es fall back until their catalogs are authored
// (translation management lives outside this service).
var Locales = []string{"en", "ar", "fr", "es"}

const DefaultLocale = "en"

// Plan is one pricing tier.
type Plan struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceMonthly *float64 `json:"price_monthly,omitempty"` // nil for contact-us tiers
	PriceYearly  *float64 `json:"price_yearly,omitempty"`
	Currency     string   `json:"currency"`
	Popular      bool     `json:"popular"`
	Features     []string `json:"features"`
	CTA          string   `json:"cta"`
}

// Feature is one entry of the feature showcase.
type Feature struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FAQItem is one frequently-asked question.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Catalog bundles all marketing content for one locale.
type Catalog struct {
	Locale   string    `json:"locale"`
	Plans    []Plan    `json:"plans"`
	Features []Feature `json:"features"`
	FAQ      []FAQItem `json:"faq"`
}

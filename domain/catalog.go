package domain

// CatalogSummary feeds form-based front ends: available brands and a price
// slider ceiling derived from the most expensive record.
type CatalogSummary struct {
	Brands      []string `json:"brands"`
	MaxPriceUSD float64  `json:"max_price_usd"`
	TotalShoes  int      `json:"total_shoes"`
}

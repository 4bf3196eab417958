package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"shoeScout/domain"
	"shoeScout/pkg/logger"
)

// CatalogRepository loads the shoe catalog and its market sidecar from
// whatever backing store is configured.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) ([]domain.ShoeRecord, error)
	LoadMarketContext(ctx context.Context) (domain.MarketContext, error)
}

// CatalogService holds the catalog in memory for the lifetime of the
// process. Loading happens once at construction; all accessors are
// read-only afterwards and safe for concurrent use.
type CatalogService struct {
	records []domain.ShoeRecord
	market  domain.MarketContext
}

// NewCatalogService loads the catalog eagerly. A missing or malformed
// catalog is fatal; missing market context is not, the engine degrades to
// its placeholder sub-score.
func NewCatalogService(ctx context.Context, repo CatalogRepository) (*CatalogService, error) {
	records, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load catalog: no records")
	}

	market, err := repo.LoadMarketContext(ctx)
	if err != nil {
		logger.Warn("market context unavailable, continuing without it", "error", err.Error())
		market = domain.MarketContext{}
	}

	logger.Info("catalog loaded", "shoes", len(records), "market_entries", len(market))

	return &CatalogService{records: records, market: market}, nil
}

func (s *CatalogService) Records() []domain.ShoeRecord {
	return s.records
}

func (s *CatalogService) MarketContext() domain.MarketContext {
	return s.market
}

// Brands returns the distinct brand names in catalog casing, sorted, with
// "Any" prepended for client dropdowns.
func (s *CatalogService) Brands() []string {
	seen := make(map[string]struct{})
	brands := []string{}
	for _, r := range s.records {
		if _, ok := seen[r.Brand]; ok {
			continue
		}
		seen[r.Brand] = struct{}{}
		brands = append(brands, r.Brand)
	}
	sort.Strings(brands)
	return append([]string{"Any"}, brands...)
}

// Summary reports catalog extents for client form defaults. MaxPriceUSD has
// headroom above the priciest shoe so a budget slider can clear the whole
// catalog.
func (s *CatalogService) Summary() domain.CatalogSummary {
	maxPrice := 0.0
	for _, r := range s.records {
		if r.PriceUSD > maxPrice {
			maxPrice = r.PriceUSD
		}
	}
	return domain.CatalogSummary{
		Brands:      s.Brands(),
		MaxPriceUSD: maxPrice + 50,
		TotalShoes:  len(s.records),
	}
}

// Find locates a shoe by brand and model, case-insensitively.
func (s *CatalogService) Find(brand, model string) (domain.ShoeRecord, bool) {
	for _, r := range s.records {
		if strings.EqualFold(r.Brand, brand) && strings.EqualFold(r.Model, model) {
			return r, true
		}
	}
	return domain.ShoeRecord{}, false
}

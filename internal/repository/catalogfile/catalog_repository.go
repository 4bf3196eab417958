package catalogfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shoeScout/domain"
)

// CatalogFileRepository loads the catalog and its market sidecar from JSON
// files on disk.
type CatalogFileRepository struct {
	catalogPath string
	marketPath  string
}

func NewCatalogFileRepository(catalogPath, marketPath string) *CatalogFileRepository {
	return &CatalogFileRepository{
		catalogPath: catalogPath,
		marketPath:  marketPath,
	}
}

func (r *CatalogFileRepository) LoadCatalog(_ context.Context) ([]domain.ShoeRecord, error) {
	raw, err := os.ReadFile(r.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var records []domain.ShoeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return records, nil
}

// marketEntry mirrors the sidecar file layout, keyed by "Brand_Model".
type marketEntry struct {
	Reviews struct {
		Count         int     `json:"count"`
		AverageRating float64 `json:"average_rating"`
	} `json:"reviews"`
	PopularityScore float64 `json:"popularity_score"`
}

func (r *CatalogFileRepository) LoadMarketContext(_ context.Context) (domain.MarketContext, error) {
	raw, err := os.ReadFile(r.marketPath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.MarketContext{}, nil
		}
		return nil, fmt.Errorf("read market context file: %w", err)
	}

	var entries map[string]marketEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse market context file: %w", err)
	}

	market := make(domain.MarketContext, len(entries))
	for key, e := range entries {
		market[key] = domain.MarketData{
			ReviewCount:     e.Reviews.Count,
			Rating:          e.Reviews.AverageRating,
			PopularityScore: e.PopularityScore,
		}
	}
	return market, nil
}

package postgres

import (
	"context"
	"fmt"

	"shoeScout/domain"

	"gorm.io/gorm"
)

// ShoeRepository loads the catalog from postgres. Row order follows id so a
// reloaded catalog keeps the same candidate ordering as the seed data.
type ShoeRepository struct {
	DB *gorm.DB
}

func NewShoeRepository(db *gorm.DB) *ShoeRepository {
	return &ShoeRepository{
		DB: db,
	}
}

func (r *ShoeRepository) LoadCatalog(ctx context.Context) ([]domain.ShoeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.ShoeRecord
	err := r.DB.WithContext(ctx).Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shoe catalog: %w", err)
	}

	return records, nil
}

func (r *ShoeRepository) LoadMarketContext(ctx context.Context) (domain.MarketContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.MarketRecord
	err := r.DB.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load market context: %w", err)
	}

	market := make(domain.MarketContext, len(rows))
	for _, row := range rows {
		market[row.ShoeKey] = domain.MarketData{
			ReviewCount:     row.ReviewCount,
			Rating:          row.Rating,
			PopularityScore: row.PopularityScore,
		}
	}

	return market, nil
}

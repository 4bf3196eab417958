package recommend

import (
	"fmt"
	"sort"

	"shoeScout/domain"
)

// AdjustRanking applies the multiplicative post-adjustments to already-scored
// candidates and re-sorts them. Adjustments are multiplicative so the
// proportional relationships between candidates survive.
//
// The composed score is deliberately NOT re-clamped here: compounding bonuses
// may push it above 1.0, and the debug surface reports that raw value. The
// API boundary clamps once when building response items.
//
// Every applied factor is recorded as an audit token on the candidate.
func AdjustRanking(candidates []domain.ScoredCandidate, req domain.RecommendationRequest, market domain.MarketContext) []domain.ScoredCandidate {
	budgetWeight := req.BudgetWeight()

	for i := range candidates {
		c := &candidates[i]
		original := c.EnhancedScore
		adjustments := []string{}
		multiplier := 1.0

		// budget ratio factor
		if req.CostLimiter.Enabled && req.CostLimiter.MaxUSD > 0 {
			ratio := c.PriceUSD / req.CostLimiter.MaxUSD
			switch {
			case ratio > 1.2:
				multiplier *= 0.7
				adjustments = append(adjustments, fmt.Sprintf("budget_penalty_70%%_(%.2fx_limit)", ratio))
			case ratio > 1.0:
				multiplier *= 0.9
				adjustments = append(adjustments, fmt.Sprintf("slight_budget_penalty_90%%_(%.2fx_limit)", ratio))
			case ratio <= 0.8:
				multiplier *= 1.1
				adjustments = append(adjustments, fmt.Sprintf("value_bonus_110%%_(%.2fx_limit)", ratio))
			}
		}

		// blend the budget factor toward 1.0 by the requested weight:
		// 0 disables it, 1 leaves it unchanged, >1 exaggerates it
		if budgetWeight != 1.0 {
			w := budgetWeight
			if w < 0 {
				w = 0
			}
			multiplier = 1.0 + (multiplier-1.0)*w
		}

		// market popularity factor, only when data exists for this shoe
		if data, ok := market[c.Key()]; ok {
			switch {
			case data.ReviewCount > 100 && data.Rating >= 4.5:
				multiplier *= 1.1
				adjustments = append(adjustments, fmt.Sprintf("high_rating_bonus_110%%_(%d_reviews_%.1f_stars)", data.ReviewCount, data.Rating))
			case data.ReviewCount > 50 && data.Rating >= 4.0:
				multiplier *= 1.05
				adjustments = append(adjustments, fmt.Sprintf("popularity_bonus_105%%_(%d_reviews_%.1f_stars)", data.ReviewCount, data.Rating))
			}
		}

		// specialty factor
		if req.IntendedUse.Races && c.PlateName() == domain.PlateCarbon {
			multiplier *= 1.05
			adjustments = append(adjustments, "carbon_plate_racing_bonus_105%")
		}

		c.EnhancedScore = original * multiplier
		c.OriginalScore = original
		c.AdjustmentMultiplier = multiplier
		c.ScoreAdjustments = adjustments
	}

	SortByScore(candidates)
	return candidates
}

// SortByScore orders candidates by descending score. The sort is stable so
// exact ties keep their catalog relative order.
func SortByScore(candidates []domain.ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EnhancedScore > candidates[j].EnhancedScore
	})
}

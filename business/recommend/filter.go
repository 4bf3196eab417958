package recommend

import (
	"strings"

	"shoeScout/domain"
)

// Filter reduces the catalog to records satisfying all hard constraints,
// preserving catalog order among survivors. The catalog slice is never
// mutated.
//
// When the cost limiter is on, records above the ceiling are still admitted
// as "stretch" options, but only the first MaxOverBudget of them in catalog
// order.
func Filter(catalog []domain.ShoeRecord, req domain.RecommendationRequest, cfg Config) []domain.ShoeRecord {
	survivors := make([]domain.ShoeRecord, 0, len(catalog))
	overBudget := 0

	for _, shoe := range catalog {
		if !passesBrandFilter(shoe, req) {
			continue
		}

		if !req.CarbonAllowed() && shoe.PlateName() == domain.PlateCarbon {
			continue
		}

		if !matchesIntendedUse(shoe, req.IntendedUse) {
			continue
		}

		if req.CostLimiter.Enabled && shoe.PriceUSD > req.CostLimiter.MaxUSD {
			if overBudget >= cfg.MaxOverBudget {
				continue
			}
			overBudget++
		}

		survivors = append(survivors, shoe)
	}

	return survivors
}

// passesBrandFilter checks the allow-list. "Any" disables the restriction,
// matching the brand list served by the catalog endpoints.
func passesBrandFilter(shoe domain.ShoeRecord, req domain.RecommendationRequest) bool {
	if len(req.BrandPreferences) == 0 {
		return true
	}

	for _, b := range req.BrandPreferences {
		if strings.EqualFold(b, "Any") || strings.EqualFold(shoe.Brand, b) {
			return true
		}
	}

	return false
}

// matchesIntendedUse maps each requested activity onto catalog categories.
// The catalog carries no trail shoes, so trail requests never match; this is
// a policy decision, not a data gap.
func matchesIntendedUse(shoe domain.ShoeRecord, use domain.IntendedUse) bool {
	if use.Trail {
		return false
	}

	// no activity selected: default to daily/easy trainers
	if !use.Any() {
		return shoe.HasAnyCategory(domain.CategoryDaily, domain.CategoryEasy)
	}

	if use.EasyRuns && shoe.HasAnyCategory(domain.CategoryDaily, domain.CategoryEasy) {
		return true
	}
	if use.TempoRuns && shoe.HasAnyCategory(domain.CategoryTempo, domain.CategoryRace) {
		return true
	}
	if use.LongRuns && shoe.HasAnyCategory(domain.CategoryLong, domain.CategoryDaily) {
		return true
	}
	if use.Races && shoe.HasCategory(domain.CategoryRace) {
		return true
	}

	return false
}

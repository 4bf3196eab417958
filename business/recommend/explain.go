package recommend

import (
	"fmt"
	"strings"

	"shoeScout/domain"
)

// RuleExplanation builds the deterministic rule-based justification shown
// next to the generated one.
func RuleExplanation(shoe domain.ShoeRecord, req domain.RecommendationRequest, market domain.MarketContext) string {
	reasons := []string{}
	use := req.IntendedUse

	// category match
	switch {
	case shoe.HasCategory(domain.CategoryRace) && use.Races:
		reasons = append(reasons, "Optimized for racing performance")
	case shoe.HasCategory(domain.CategoryTempo) && use.TempoRuns:
		reasons = append(reasons, "Designed for tempo and threshold training")
	case shoe.HasAnyCategory(domain.CategoryDaily, domain.CategoryEasy) && use.EasyRuns:
		reasons = append(reasons, "Perfect for daily training and easy runs")
	}

	// plate technology
	plate := shoe.PlateName()
	if plate == domain.PlateCarbon && use.Races {
		reasons = append(reasons, "Carbon plate provides racing efficiency")
	} else if plate == domain.PlateNylon && use.TempoRuns {
		reasons = append(reasons, "Nylon plate adds responsiveness for speed work")
	}

	// weight
	if shoe.WeightG != nil {
		weight := *shoe.WeightG
		if use.Races && weight < 220 {
			reasons = append(reasons, fmt.Sprintf("Lightweight design (%.0fg) for racing speed", weight))
		} else if use.EasyRuns && weight >= 250 && weight <= 320 {
			reasons = append(reasons, fmt.Sprintf("Balanced weight (%.0fg) for comfortable training", weight))
		}
	}

	// budget positioning
	if req.CostLimiter.Enabled && req.CostLimiter.MaxUSD > 0 {
		ratio := shoe.PriceUSD / req.CostLimiter.MaxUSD
		if ratio <= 0.8 {
			reasons = append(reasons, "Excellent value within budget")
		} else if ratio > 1.0 {
			reasons = append(reasons, "Premium option with advanced features")
		}
	}

	// market positioning when data exists
	if data, ok := market[shoe.Key()]; ok {
		if data.ReviewCount > 50 {
			reasons = append(reasons, fmt.Sprintf("Popular choice with %d reviews", data.ReviewCount))
		}
		if data.Rating >= 4.5 {
			reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f/5.0)", data.Rating))
		}
	}

	if len(reasons) == 0 {
		return "Well-suited for your running needs"
	}

	return strings.Join(reasons, "; ")
}

// FormatUseCases renders the requested activities for logs and prompts.
func FormatUseCases(use domain.IntendedUse) string {
	uses := []string{}
	if use.EasyRuns {
		uses = append(uses, "Easy runs")
	}
	if use.TempoRuns {
		uses = append(uses, "Tempo runs")
	}
	if use.LongRuns {
		uses = append(uses, "Long runs")
	}
	if use.Races {
		uses = append(uses, "Racing")
	}
	if use.Trail {
		uses = append(uses, "Trail")
	}

	if len(uses) == 0 {
		return "General running"
	}

	return strings.Join(uses, ", ")
}

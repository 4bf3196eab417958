package recommend

import (
	"strings"

	"shoeScout/domain"
	"shoeScout/pkg/logger"
)

// ScoreComponents breaks a final score into its weighted parts, for the
// debug endpoint.
type ScoreComponents struct {
	Base      float64
	Technical float64
	Market    float64
	Specialty float64
	Final     float64
}

// Score computes the [0,1] compatibility score for one record. A panic while
// scoring a single record must not abort the batch: it is recovered here and
// replaced with the neutral score.
func Score(shoe domain.ShoeRecord, req domain.RecommendationRequest, market domain.MarketContext, cfg Config) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scoring failed, using neutral score",
				"brand", shoe.Brand,
				"model", shoe.Model,
				"panic", r,
			)
			ScoringFailuresTotal.Inc()
			score = cfg.NeutralScore
		}
	}()

	return scoreComponents(shoe, req, market, cfg).Final
}

func scoreComponents(shoe domain.ShoeRecord, req domain.RecommendationRequest, market domain.MarketContext, cfg Config) ScoreComponents {
	base := baseCompatibility(shoe, req)
	technical := technicalAdvantage(shoe, req)
	marketScore := marketPositioning(shoe, market)
	specialty := specialtyBonus(shoe, req)

	final := cfg.WBase*base +
		cfg.WTechnical*technical +
		cfg.WMarket*marketScore +
		cfg.WSpecialty*specialty

	return ScoreComponents{
		Base:      base,
		Technical: technical,
		Market:    marketScore,
		Specialty: specialty,
		Final:     clamp(final, 0.0, 1.0),
	}
}

// baseCompatibility is the primary rule-driven sub-score: category match,
// plate fit, weight and drop thresholds, budget ratio. Starts below neutral
// so the bonuses have room to separate candidates.
func baseCompatibility(shoe domain.ShoeRecord, req domain.RecommendationRequest) float64 {
	score := 0.45
	use := req.IntendedUse

	// category match, strongest use case wins
	switch {
	case use.Races && shoe.HasCategory(domain.CategoryRace):
		score += 0.28
	case use.TempoRuns && shoe.HasCategory(domain.CategoryTempo):
		score += 0.22
	case use.LongRuns && shoe.HasAnyCategory(domain.CategoryLong, domain.CategoryDaily):
		score += 0.20
	case use.EasyRuns && shoe.HasAnyCategory(domain.CategoryDaily, domain.CategoryEasy):
		score += 0.18
	}

	// plate technology fit
	plate := shoe.PlateName()
	if use.Races {
		switch plate {
		case domain.PlateCarbon:
			score += 0.22
		case domain.PlateNylon:
			score += 0.12
		}
	} else if use.LongRuns && plate == domain.PlateNylon {
		score += 0.08
	}

	// weight thresholds, tiered by use case
	if shoe.WeightG != nil {
		weight := *shoe.WeightG
		switch {
		case use.Races:
			switch {
			case weight < 200:
				score += 0.15
			case weight < 220:
				score += 0.12
			case weight < 240:
				score += 0.08
			case weight > 280:
				score -= 0.10
			}
		case use.LongRuns:
			switch {
			case weight >= 240 && weight <= 280:
				score += 0.08
			case weight > 320:
				score -= 0.05
			}
		case use.EasyRuns:
			switch {
			case weight >= 250 && weight <= 320:
				score += 0.06
			case weight > 350:
				score -= 0.08
			}
		}
	}

	// drop thresholds
	if shoe.DropMM != nil {
		drop := *shoe.DropMM
		switch {
		case use.Races:
			switch {
			case drop <= 4:
				score += 0.06
			case drop <= 6:
				score += 0.04
			case drop > 10:
				score -= 0.03
			}
		case use.EasyRuns:
			if drop >= 8 && drop <= 12 {
				score += 0.04
			}
		}
	}

	// budget ratio, tiered penalty/bonus with a continuous band just over 1.0
	if req.CostLimiter.Enabled && req.CostLimiter.MaxUSD > 0 {
		ratio := shoe.PriceUSD / req.CostLimiter.MaxUSD
		switch {
		case ratio > 1.3:
			score -= 0.35
		case ratio > 1.2:
			score -= 0.25
		case ratio > 1.1:
			score -= 0.15
		case ratio > 1.0:
			score -= 0.05 * (ratio - 1.0)
		case ratio <= 0.7:
			score += 0.08
		case ratio <= 0.8:
			score += 0.05
		}
	}

	return clamp(score, 0.1, 1.0)
}

// technicalAdvantage rewards drop/plate synergy with the requested use case.
func technicalAdvantage(shoe domain.ShoeRecord, req domain.RecommendationRequest) float64 {
	score := 0.5
	use := req.IntendedUse

	if shoe.DropMM != nil {
		drop := *shoe.DropMM
		if use.Races && drop <= 6 {
			score += 0.1
		} else if use.EasyRuns && drop >= 8 && drop <= 12 {
			score += 0.1
		}
	}

	plate := shoe.PlateName()
	if plate == domain.PlateCarbon && use.Races {
		score += 0.2
	} else if plate == domain.PlateNylon && use.TempoRuns {
		score += 0.15
	}

	return clamp(score, 0.0, 1.0)
}

// marketPositioning is a neutral placeholder until real market signals are
// integrated; popularity data currently feeds the ranking adjuster instead.
func marketPositioning(_ domain.ShoeRecord, _ domain.MarketContext) float64 {
	return 0.5
}

// brand tiers per use case, uppercase brand names
var (
	racingSpecialists  = []string{"NIKE", "SAUCONY", "HOKA"}
	racingStrong       = []string{"ASICS", "NEW BALANCE"}
	longRunSpecialists = []string{"HOKA", "BROOKS", "ASICS"}
	longRunStrong      = []string{"NEW BALANCE", "SAUCONY"}
	dailySpecialists   = []string{"BROOKS", "ASICS", "NEW BALANCE"}
	dailyStrong        = []string{"HOKA", "SAUCONY"}
)

// specialtyBonus combines brand-tier fit, a deterministic diversity jitter
// and a price-tier adjustment.
func specialtyBonus(shoe domain.ShoeRecord, req domain.RecommendationRequest) float64 {
	score := 0.45
	brand := strings.ToUpper(shoe.Brand)
	use := req.IntendedUse

	switch {
	case use.Races:
		switch {
		case containsBrand(racingSpecialists, brand):
			score += 0.12
		case containsBrand(racingStrong, brand):
			score += 0.10
		case brand == "BROOKS":
			score += 0.08
		}
	case use.LongRuns:
		switch {
		case containsBrand(longRunSpecialists, brand):
			score += 0.12
		case containsBrand(longRunStrong, brand):
			score += 0.10
		}
	case use.EasyRuns:
		switch {
		case containsBrand(dailySpecialists, brand):
			score += 0.10
		case containsBrand(dailyStrong, brand):
			score += 0.08
		}
	}

	// seeded jitter keeps brands from tying exactly and dominating
	score += diversityJitter(shoe.Brand, shoe.Model)

	switch {
	case shoe.PriceUSD < 120:
		score += 0.08
	case shoe.PriceUSD < 150:
		score += 0.05
	case shoe.PriceUSD > 200:
		score -= 0.03
	}

	return clamp(score, 0.1, 1.0)
}

func containsBrand(tier []string, brand string) bool {
	for _, b := range tier {
		if b == brand {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

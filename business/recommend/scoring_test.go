package recommend

import (
	"testing"

	"shoeScout/domain"
)

func TestScoreStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	shoes := []domain.ShoeRecord{
		{Brand: "Nike", Model: "Vaporfly 3", Category: []string{"race"}, PriceUSD: 260, Plate: "carbon", DropMM: fptr(8), WeightG: fptr(184)},
		{Brand: "Brooks", Model: "Ghost 16", Category: []string{"daily", "easy"}, PriceUSD: 140, DropMM: fptr(12), WeightG: fptr(286)},
		{Brand: "NoName", Model: "Bare", PriceUSD: 50},
	}
	requests := []domain.RecommendationRequest{
		{IntendedUse: domain.IntendedUse{Races: true}},
		{IntendedUse: domain.IntendedUse{EasyRuns: true, LongRuns: true}},
		{IntendedUse: domain.IntendedUse{Races: true}, CostLimiter: domain.CostLimiter{Enabled: true, MaxUSD: 100}},
		{},
	}

	for _, shoe := range shoes {
		for _, req := range requests {
			got := Score(shoe, req, domain.MarketContext{}, cfg)
			if got < 0 || got > 1 {
				t.Errorf("score out of bounds for %s: %f", shoe.Key(), got)
			}
		}
	}
}

func TestSubScoresStayInDeclaredRanges(t *testing.T) {
	shoe := domain.ShoeRecord{Brand: "Saucony", Model: "Endorphin Pro 4", Category: []string{"race"}, PriceUSD: 180, Plate: "carbon", DropMM: fptr(8), WeightG: fptr(195)}
	req := domain.RecommendationRequest{IntendedUse: domain.IntendedUse{Races: true}}

	comp := scoreComponents(shoe, req, domain.MarketContext{}, DefaultConfig())

	if comp.Base < 0.1 || comp.Base > 1.0 {
		t.Errorf("base compatibility out of range: %f", comp.Base)
	}
	if comp.Technical < 0.0 || comp.Technical > 1.0 {
		t.Errorf("technical advantage out of range: %f", comp.Technical)
	}
	if comp.Market != 0.5 {
		t.Errorf("market positioning should be the neutral placeholder, got %f", comp.Market)
	}
	if comp.Specialty < 0.1 || comp.Specialty > 1.0 {
		t.Errorf("specialty bonus out of range: %f", comp.Specialty)
	}
}

func TestCarbonRacerOutranksTempoShoeForRaces(t *testing.T) {
	racer := domain.ShoeRecord{Brand: "Saucony", Model: "Endorphin Pro 4", Category: []string{"race"}, PriceUSD: 180, Plate: "carbon", DropMM: fptr(8), WeightG: fptr(195)}
	tempo := domain.ShoeRecord{Brand: "Saucony", Model: "Endorphin Speed 4", Category: []string{"tempo", "race"}, PriceUSD: 220, Plate: "nylon", DropMM: fptr(8), WeightG: fptr(230)}
	req := domain.RecommendationRequest{
		IntendedUse: domain.IntendedUse{Races: true},
		CostLimiter: domain.CostLimiter{Enabled: true, MaxUSD: 200},
	}
	cfg := DefaultConfig()

	racerScore := Score(racer, req, domain.MarketContext{}, cfg)
	tempoScore := Score(tempo, req, domain.MarketContext{}, cfg)

	if racerScore <= tempoScore {
		t.Errorf("carbon racer (%f) should outrank nylon tempo shoe (%f) for a race request", racerScore, tempoScore)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	shoe := domain.ShoeRecord{Brand: "Hoka", Model: "Rocket X 2", Category: []string{"race", "tempo"}, PriceUSD: 250, Plate: "carbon", DropMM: fptr(5), WeightG: fptr(218)}
	req := domain.RecommendationRequest{IntendedUse: domain.IntendedUse{Races: true}}
	cfg := DefaultConfig()

	first := Score(shoe, req, domain.MarketContext{}, cfg)
	for i := 0; i < 100; i++ {
		if got := Score(shoe, req, domain.MarketContext{}, cfg); got != first {
			t.Fatalf("score changed between calls: %f vs %f", first, got)
		}
	}
}

func TestDiversityJitterDeterministicAndBounded(t *testing.T) {
	a := diversityJitter("Nike", "Vaporfly 3")
	b := diversityJitter("Nike", "Vaporfly 3")
	if a != b {
		t.Fatalf("jitter not bit-identical: %v vs %v", a, b)
	}

	pairs := [][2]string{
		{"Nike", "Vaporfly 3"},
		{"Nike", "Pegasus 41"},
		{"Saucony", "Ride 17"},
		{"Brooks", "Ghost 16"},
		{"", ""},
	}
	for _, p := range pairs {
		j := diversityJitter(p[0], p[1])
		if j < -jitterRange || j > jitterRange {
			t.Errorf("jitter out of range for %q %q: %v", p[0], p[1], j)
		}
	}
}

func TestDiversityJitterVariesByModel(t *testing.T) {
	if diversityJitter("Nike", "Vaporfly 3") == diversityJitter("Nike", "Pegasus 41") {
		t.Errorf("different models produced identical jitter")
	}
}

func TestBudgetRatioPenaltyTiers(t *testing.T) {
	req := domain.RecommendationRequest{
		IntendedUse: domain.IntendedUse{EasyRuns: true},
		CostLimiter: domain.CostLimiter{Enabled: true, MaxUSD: 100},
	}

	cheap := domain.ShoeRecord{Brand: "X", Model: "cheap", Category: []string{"easy"}, PriceUSD: 65}
	pricey := domain.ShoeRecord{Brand: "X", Model: "pricey", Category: []string{"easy"}, PriceUSD: 140}

	if baseCompatibility(cheap, req) <= baseCompatibility(pricey, req) {
		t.Errorf("deep under-budget shoe should beat a 1.4x over-budget shoe on base compatibility")
	}
}

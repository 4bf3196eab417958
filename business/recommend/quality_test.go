package recommend

import "testing"

func TestQualityMultiplierTiers(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.8},
		{"whitespace", "   \n\t", 0.8},
		{"generic fallback", "AI explanation unavailable - solid fit for the stated use; consider feel and budget tradeoffs.", 0.9},
		{"generic phrase buried in text", "Overall this is a good fit for your needs on most days.", 0.9},
		{"three technical terms", "The carbon plate and low drop make it lightweight at speed.", 1.2},
		{"two technical terms", "Responsive ride with plush cushioning.", 1.1},
		{"one technical term", "A stable choice for most runners.", 1.0},
		{"substantive but untechnical", "Runners love this model for marathon training blocks.", 0.95},
	}

	for _, c := range cases {
		if got := QualityMultiplier(c.text); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestQualityMultiplierIsCaseInsensitive(t *testing.T) {
	upper := QualityMultiplier("CARBON PLATE with a LIGHTWEIGHT and RESPONSIVE build")
	lower := QualityMultiplier("carbon plate with a lightweight and responsive build")
	if upper != lower || upper != 1.2 {
		t.Errorf("case should not matter: %v vs %v", upper, lower)
	}
}

func TestQualityMultiplierRewardsKeywordStuffing(t *testing.T) {
	// a known property of term counting: stuffed keywords rate at least as
	// high as genuinely informative prose without the vocabulary
	stuffed := QualityMultiplier("carbon plate carbon plate lightweight responsive cushioning drop weight")
	genuine := QualityMultiplier("Its rocker geometry suits midfoot strikers logging marathon mileage.")

	if stuffed < genuine {
		t.Errorf("term counting should rate stuffed text (%v) at least as high as plain prose (%v)", stuffed, genuine)
	}
	if stuffed != 1.2 {
		t.Errorf("stuffed text should hit the cap, got %v", stuffed)
	}
}

func TestQualityMultiplierBounds(t *testing.T) {
	texts := []string{
		"",
		"x",
		"carbon plate nylon plate drop weight cushioning responsive stable lightweight durable",
		"ai explanation unavailable",
	}
	for _, text := range texts {
		got := QualityMultiplier(text)
		if got < 0.8 || got > 1.2 {
			t.Errorf("multiplier out of [0.8,1.2] for %q: %v", text, got)
		}
	}
}

package recommend

import "strings"

// genericPhrases mark fallback or boilerplate explanations.
var genericPhrases = []string{
	"solid fit for the stated use",
	"consider feel and budget tradeoffs",
	"good fit for your needs",
	"ai explanation unavailable",
}

// technicalTerms is the fixed vocabulary whose presence marks a substantive,
// detail-bearing explanation.
var technicalTerms = []string{
	"carbon plate",
	"nylon plate",
	"drop",
	"weight",
	"cushioning",
	"responsive",
	"stable",
	"lightweight",
	"durable",
}

// QualityMultiplier rates the richness of a generated explanation into a
// bounded [0.8, 1.2] score multiplier. Richer text ranks higher; that also
// means keyword-heavy text ranks higher whether or not the detail is genuine.
// This trade-off is intentional and covered by tests, not hidden.
func QualityMultiplier(explanation string) float64 {
	if strings.TrimSpace(explanation) == "" {
		return 0.8
	}

	lower := strings.ToLower(explanation)

	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			return 0.9
		}
	}

	matches := 0
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			matches++
		}
	}

	switch {
	case matches >= 3:
		return 1.2
	case matches >= 2:
		return 1.1
	case matches >= 1:
		return 1.0
	}

	return 0.95
}

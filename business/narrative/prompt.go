package narrative

import (
	"fmt"
	"strings"

	"shoeScout/domain"
)

const justificationSystemPrompt = "You are a running shoe expert. For each shoe in the list, write one short sentence explaining why it fits the runner's stated requirements. Respond with a JSON array of strings, one per shoe, in the same order."

const analysisSystemPrompt = "You are a running shoe expert writing a concise technical assessment of a single shoe for a specific runner. Two to three sentences, concrete, grounded in the specs given. No markdown headers."

const deepDiveSystemPrompt = "You are a running shoe expert. Provide a focused technical analysis of the shoe described, covering geometry, plate behavior and intended pace range. Three to four sentences."

// candidateTable renders the shortlist the way the model sees it, one line
// per shoe so order survives the round trip.
func candidateTable(candidates []domain.ScoredCandidate) string {
	var b strings.Builder
	for _, c := range candidates {
		b.WriteString(shoeLine(c.ShoeRecord))
		b.WriteByte('\n')
	}
	return b.String()
}

func shoeLine(s domain.ShoeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s %s | cat=%s | price=$%.0f | plate=%s", s.Brand, s.Model, strings.Join(s.Category, ","), s.PriceUSD, s.PlateName())
	if s.DropMM != nil {
		fmt.Fprintf(&b, " | drop=%.0fmm", *s.DropMM)
	}
	if s.WeightG != nil {
		fmt.Fprintf(&b, " | weight=%.0fg", *s.WeightG)
	}
	return b.String()
}

// formatRequirements turns the request into the runner-profile paragraph
// shared by every prompt.
func formatRequirements(req domain.RecommendationRequest) string {
	var parts []string

	uses := []string{}
	if req.IntendedUse.EasyRuns {
		uses = append(uses, "easy runs")
	}
	if req.IntendedUse.TempoRuns {
		uses = append(uses, "tempo runs")
	}
	if req.IntendedUse.LongRuns {
		uses = append(uses, "long runs")
	}
	if req.IntendedUse.Races {
		uses = append(uses, "races")
	}
	if len(uses) == 0 {
		uses = append(uses, "general training")
	}
	parts = append(parts, "Intended use: "+strings.Join(uses, ", "))

	if req.IntendedUse.Races && len(req.RaceDistances) > 0 {
		parts = append(parts, "Race distances: "+strings.Join(req.RaceDistances, ", "))
	}
	if len(req.BrandPreferences) > 0 {
		parts = append(parts, "Preferred brands: "+strings.Join(req.BrandPreferences, ", "))
	}
	if req.CostLimiter.Enabled {
		parts = append(parts, fmt.Sprintf("Budget: up to $%.0f", req.CostLimiter.MaxUSD))
	}
	if !req.CarbonAllowed() {
		parts = append(parts, "Carbon plates: not wanted")
	}

	return strings.Join(parts, "\n")
}

func justificationUserPrompt(req domain.RecommendationRequest, candidates []domain.ScoredCandidate) string {
	return fmt.Sprintf("Runner requirements:\n%s\n\nShoes (in ranked order):\n%s\nReturn exactly %d sentences as a JSON array of strings.",
		formatRequirements(req), candidateTable(candidates), len(candidates))
}

func analysisUserPrompt(req domain.RecommendationRequest, c domain.ScoredCandidate, rank int) string {
	return fmt.Sprintf("Runner requirements:\n%s\n\nShoe (ranked #%d for this runner):\n%s\n\nExplain why this shoe earned its rank.",
		formatRequirements(req), rank, shoeLine(c.ShoeRecord))
}

func deepDiveUserPrompt(shoe domain.ShoeRecord, focus string) string {
	prompt := "Shoe:\n" + shoeLine(shoe)
	if focus != "" {
		prompt += "\n\nFocus on: " + focus
	}
	return prompt
}

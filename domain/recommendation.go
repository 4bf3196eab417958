package domain

// IntendedUse describes which running activities the requester shops for.
// Multiple flags may be set; all false means "general running".
type IntendedUse struct {
	EasyRuns  bool `json:"easy_runs"`
	TempoRuns bool `json:"tempo_runs"`
	LongRuns  bool `json:"long_runs"`
	Races     bool `json:"races"`
	Trail     bool `json:"trail"`
}

// Any reports whether at least one use-case flag is set.
func (u IntendedUse) Any() bool {
	return u.EasyRuns || u.TempoRuns || u.LongRuns || u.Races || u.Trail
}

type CostLimiter struct {
	Enabled bool    `json:"enabled"`
	MaxUSD  float64 `json:"max_usd"`
}

// RequestWeights carries optional per-factor multipliers. Nil pointer means
// default 1.0; an explicit 0 disables the factor.
type RequestWeights struct {
	Budget *float64 `json:"budget,omitempty"`
}

type RecommendationRequest struct {
	BrandPreferences   []string        `json:"brand_preferences,omitempty"`
	IntendedUse        IntendedUse     `json:"intended_use"`
	RaceDistances      []string        `json:"race_distances,omitempty"`
	CostLimiter        CostLimiter     `json:"cost_limiter"`
	NumRecommendations int             `json:"num_recommendations"`
	AllowCarbon        *bool           `json:"allow_carbon,omitempty"`
	Enhanced           *bool           `json:"enhanced,omitempty"`
	Weights            *RequestWeights `json:"weights,omitempty"`
}

// CarbonAllowed defaults to true when the field is absent.
func (r RecommendationRequest) CarbonAllowed() bool {
	return r.AllowCarbon == nil || *r.AllowCarbon
}

// EnhancedMode defaults to true; false selects the baseline path where the
// explanation quality multiplier feeds back into ranking.
func (r RecommendationRequest) EnhancedMode() bool {
	return r.Enhanced == nil || *r.Enhanced
}

// BudgetWeight returns the requested budget-adjustment weight, 1.0 when the
// weights block or the field is absent. Negative values are floored to 0 by
// the ranking stage.
func (r RecommendationRequest) BudgetWeight() float64 {
	if r.Weights == nil || r.Weights.Budget == nil {
		return 1.0
	}
	return *r.Weights.Budget
}

// ScoredCandidate is a filtered shoe plus its score trail. Candidates live
// for one request only.
type ScoredCandidate struct {
	ShoeRecord
	EnhancedScore        float64  `json:"enhanced_score"`
	OriginalScore        float64  `json:"original_score"`
	AdjustmentMultiplier float64  `json:"adjustment_multiplier"`
	ScoreAdjustments     []string `json:"score_adjustments"`
}

// DebugCandidate exposes per-component scores for the debug endpoint.
// EnhancedScore is reported raw: the ranking stage does not re-clamp, so
// values above 1.0 are visible here.
type DebugCandidate struct {
	Brand                string   `json:"brand"`
	Model                string   `json:"model"`
	BaseCompatibility    float64  `json:"base_compatibility"`
	TechnicalAdvantage   float64  `json:"technical_advantage"`
	MarketPositioning    float64  `json:"market_positioning"`
	SpecialtyBonus       float64  `json:"specialty_bonus"`
	WeightedScore        float64  `json:"weighted_score"`
	EnhancedScore        float64  `json:"enhanced_score"`
	AdjustmentMultiplier float64  `json:"adjustment_multiplier"`
	ScoreAdjustments     []string `json:"score_adjustments"`
}

// Explanation is a generated natural-language justification plus any
// attributed sources. Fallback explanations carry zero sources.
type Explanation struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources,omitempty"`
}

// RecommendationItem is one entry of the response shortlist.
type RecommendationItem struct {
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Category []string `json:"category"`
	PriceUSD float64  `json:"price_usd"`
	Plate    string   `json:"plate"`
	DropMM   *float64 `json:"drop_mm,omitempty"`
	WeightG  *float64 `json:"weight_g,omitempty"`
	WhyRules string   `json:"why_rules"`
	WhyLLM   string   `json:"why_llm"`
	Sources  []string `json:"sources,omitempty"`
	Score    float64  `json:"score"`
}

type RecommendationResponse struct {
	InputsEcho RecommendationRequest `json:"inputs_echo"`
	Shortlist  []RecommendationItem  `json:"shortlist"`
	Notes      []string              `json:"notes"`
}

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"shoeScout/domain"
	"shoeScout/pkg/logger"
)

// ---- Collaborator interfaces ----

// CatalogStore is the read-only catalog loaded at startup. Implementations
// must be safe for concurrent readers.
type CatalogStore interface {
	Records() []domain.ShoeRecord
	MarketContext() domain.MarketContext
}

// NarrativeGenerator produces one explanation per candidate, in candidate
// order, degrading internally to fallback text. It never fails the batch.
type NarrativeGenerator interface {
	// Justifications issues a single batch completion and aligns the
	// result to the candidate count (baseline path).
	Justifications(ctx context.Context, req domain.RecommendationRequest, candidates []domain.ScoredCandidate) []domain.Explanation
	// DetailedAnalyses issues one completion per candidate with bounded
	// concurrency, reassembled in rank order (enhanced path).
	DetailedAnalyses(ctx context.Context, req domain.RecommendationRequest, candidates []domain.ScoredCandidate) []domain.Explanation
}

// ---- Usecase / Service ----

type RecommendService struct {
	store     CatalogStore
	narrative NarrativeGenerator
	cfg       Config
}

func NewRecommendService(store CatalogStore, narrative NarrativeGenerator, cfg Config) *RecommendService {
	return &RecommendService{
		store:     store,
		narrative: narrative,
		cfg:       cfg,
	}
}

const noMatchNote = "No shoes match your criteria. Try relaxing brand preferences or budget constraints."

// Recommend runs the full pipeline: filter, score, rank, narrate, annotate.
// An empty result set is not an error; the response carries an advisory note
// instead.
func (s *RecommendService) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("context error: %w", err)
	}

	limit := req.NumRecommendations
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	mode := "baseline"
	if req.EnhancedMode() {
		mode = "enhanced"
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"mode", mode,
		"use_cases", FormatUseCases(req.IntendedUse),
		"budget_enabled", req.CostLimiter.Enabled,
		"limit", limit,
	)

	candidates := s.filterAndScore(req)
	if len(candidates) == 0 {
		EmptyResultsTotal.Inc()
		return domain.RecommendationResponse{
			InputsEcho: req,
			Shortlist:  []domain.RecommendationItem{},
			Notes:      []string{noMatchNote},
		}, nil
	}

	var shortlist []domain.RecommendationItem
	if req.EnhancedMode() {
		shortlist = s.enhancedShortlist(ctx, req, candidates, limit)
	} else {
		shortlist = s.baselineShortlist(ctx, req, candidates, limit)
	}

	RecommendationsServedTotal.WithLabelValues(mode).Inc()

	logger.Debug("recommend_done",
		"trace_id", tid,
		"mode", mode,
		"candidates", len(candidates),
		"returned", len(shortlist),
	)

	return domain.RecommendationResponse{
		InputsEcho: req,
		Shortlist:  shortlist,
		Notes:      s.buildNotes(req, shortlist),
	}, nil
}

// filterAndScore reduces the catalog to scored candidates sorted by score.
func (s *RecommendService) filterAndScore(req domain.RecommendationRequest) []domain.ScoredCandidate {
	market := s.store.MarketContext()
	filtered := Filter(s.store.Records(), req, s.cfg)

	candidates := make([]domain.ScoredCandidate, 0, len(filtered))
	for _, shoe := range filtered {
		score := Score(shoe, req, market, s.cfg)
		candidates = append(candidates, domain.ScoredCandidate{
			ShoeRecord:           shoe,
			EnhancedScore:        score,
			OriginalScore:        score,
			AdjustmentMultiplier: 1.0,
		})
	}

	SortByScore(candidates)
	return candidates
}

// enhancedShortlist applies the dynamic ranking adjuster, slices the top K
// and generates per-candidate analyses.
func (s *RecommendService) enhancedShortlist(ctx context.Context, req domain.RecommendationRequest, candidates []domain.ScoredCandidate, limit int) []domain.RecommendationItem {
	market := s.store.MarketContext()

	candidates = AdjustRanking(candidates, req, market)
	if limit > len(candidates) {
		limit = len(candidates)
	}
	top := candidates[:limit]

	explanations := s.narrative.DetailedAnalyses(ctx, req, top)

	items := make([]domain.RecommendationItem, 0, len(top))
	for i, c := range top {
		items = append(items, s.buildItem(c, explanations[i], req, market))
	}

	return items
}

// baselineShortlist slices the top K first, generates one batch of
// justifications, then folds the explanation quality multiplier back into
// the score and re-sorts. Richer text moves a candidate up; this coupling is
// deliberate.
func (s *RecommendService) baselineShortlist(ctx context.Context, req domain.RecommendationRequest, candidates []domain.ScoredCandidate, limit int) []domain.RecommendationItem {
	market := s.store.MarketContext()

	if limit > len(candidates) {
		limit = len(candidates)
	}
	top := make([]domain.ScoredCandidate, limit)
	copy(top, candidates[:limit])

	explanations := s.narrative.Justifications(ctx, req, top)

	for i := range top {
		qm := QualityMultiplier(explanations[i].Text)
		top[i].OriginalScore = top[i].EnhancedScore
		top[i].EnhancedScore = math.Min(1.0, top[i].EnhancedScore*qm)
		top[i].AdjustmentMultiplier = qm
		top[i].ScoreAdjustments = append(top[i].ScoreAdjustments,
			fmt.Sprintf("explanation_quality_%.0f%%", qm*100))
	}

	// keep candidate/explanation pairs together through the re-sort
	type ranked struct {
		cand domain.ScoredCandidate
		expl domain.Explanation
	}
	pairs := make([]ranked, len(top))
	for i := range top {
		pairs[i] = ranked{cand: top[i], expl: explanations[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].cand.EnhancedScore > pairs[j].cand.EnhancedScore
	})

	items := make([]domain.RecommendationItem, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, s.buildItem(p.cand, p.expl, req, market))
	}

	return items
}

// buildItem maps a candidate to a response item. Scores are clamped to [0,1]
// here, at the API boundary, so the unclamped adjuster output stays visible
// only on the debug surface.
func (s *RecommendService) buildItem(c domain.ScoredCandidate, expl domain.Explanation, req domain.RecommendationRequest, market domain.MarketContext) domain.RecommendationItem {
	return domain.RecommendationItem{
		Brand:    c.Brand,
		Model:    c.Model,
		Category: []string(c.Category),
		PriceUSD: c.PriceUSD,
		Plate:    c.PlateName(),
		DropMM:   c.DropMM,
		WeightG:  c.WeightG,
		WhyRules: RuleExplanation(c.ShoeRecord, req, market),
		WhyLLM:   expl.Text,
		Sources:  expl.Sources,
		Score:    clamp(c.EnhancedScore, 0.0, 1.0),
	}
}

func (s *RecommendService) buildNotes(req domain.RecommendationRequest, shortlist []domain.RecommendationItem) []string {
	notes := []string{}

	if req.CostLimiter.Enabled {
		aboveBudget := 0
		for _, item := range shortlist {
			if item.PriceUSD > req.CostLimiter.MaxUSD {
				aboveBudget++
			}
		}
		if aboveBudget > 0 {
			notes = append(notes, fmt.Sprintf("Note: %d recommendation(s) exceed your budget but offer premium performance features.", aboveBudget))
		}
	}

	if len(shortlist) < 3 {
		notes = append(notes, "Fewer recommendations than usual - consider relaxing some constraints for more options.")
	}

	if req.EnhancedMode() {
		notes = append(notes, "Rankings use dynamic scoring based on technical specs, market data, and use-case optimization; scores are clamped to [0,1] in this response.")
	} else {
		notes = append(notes, "Rankings factor the richness of generated explanations into the final ordering.")
	}

	return notes
}

// DebugRecommend exposes per-component scores and the raw, unclamped
// adjusted score for inspection.
func (s *RecommendService) DebugRecommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.DebugCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	limit := req.NumRecommendations
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	market := s.store.MarketContext()
	filtered := Filter(s.store.Records(), req, s.cfg)

	components := make(map[string]ScoreComponents, len(filtered))
	candidates := make([]domain.ScoredCandidate, 0, len(filtered))
	for _, shoe := range filtered {
		comp := scoreComponents(shoe, req, market, s.cfg)
		components[shoe.Key()] = comp
		candidates = append(candidates, domain.ScoredCandidate{
			ShoeRecord:           shoe,
			EnhancedScore:        comp.Final,
			OriginalScore:        comp.Final,
			AdjustmentMultiplier: 1.0,
		})
	}

	SortByScore(candidates)
	candidates = AdjustRanking(candidates, req, market)

	if limit > len(candidates) {
		limit = len(candidates)
	}

	out := make([]domain.DebugCandidate, 0, limit)
	for _, c := range candidates[:limit] {
		comp := components[c.Key()]
		out = append(out, domain.DebugCandidate{
			Brand:                c.Brand,
			Model:                c.Model,
			BaseCompatibility:    comp.Base,
			TechnicalAdvantage:   comp.Technical,
			MarketPositioning:    comp.Market,
			SpecialtyBonus:       comp.Specialty,
			WeightedScore:        comp.Final,
			EnhancedScore:        c.EnhancedScore,
			AdjustmentMultiplier: c.AdjustmentMultiplier,
			ScoreAdjustments:     c.ScoreAdjustments,
		})
	}

	return out, nil
}

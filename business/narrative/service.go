package narrative

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"shoeScout/domain"
	"shoeScout/pkg/logger"
	"shoeScout/pkg/metrics"
)

// Completer is the text-generation backend.
type Completer interface {
	// Complete asks for a JSON array of strings and returns the parsed
	// list. It may return fewer or more entries than requested.
	Complete(ctx context.Context, system, user string) ([]string, error)
	// CompleteText returns free-form prose.
	CompleteText(ctx context.Context, system, user string) (string, error)
}

// Cache stores previously generated explanations. A (nil, nil) return from
// GetExplanation is a miss.
type Cache interface {
	GetExplanation(ctx context.Context, key string) (*domain.Explanation, error)
	StoreExplanation(ctx context.Context, key string, expl domain.Explanation) error
}

type Config struct {
	Model          string
	PerCallTimeout time.Duration
	MaxConcurrency int
}

// NarrativeService turns ranked candidates into explanations. It never
// surfaces backend errors upward; every failure path yields fallback text so
// the recommendation response is always complete.
type NarrativeService struct {
	completer Completer
	cache     Cache // may be nil
	cfg       Config
}

func NewNarrativeService(completer Completer, cache Cache, cfg Config) *NarrativeService {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 3
	}
	if cfg.PerCallTimeout <= 0 {
		cfg.PerCallTimeout = 8 * time.Second
	}
	return &NarrativeService{completer: completer, cache: cache, cfg: cfg}
}

const genericJustification = "AI explanation unavailable - solid fit for the stated use; consider feel and budget tradeoffs."

const analysisFallback = "This shoe offers solid performance for your running needs with good technical specifications."

// Justifications issues one batch completion for the whole shortlist and
// aligns the result: too few strings pad with the last one, too many are
// truncated. Total failure fills every slot with the generic sentence.
func (s *NarrativeService) Justifications(ctx context.Context, req domain.RecommendationRequest, candidates []domain.ScoredCandidate) []domain.Explanation {
	out := make([]domain.Explanation, len(candidates))
	if len(candidates) == 0 {
		return out
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.PerCallTimeout)
	defer cancel()

	start := time.Now()
	lines, err := s.completer.Complete(callCtx, justificationSystemPrompt, justificationUserPrompt(req, candidates))
	metrics.NarrativeLatency.WithLabelValues("justifications").Observe(time.Since(start).Seconds())

	if err != nil || len(lines) == 0 {
		if err != nil {
			logger.Warn("justification batch failed, using fallback", "error", err.Error())
		}
		metrics.NarrativeFallbacksTotal.WithLabelValues("justifications").Inc()
		for i := range out {
			out[i] = domain.Explanation{Text: genericJustification}
		}
		return out
	}

	for i := range candidates {
		var text string
		switch {
		case i < len(lines):
			text = strings.TrimSpace(lines[i])
		default:
			text = strings.TrimSpace(lines[len(lines)-1])
		}
		if text == "" {
			text = genericJustification
			out[i] = domain.Explanation{Text: text}
			continue
		}
		out[i] = domain.Explanation{Text: text, Sources: []string{s.sourceTag()}}
	}
	return out
}

// DetailedAnalyses generates one analysis per candidate with bounded
// concurrency. Results land in an indexed slice so the output follows rank
// order regardless of completion order, and a failed call degrades to the
// fallback sentence without touching its siblings.
func (s *NarrativeService) DetailedAnalyses(ctx context.Context, req domain.RecommendationRequest, candidates []domain.ScoredCandidate) []domain.Explanation {
	out := make([]domain.Explanation, len(candidates))
	if len(candidates) == 0 {
		return out
	}

	sem := make(chan struct{}, s.cfg.MaxConcurrency)
	var wg sync.WaitGroup

	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c domain.ScoredCandidate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			out[i] = s.analyzeOne(ctx, req, c, i+1)
		}(i, c)
	}
	wg.Wait()

	return out
}

func (s *NarrativeService) analyzeOne(ctx context.Context, req domain.RecommendationRequest, c domain.ScoredCandidate, rank int) domain.Explanation {
	key := s.cacheKey(req, c, rank)
	if s.cache != nil {
		if cached, err := s.cache.GetExplanation(ctx, key); err == nil && cached != nil {
			return *cached
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.PerCallTimeout)
	defer cancel()

	start := time.Now()
	text, err := s.completer.CompleteText(callCtx, analysisSystemPrompt, analysisUserPrompt(req, c, rank))
	metrics.NarrativeLatency.WithLabelValues("analysis").Observe(time.Since(start).Seconds())

	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logger.Warn("analysis failed, using fallback",
				"brand", c.Brand,
				"model", c.Model,
				"rank", rank,
				"error", err.Error(),
			)
		}
		metrics.NarrativeFallbacksTotal.WithLabelValues("analysis").Inc()
		return domain.Explanation{Text: rankPrefix(rank) + analysisFallback}
	}

	expl := domain.Explanation{
		Text:    rankPrefix(rank) + strings.TrimSpace(text),
		Sources: []string{s.sourceTag()},
	}
	if s.cache != nil {
		if err := s.cache.StoreExplanation(ctx, key, expl); err != nil {
			logger.Debug("explanation cache store failed", "error", err.Error())
		}
	}
	return expl
}

// TechnicalDeepDive answers the per-shoe analysis endpoint. Same degradation
// contract as the pipeline: a dead backend yields the fallback sentence, not
// an error.
func (s *NarrativeService) TechnicalDeepDive(ctx context.Context, shoe domain.ShoeRecord, focus string) domain.Explanation {
	key := fmt.Sprintf("deepdive|%s|%s", shoe.Key(), focus)
	if s.cache != nil {
		if cached, err := s.cache.GetExplanation(ctx, key); err == nil && cached != nil {
			return *cached
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.PerCallTimeout)
	defer cancel()

	start := time.Now()
	text, err := s.completer.CompleteText(callCtx, deepDiveSystemPrompt, deepDiveUserPrompt(shoe, focus))
	metrics.NarrativeLatency.WithLabelValues("deepdive").Observe(time.Since(start).Seconds())

	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logger.Warn("deep dive failed, using fallback",
				"brand", shoe.Brand,
				"model", shoe.Model,
				"error", err.Error(),
			)
		}
		metrics.NarrativeFallbacksTotal.WithLabelValues("deepdive").Inc()
		return domain.Explanation{Text: analysisFallback}
	}

	expl := domain.Explanation{
		Text:    strings.TrimSpace(text),
		Sources: []string{s.sourceTag()},
	}
	if s.cache != nil {
		if err := s.cache.StoreExplanation(ctx, key, expl); err != nil {
			logger.Debug("explanation cache store failed", "error", err.Error())
		}
	}
	return expl
}

func rankPrefix(rank int) string {
	if rank == 1 {
		return "**TOP RECOMMENDATION #1**: "
	}
	return fmt.Sprintf("**RECOMMENDATION #%d**: ", rank)
}

func (s *NarrativeService) sourceTag() string {
	if s.cfg.Model == "" {
		return "ollama"
	}
	return "ollama:" + s.cfg.Model
}

// cacheKey captures everything that changes the generated text: the shoe,
// its rank and the request profile.
func (s *NarrativeService) cacheKey(req domain.RecommendationRequest, c domain.ScoredCandidate, rank int) string {
	return fmt.Sprintf("analysis|%s|%d|%s", c.Key(), rank, requestSignature(req))
}

func requestSignature(req domain.RecommendationRequest) string {
	var b strings.Builder
	u := req.IntendedUse
	fmt.Fprintf(&b, "e%tt%tl%tr%t", u.EasyRuns, u.TempoRuns, u.LongRuns, u.Races)
	if req.CostLimiter.Enabled {
		fmt.Fprintf(&b, "|$%.0f", req.CostLimiter.MaxUSD)
	}
	if len(req.RaceDistances) > 0 {
		b.WriteString("|" + strings.Join(req.RaceDistances, ","))
	}
	if !req.CarbonAllowed() {
		b.WriteString("|nocarbon")
	}
	return b.String()
}

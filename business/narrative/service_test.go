package narrative

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shoeScout/domain"
)

type fakeCompleter struct {
	lines []string
	text  string
	err   error

	mu     sync.Mutex
	calls  int
	active int32
	peak   int32
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) ([]string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.lines, f.err
}

func (f *fakeCompleter) CompleteText(ctx context.Context, system, user string) (string, error) {
	cur := atomic.AddInt32(&f.active, 1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if cur <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, cur) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	atomic.AddInt32(&f.active, -1)

	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.text, f.err
}

func fptr(v float64) *float64 { return &v }

func shortlist(n int) []domain.ScoredCandidate {
	names := []string{"Vaporfly 3", "Endorphin Pro 4", "Rocket X 2", "Adios Pro 3", "Metaspeed Sky"}
	out := make([]domain.ScoredCandidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.ScoredCandidate{
			ShoeRecord: domain.ShoeRecord{
				Brand:    "Brand",
				Model:    names[i%len(names)],
				Category: []string{"race"},
				PriceUSD: 200,
				Plate:    "carbon",
				DropMM:   fptr(8),
				WeightG:  fptr(200),
			},
			EnhancedScore: 0.9,
		})
	}
	return out
}

func testRequest() domain.RecommendationRequest {
	return domain.RecommendationRequest{
		IntendedUse:   domain.IntendedUse{Races: true},
		RaceDistances: []string{"marathon"},
	}
}

func TestJustificationsAlignedOneToOne(t *testing.T) {
	completer := &fakeCompleter{lines: []string{"first", "second", "third"}}
	svc := NewNarrativeService(completer, nil, Config{Model: "llama3.1"})

	got := svc.Justifications(context.Background(), testRequest(), shortlist(3))

	if len(got) != 3 {
		t.Fatalf("expected 3 explanations, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Text != want {
			t.Errorf("slot %d: got %q, want %q", i, got[i].Text, want)
		}
		if len(got[i].Sources) == 0 {
			t.Errorf("slot %d: generated text should carry a source", i)
		}
	}
}

func TestJustificationsPadsWithLastLine(t *testing.T) {
	completer := &fakeCompleter{lines: []string{"only one"}}
	svc := NewNarrativeService(completer, nil, Config{})

	got := svc.Justifications(context.Background(), testRequest(), shortlist(3))

	for i := range got {
		if got[i].Text != "only one" {
			t.Errorf("slot %d should be padded with the last line, got %q", i, got[i].Text)
		}
	}
}

func TestJustificationsTruncatesExtras(t *testing.T) {
	completer := &fakeCompleter{lines: []string{"a", "b", "c", "d", "e"}}
	svc := NewNarrativeService(completer, nil, Config{})

	got := svc.Justifications(context.Background(), testRequest(), shortlist(2))

	if len(got) != 2 {
		t.Fatalf("expected 2 explanations, got %d", len(got))
	}
	if got[0].Text != "a" || got[1].Text != "b" {
		t.Errorf("extras should be dropped from the tail: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestJustificationsFallbackOnError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	svc := NewNarrativeService(completer, nil, Config{})

	got := svc.Justifications(context.Background(), testRequest(), shortlist(3))

	if len(got) != 3 {
		t.Fatalf("expected 3 explanations, got %d", len(got))
	}
	for i := range got {
		if got[i].Text != genericJustification {
			t.Errorf("slot %d: expected the generic sentence, got %q", i, got[i].Text)
		}
		if len(got[i].Sources) != 0 {
			t.Errorf("slot %d: fallback must carry zero sources", i)
		}
	}
}

func TestDetailedAnalysesKeepRankOrder(t *testing.T) {
	completer := &fakeCompleter{text: "A sharp racer with a carbon plate."}
	svc := NewNarrativeService(completer, nil, Config{MaxConcurrency: 2})

	got := svc.DetailedAnalyses(context.Background(), testRequest(), shortlist(5))

	if len(got) != 5 {
		t.Fatalf("expected 5 explanations, got %d", len(got))
	}
	if !strings.HasPrefix(got[0].Text, "**TOP RECOMMENDATION #1**: ") {
		t.Errorf("first slot missing top marker: %q", got[0].Text)
	}
	for i := 1; i < 5; i++ {
		want := "**RECOMMENDATION #"
		if !strings.HasPrefix(got[i].Text, want) {
			t.Errorf("slot %d missing rank marker: %q", i, got[i].Text)
		}
	}
}

func TestDetailedAnalysesBoundedConcurrency(t *testing.T) {
	completer := &fakeCompleter{text: "ok"}
	svc := NewNarrativeService(completer, nil, Config{MaxConcurrency: 2})

	svc.DetailedAnalyses(context.Background(), testRequest(), shortlist(5))

	if peak := atomic.LoadInt32(&completer.peak); peak > 2 {
		t.Errorf("concurrency exceeded the bound: peak %d", peak)
	}
}

func TestDetailedAnalysesPerCandidateFallback(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model not loaded")}
	svc := NewNarrativeService(completer, nil, Config{})

	got := svc.DetailedAnalyses(context.Background(), testRequest(), shortlist(3))

	for i := range got {
		if !strings.Contains(got[i].Text, analysisFallback) {
			t.Errorf("slot %d: expected fallback sentence, got %q", i, got[i].Text)
		}
		if len(got[i].Sources) != 0 {
			t.Errorf("slot %d: fallback must carry zero sources", i)
		}
	}
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]domain.Explanation
	gets  int
	hits  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]domain.Explanation{}}
}

func (c *fakeCache) GetExplanation(_ context.Context, key string) (*domain.Explanation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if e, ok := c.store[key]; ok {
		c.hits++
		return &e, nil
	}
	return nil, nil
}

func (c *fakeCache) StoreExplanation(_ context.Context, key string, expl domain.Explanation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = expl
	return nil
}

func TestDetailedAnalysesUsesCacheOnRepeat(t *testing.T) {
	completer := &fakeCompleter{text: "Fast and stable."}
	cache := newFakeCache()
	svc := NewNarrativeService(completer, cache, Config{})

	req := testRequest()
	candidates := shortlist(2)

	first := svc.DetailedAnalyses(context.Background(), req, candidates)
	callsAfterFirst := completer.calls
	second := svc.DetailedAnalyses(context.Background(), req, candidates)

	if completer.calls != callsAfterFirst {
		t.Errorf("second pass should be served from cache, calls went %d -> %d", callsAfterFirst, completer.calls)
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("cached text differs at slot %d", i)
		}
	}
	if cache.hits == 0 {
		t.Errorf("expected cache hits on the second pass")
	}
}

func TestTechnicalDeepDiveFallback(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("boom")}
	svc := NewNarrativeService(completer, nil, Config{})

	got := svc.TechnicalDeepDive(context.Background(), shortlist(1)[0].ShoeRecord, "plate stiffness")

	if got.Text != analysisFallback {
		t.Errorf("expected fallback, got %q", got.Text)
	}
}

package corasick

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/endorses/lippycat/internal/pkg/logger"
	"github.com/endorses/lippycat/internal/pkg/metrics"
)

// Keyword pairs a pattern string with the output value it should report.
type Keyword struct {
	Text   string
	Output any
}

// BufferedAutomaton provides a double-buffered Automaton for lock-free
// searches alongside background rebuilds, so a caller can replace the whole
// keyword set without ever blocking an in-flight CompleteSearch/
// ProgressiveSearch call. Swap is atomic: readers always see either the
// complete old automaton or the complete new one, never a partially built
// one. This does not relax the core Automaton's single-writer/immutable-
// after-prepare contract: each rebuild constructs an entirely new Automaton
// via a fresh Builder, the old one is never mutated, only superseded.
type BufferedAutomaton struct {
	automaton atomic.Pointer[Automaton]

	keywords   []Keyword
	keywordsMu sync.RWMutex

	buildMu  sync.Mutex
	building atomic.Bool

	lastBuildTime     atomic.Value // time.Time
	lastBuildDuration atomic.Value // time.Duration

	newBuilder func() *Builder
	metrics    *metrics.Collector
}

// BufferedOption configures a BufferedAutomaton at construction time.
type BufferedOption func(*BufferedAutomaton)

// WithBuilder overrides the Builder used for every rebuild, carrying the
// caller's desired collaborators (output size calculator, tokenizer
// factory). The default is NewBuilder's zero-configuration Builder.
func WithBuilder(newBuilder func() *Builder) BufferedOption {
	return func(b *BufferedAutomaton) {
		b.newBuilder = newBuilder
	}
}

// WithMetrics attaches a metrics.Collector that every successful rebuild and
// every successful CompleteSearch reports against; ProgressiveSearch records
// nothing.
func WithMetrics(m *metrics.Collector) BufferedOption {
	return func(b *BufferedAutomaton) {
		b.metrics = m
	}
}

// NewBufferedAutomaton returns an empty BufferedAutomaton; no automaton is
// active until UpdateKeywords or UpdateKeywordsSync is called at least once
// with a non-empty keyword set.
func NewBufferedAutomaton(opts ...BufferedOption) *BufferedAutomaton {
	b := &BufferedAutomaton{newBuilder: NewBuilder}
	b.lastBuildTime.Store(time.Time{})
	b.lastBuildDuration.Store(time.Duration(0))
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// UpdateKeywords replaces the keyword set and rebuilds in the background.
// Until the rebuild completes, searches continue against the previous
// automaton (or report zero results if none has ever been built).
func (b *BufferedAutomaton) UpdateKeywords(keywords []Keyword) {
	b.setKeywords(keywords)
	go b.rebuild()
}

// UpdateKeywordsSync replaces the keyword set and waits for the rebuild to
// complete before returning, so the caller can be sure the new keywords are
// already active.
func (b *BufferedAutomaton) UpdateKeywordsSync(keywords []Keyword) error {
	b.setKeywords(keywords)
	return b.rebuild()
}

func (b *BufferedAutomaton) setKeywords(keywords []Keyword) {
	cp := make([]Keyword, len(keywords))
	copy(cp, keywords)
	b.keywordsMu.Lock()
	b.keywords = cp
	b.keywordsMu.Unlock()
}

func (b *BufferedAutomaton) rebuild() error {
	b.buildMu.Lock()
	defer b.buildMu.Unlock()

	b.building.Store(true)
	defer b.building.Store(false)

	b.keywordsMu.RLock()
	keywords := make([]Keyword, len(b.keywords))
	copy(keywords, b.keywords)
	b.keywordsMu.RUnlock()

	if len(keywords) == 0 {
		b.automaton.Store(nil)
		logger.Debug("cleared corasick automaton (no keywords)")
		return nil
	}

	start := time.Now()
	a := b.newBuilder().Build()
	for _, k := range keywords {
		if err := a.AddOutput(k.Text, k.Output); err != nil {
			logger.Error("failed to add keyword", "error", err, "keyword", k.Text)
			return err
		}
	}
	if err := a.Prepare(); err != nil {
		logger.Error("failed to prepare corasick automaton", "error", err, "keyword_count", len(keywords))
		return err
	}
	duration := time.Since(start)

	b.automaton.Store(a)
	b.lastBuildTime.Store(time.Now())
	b.lastBuildDuration.Store(duration)

	if b.metrics != nil {
		b.metrics.BuildDuration.Observe(duration.Seconds())
		b.metrics.BuildStateCount.Set(float64(a.stateCount()))
	}

	logger.Info("corasick automaton rebuilt",
		"keyword_count", len(keywords),
		"build_duration", duration,
		"state_count", a.stateCount())

	return nil
}

// CompleteSearch runs against the currently active automaton. Before the
// first successful build it returns a nil, empty result rather than an
// error: an unconfigured BufferedAutomaton simply has nothing to find yet,
// unlike a bare Automaton on which searching before Prepare is always a
// programmer error.
func (b *BufferedAutomaton) CompleteSearch(input string, allowOverlapping, onlyTokens bool, tokenizer Tokenizer) ([]OutputResult, error) {
	a := b.automaton.Load()
	if a == nil {
		return nil, nil
	}
	results, err := a.CompleteSearch(input, allowOverlapping, onlyTokens, tokenizer)
	if err == nil && b.metrics != nil {
		b.metrics.SearchMatches.Add(float64(len(results)))
	}
	return results, err
}

// ProgressiveSearch runs against the currently active automaton. Before the
// first successful build it returns a nil iterator and no error; callers
// should treat a nil iterator the same as an immediately exhausted one.
func (b *BufferedAutomaton) ProgressiveSearch(input string) (*MatchIterator, error) {
	a := b.automaton.Load()
	if a == nil {
		return nil, nil
	}
	return a.ProgressiveSearch(input)
}

// KeywordCount returns the size of the currently configured keyword set
// (which may not yet be reflected in the active automaton if a rebuild is
// in flight).
func (b *BufferedAutomaton) KeywordCount() int {
	b.keywordsMu.RLock()
	defer b.keywordsMu.RUnlock()
	return len(b.keywords)
}

// IsBuilding reports whether a rebuild is currently in progress.
func (b *BufferedAutomaton) IsBuilding() bool {
	return b.building.Load()
}

// HasAutomaton reports whether a prepared automaton is currently active.
func (b *BufferedAutomaton) HasAutomaton() bool {
	return b.automaton.Load() != nil
}

// BufferedStats summarizes a BufferedAutomaton's current state.
type BufferedStats struct {
	KeywordCount      int
	HasAutomaton      bool
	IsBuilding        bool
	LastBuildTime     time.Time
	LastBuildDuration time.Duration
	StateCount        int
}

// Stats returns a snapshot of the buffered automaton's current state.
func (b *BufferedAutomaton) Stats() BufferedStats {
	a := b.automaton.Load()
	stateCount := 0
	if a != nil {
		stateCount = a.stateCount()
	}

	lastTime, _ := b.lastBuildTime.Load().(time.Time)
	lastDur, _ := b.lastBuildDuration.Load().(time.Duration)

	return BufferedStats{
		KeywordCount:      b.KeywordCount(),
		HasAutomaton:      a != nil,
		IsBuilding:        b.IsBuilding(),
		LastBuildTime:     lastTime,
		LastBuildDuration: lastDur,
		StateCount:        stateCount,
	}
}

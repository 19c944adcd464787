package corasick

import "unicode/utf16"

// Builder configures an Automaton's injectable collaborators before
// construction. The zero value is not usable; use NewBuilder.
type Builder struct {
	outputSizeCalculator OutputSizeCalculator
	tokenizerFactory     TokenizerFactory
}

// NewBuilder returns a Builder configured with the default collaborators: a
// StringOutputSizeCalculator and a WhitespaceTokenizerFactory.
func NewBuilder() *Builder {
	return &Builder{
		outputSizeCalculator: StringOutputSizeCalculator{},
		tokenizerFactory:     WhitespaceTokenizerFactory{},
	}
}

// WithOutputSizeCalculator overrides the default output-size calculator.
func (b *Builder) WithOutputSizeCalculator(c OutputSizeCalculator) *Builder {
	b.outputSizeCalculator = c
	return b
}

// WithTokenizerFactory overrides the default tokenizer factory.
func (b *Builder) WithTokenizerFactory(f TokenizerFactory) *Builder {
	b.tokenizerFactory = f
	return b
}

// Build returns a fresh, empty Automaton in the mutable build phase.
func (b *Builder) Build() *Automaton {
	a := &Automaton{
		outputSizeCalculator: b.outputSizeCalculator,
		tokenizerFactory:     b.tokenizerFactory,
	}
	a.states = []state{newState(0)}
	return a
}

// Automaton is an Aho-Corasick automaton over 16-bit Unicode code units. It
// starts in a mutable build phase (Add is legal, searches fail) and becomes
// immutable once Prepare succeeds (Add fails, searches are legal and safe
// for concurrent use, each caller carrying its own search cursor).
type Automaton struct {
	states []state

	outputSizeCalculator OutputSizeCalculator
	tokenizerFactory     TokenizerFactory

	prepared bool
}

// NewAutomaton is a convenience equivalent to NewBuilder().Build().
func NewAutomaton() *Automaton {
	return NewBuilder().Build()
}

// Add adds keyword with itself as the associated output.
func (a *Automaton) Add(keyword string) error {
	return a.AddOutput(keyword, keyword)
}

// AddOutput adds keyword with the given output. When the keyword is matched
// during a search, output is one of the values surfaced in that match's
// SearchResult.Outputs / OutputResult.Output.
func (a *Automaton) AddOutput(keyword string, output any) error {
	if a.prepared {
		return ErrAlreadyPrepared
	}
	units := utf16.Encode([]rune(keyword))
	if len(units) == 0 {
		return ErrEmptyKeyword
	}
	last := a.extendAll(rootIndex, units)
	a.addOutput(last, output)
	return nil
}

// Prepare constructs failure links and compresses eligible chains into fast
// paths, then freezes the automaton. It must be called exactly once, before
// any search.
func (a *Automaton) Prepare() error {
	if a.prepared {
		return ErrAlreadyPrepared
	}
	a.buildFailureLinks()
	a.compressPaths(rootIndex)
	a.prepared = true
	return nil
}

// ProgressiveSearch begins a lazy, resumable search over input and returns
// an iterator of SearchResults in strictly increasing LastIndex order.
func (a *Automaton) ProgressiveSearch(input string) (*MatchIterator, error) {
	if !a.prepared {
		return nil, ErrNotPrepared
	}
	return &MatchIterator{
		automaton: a,
		units:     utf16.Encode([]rune(input)),
		state:     rootIndex,
		index:     0,
	}, nil
}

// CompleteSearch performs a search over input and returns every OutputResult,
// sorted by StartIndex, optionally deduplicated by overlap and optionally
// restricted to token-aligned spans. A nil tokenizer uses the Automaton's
// configured TokenizerFactory when onlyTokens is true.
func (a *Automaton) CompleteSearch(input string, allowOverlapping, onlyTokens bool, tokenizer Tokenizer) ([]OutputResult, error) {
	it, err := a.ProgressiveSearch(input)
	if err != nil {
		return nil, err
	}

	results, err := a.collectOutputResults(it, input, onlyTokens, tokenizer)
	if err != nil {
		return nil, err
	}

	sortOutputResults(results)

	if !allowOverlapping {
		results = removeOverlapping(results)
	}

	return results, nil
}

func (a *Automaton) stateCount() int {
	return len(a.states)
}

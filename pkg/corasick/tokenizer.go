package corasick

import "unicode/utf16"

// Tokenizer is the boundary oracle used by the "only tokens" post-processing
// filter (spec.md 4.G step 2, §6). It is the only collaborator responsible
// for deciding where words start and end; the core never inspects input
// characters to find boundaries itself.
type Tokenizer interface {
	// Tokenize returns two parallel, ascending arrays of code-unit offsets:
	// starts[i] is the first code unit of token i, ends[i] is one past its
	// last. starts[i] < ends[i] for every i, and tokens do not overlap.
	Tokenize(input string) (starts, ends []int, err error)
}

// TokenizerFactory produces a fresh Tokenizer, letting stateful tokenizer
// implementations avoid sharing mutable state across concurrent searches.
type TokenizerFactory interface {
	Create() Tokenizer
}

// WhitespaceTokenizer splits on runs of the whitespace code units recognized
// by isUTF16Whitespace, treating every maximal run of other code units as one
// token; other Unicode whitespace (e.g. U+3000) does not split tokens. It operates on the
// same 16-bit code-unit offsets the automaton itself uses.
type WhitespaceTokenizer struct{}

// Tokenize implements Tokenizer.
func (WhitespaceTokenizer) Tokenize(input string) ([]int, []int, error) {
	units := utf16.Encode([]rune(input))

	var starts, ends []int
	inToken := false
	start := 0
	for i, u := range units {
		ws := isUTF16Whitespace(u)
		switch {
		case !ws && !inToken:
			inToken = true
			start = i
		case ws && inToken:
			inToken = false
			starts = append(starts, start)
			ends = append(ends, i)
		}
	}
	if inToken {
		starts = append(starts, start)
		ends = append(ends, len(units))
	}
	return starts, ends, nil
}

// isUTF16Whitespace reports whether u is one of the common ASCII/Latin-1
// whitespace code units or the Unicode line/paragraph separators. The tokenizer boundary is deliberately simple; a
// caller needing full Unicode whitespace classification should supply their
// own Tokenizer.
func isUTF16Whitespace(u uint16) bool {
	switch u {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0x00A0, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// WhitespaceTokenizerFactory produces WhitespaceTokenizers. WhitespaceTokenizer
// is stateless, so every Create call may safely return the same value.
type WhitespaceTokenizerFactory struct{}

// Create implements TokenizerFactory.
func (WhitespaceTokenizerFactory) Create() Tokenizer {
	return WhitespaceTokenizer{}
}

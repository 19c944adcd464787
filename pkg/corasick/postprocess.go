package corasick

import "sort"

// OutputResult is a single match of output spanning input units
// [StartIndex, EndIndex).
type OutputResult struct {
	Output     any
	StartIndex int
	EndIndex   int
}

// collectOutputResults lowers a MatchIterator's SearchResults into
// OutputResults (spec.md 4.G step 1), then, if onlyTokens is set, drops
// every result that is not token-aligned (step 2). Sorting and overlap
// removal are the caller's responsibility (CompleteSearch).
func (a *Automaton) collectOutputResults(it *MatchIterator, input string, onlyTokens bool, tokenizer Tokenizer) ([]OutputResult, error) {
	var results []OutputResult

	for {
		sr, ok := it.Next()
		if !ok {
			break
		}
		for _, o := range sr.Outputs {
			size := a.outputSizeCalculator.SizeOf(o)
			results = append(results, OutputResult{
				Output:     o,
				StartIndex: sr.LastIndex - size,
				EndIndex:   sr.LastIndex,
			})
		}
	}

	if !onlyTokens {
		return results, nil
	}

	if tokenizer == nil {
		tokenizer = a.tokenizerFactory.Create()
	}
	starts, ends, err := tokenizer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return filterTokenAligned(results, starts, ends), nil
}

// filterTokenAligned keeps only results whose StartIndex is some tokStart[i]
// and whose EndIndex is some tokEnd[j] with i <= j. Both arrays are sorted
// ascending, so one binary search per array per result suffices.
func filterTokenAligned(results []OutputResult, tokStart, tokEnd []int) []OutputResult {
	kept := results[:0:0]
	for _, r := range results {
		i := sort.SearchInts(tokStart, r.StartIndex)
		if i >= len(tokStart) || tokStart[i] != r.StartIndex {
			continue
		}
		j := sort.SearchInts(tokEnd, r.EndIndex)
		if j >= len(tokEnd) || tokEnd[j] != r.EndIndex {
			continue
		}
		if i <= j {
			kept = append(kept, r)
		}
	}
	return kept
}

// sortOutputResults sorts ascending by StartIndex, stable so that results
// sharing a StartIndex preserve their emission (search) order (spec.md 4.G
// step 3).
func sortOutputResults(results []OutputResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartIndex < results[j].StartIndex
	})
}

// overlaps reports whether a and b overlap per spec.md 4.G.
func overlaps(a, b OutputResult) bool {
	return (a.StartIndex <= b.StartIndex && b.StartIndex < a.EndIndex) ||
		(a.StartIndex < b.EndIndex && b.EndIndex <= a.EndIndex)
}

// dominates reports whether a dominates b: leftmost wins, ties broken by
// longest.
func dominates(a, b OutputResult) bool {
	return a.StartIndex < b.StartIndex || (a.StartIndex == b.StartIndex && a.EndIndex > b.EndIndex)
}

// removeOverlapping applies the dominance algorithm of spec.md 4.G to an
// already start-sorted list, in place. It deliberately does not re-examine
// index i-1 after a removal at i — the list being start-sorted makes a
// single forward pass sufficient in the source's own (intentionally
// un-backtracking) semantics.
func removeOverlapping(results []OutputResult) []OutputResult {
	i := 0
	for i < len(results)-1 {
		a, b := results[i], results[i+1]
		switch {
		case !overlaps(a, b):
			i++
		case dominates(a, b):
			results = append(results[:i+1], results[i+2:]...)
		default:
			results = append(results[:i], results[i+1:]...)
		}
	}
	return results
}

package corasick

import "unicode/utf16"

// OutputSizeCalculator answers how many input code units a match on output
// spans, used to compute an OutputResult's StartIndex from a SearchResult's
// LastIndex (spec.md 4.G step 1). The contract: SizeOf(o) MUST equal
// endIndex-startIndex for any real match carrying that output, including
// outputs that reached a state purely via failure-link propagation.
type OutputSizeCalculator interface {
	SizeOf(output any) int
}

// StringOutputSizeCalculator is the default calculator: it assumes output is
// the keyword string itself (the behavior of Automaton.Add) and returns its
// length in 16-bit code units, not bytes or runes. Callers attaching
// non-string or size-mismatched outputs via AddOutput must supply their own
// calculator.
type StringOutputSizeCalculator struct{}

// SizeOf implements OutputSizeCalculator. It returns 0 for any output that
// is not a string, since the core cannot otherwise guess its match span.
func (StringOutputSizeCalculator) SizeOf(output any) int {
	s, ok := output.(string)
	if !ok {
		return 0
	}
	return len(utf16.Encode([]rune(s)))
}

// FuncOutputSizeCalculator adapts a plain function to OutputSizeCalculator,
// for callers whose output values carry their own size (e.g. a struct with
// a Len field) without needing to define a named type.
type FuncOutputSizeCalculator func(output any) int

// SizeOf implements OutputSizeCalculator.
func (f FuncOutputSizeCalculator) SizeOf(output any) int {
	return f(output)
}

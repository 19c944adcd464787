// Package corasick implements a multi-pattern string search engine built on
// the Aho-Corasick automaton over a 16-bit Unicode code-unit alphabet, with a
// path-compression optimization for long chains of single-child states.
//
// A caller obtains an Automaton from a Builder's Build (or NewAutomaton),
// adds keywords (each with an arbitrary associated output value) to it, then
// calls Prepare to construct failure links and compress the trie. Once prepared, the Automaton is
// immutable and safe for concurrent search from multiple goroutines, each
// carrying its own search cursor.
//
// Example:
//
//	b := corasick.NewBuilder()
//	a := b.Build()
//	a.Add("hello")
//	a.Add("world")
//	if err := a.Prepare(); err != nil {
//		log.Fatal(err)
//	}
//	results, err := a.CompleteSearch("hello world", true, false, nil)
package corasick

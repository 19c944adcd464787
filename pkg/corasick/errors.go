package corasick

import "errors"

// Lifecycle and input errors surfaced at the Automaton boundary.
var (
	// ErrNotPrepared is returned when a search method is called before Prepare.
	ErrNotPrepared = errors.New("corasick: automaton has not been prepared")

	// ErrAlreadyPrepared is returned when Add or Prepare is called on an
	// automaton that has already been prepared.
	ErrAlreadyPrepared = errors.New("corasick: automaton is already prepared")

	// ErrEmptyKeyword is returned by Add/AddOutput for a zero-length keyword.
	// The source implementation silently walked zero characters and attached
	// the output to the root state, where it could never be observed by a
	// search (the matcher only reports states reached by a transition). This
	// implementation rejects the case outright instead.
	ErrEmptyKeyword = errors.New("corasick: keyword must not be empty")
)

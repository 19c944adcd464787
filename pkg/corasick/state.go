package corasick

// State indices have two reserved, non-allocatable values. noState stands
// for "no such transition" (the Java source's null); emptyState is the
// distinguished EMPTY sentinel returned by step when a fast path runs out of
// input mid-chain.
const (
	rootIndex          int32 = 0
	noState            int32 = -1
	emptyState         int32 = -2
	fastPathMinLength        = 2 // k > 1 guard: singleton chains are not compressed
)

// state is a node of the goto-trie plus its failure link, output set, and
// optional fast path. States live in an arena (Automaton.states) and are
// addressed by index rather than pointer, which dissolves the otherwise
// cyclic fail/fastTransitions references at the type level: a Go slice of
// cyclic pointers would fight the garbage collector and the type checker for
// no benefit here.
type state struct {
	depth int32

	// edges is nil for a freshly created leaf state and is cleared (set to
	// nil) when the state is compressed into a fast path.
	edges *edgeList

	// fail is the failure link, or noState before prepare() / after
	// compression clears it (invariant 5: a compressed state's behavior is
	// described entirely by fastPath/fastTransitions).
	fail int32

	outputs outputSet

	// fastPath and fastTransitions are both nil unless this state was
	// compressed; fastTransitions has length len(fastPath)+1.
	fastPath        []uint16
	fastTransitions []int32

	// incomingFail is true iff some other state's fail points here. Gates
	// compressibility: a state that other states fail into must remain a
	// real, addressable node.
	incomingFail bool
}

func newState(depth int32) state {
	return state{depth: depth, fail: noState}
}

func (s *state) isRoot() bool {
	return s.depth == 0
}

func (s *state) isCompressed() bool {
	return s.fastPath != nil
}

// extend returns the child state index on c, creating it (with depth+1) if
// absent. It does not check the prepared flag; the caller (AddOutput) does,
// returning ErrAlreadyPrepared.
func (a *Automaton) extend(s int32, c uint16) int32 {
	st := &a.states[s]
	if st.edges == nil {
		st.edges = newEdgeList()
	}
	if child, ok := st.edges.get(c); ok {
		return child
	}
	childIdx := int32(len(a.states))
	a.states = append(a.states, newState(a.states[s].depth+1))
	a.states[s].edges.put(c, childIdx)
	return childIdx
}

// extendAll walks/extends the trie along every code unit of units, returning
// the terminal state index.
func (a *Automaton) extendAll(s int32, units []uint16) int32 {
	cur := s
	for _, c := range units {
		cur = a.extend(cur, c)
	}
	return cur
}

// get returns the child of s on c per the goto function: the state's own
// edge if present, else (only for the root) the root itself, else noState.
// Must not be called on a compressed state.
func (a *Automaton) get(s int32, c uint16) int32 {
	st := &a.states[s]
	if st.edges != nil {
		if child, ok := st.edges.get(c); ok {
			return child
		}
	}
	if st.isRoot() {
		return rootIndex
	}
	return noState
}

// keys returns a snapshot of the outgoing code units of s; empty when s has
// no edges (including when compressed).
func (a *Automaton) keys(s int32) []uint16 {
	st := &a.states[s]
	if st.edges == nil {
		return nil
	}
	return st.edges.keys()
}

func (a *Automaton) addOutput(s int32, o any) bool {
	return a.states[s].outputs.add(o)
}

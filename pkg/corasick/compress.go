package corasick

// compressPaths runs the depth-first path-compression pass (spec.md 4.E)
// starting at s. It must run after buildFailureLinks and before the
// automaton is marked prepared; Prepare's prepared check keeps it from
// running a second time.
func (a *Automaton) compressPaths(s int32) {
	if a.compressible(s) {
		a.compressChain(s)
		return
	}
	for _, child := range a.keys(s) {
		idx, _ := a.states[s].edges.get(child)
		a.compressPaths(idx)
	}
}

// compressible reports whether s is eligible to start (or continue) a fast
// path: exactly one outgoing edge, no outputs of its own, nothing fails into
// it, and it isn't the root (the root's goto must stay total and directly
// addressable).
func (a *Automaton) compressible(s int32) bool {
	st := &a.states[s]
	if st.isRoot() || st.isCompressed() {
		return false
	}
	if st.edges == nil || st.edges.size() != 1 {
		return false
	}
	if st.outputs.len() != 0 {
		return false
	}
	return !st.incomingFail
}

// compressChain walks the unique-edge chain starting at s, accumulating
// fastPath code units and the pre-compression fail target of each chain
// member, stopping at the first non-compressible state s_k. If the chain is
// long enough (k > 1) it installs the fast path on s and recurses into s_k;
// otherwise it leaves s untouched and recurses into s's single child.
func (a *Automaton) compressChain(s int32) {
	var path []uint16
	var transitions []int32

	cur := s
	for a.compressible(cur) {
		st := &a.states[cur]
		c := st.edges.keys()[0]
		next, _ := st.edges.get(c)

		path = append(path, c)
		transitions = append(transitions, st.fail)
		cur = next
	}

	if len(path) < fastPathMinLength {
		// Singleton chain: not worth compressing (spec.md 4.E's k > 1 guard).
		// cur is s's only child, not yet visited by the outer walk.
		a.compressPaths(cur)
		return
	}

	transitions = append(transitions, cur)

	st := &a.states[s]
	st.fastPath = path
	st.fastTransitions = transitions
	st.edges = nil
	st.fail = noState

	a.compressPaths(cur)
}

package corasick

// buildFailureLinks performs the breadth-first construction of failure links
// and output propagation described in spec.md 4.D. It is dense, order
// dependent code: every state must have its fail link set (and its outputs
// merged with its fail target's) exactly once, and every depth-1 state must
// be seeded before the BFS proper begins.
func (a *Automaton) buildFailureLinks() {
	root := &a.states[rootIndex]
	queue := make([]int32, 0, len(a.states))

	if root.edges != nil {
		for _, child := range root.edges.values() {
			a.setFail(child, rootIndex)
			queue = append(queue, child)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, c := range a.keys(s) {
			t, _ := a.states[s].edges.get(c)
			queue = append(queue, t)

			f := a.states[s].fail
			var target int32
			for {
				target = a.get(f, c)
				if target != noState {
					break
				}
				f = a.states[f].fail
			}
			a.setFail(t, target)
			a.states[t].outputs.addAll(a.states[target].outputs)
		}
	}
}

func (a *Automaton) setFail(s, target int32) {
	a.states[s].fail = target
	a.states[target].incomingFail = true
}

package corasick

// outputSet holds the outputs attached to a state. Most states carry zero or
// one output; a minority accumulate more through failure-link propagation.
// Representing the common cases without a map avoids an allocation per node
// for the overwhelming majority of states, per the source's own optimization.
type outputSet struct {
	single any          // valid when count == 1
	many   map[any]bool // valid when count >= 2
	count  int
}

// add inserts o, collapsing by equality. Returns true if o was newly added.
func (s *outputSet) add(o any) bool {
	switch s.count {
	case 0:
		s.single = o
		s.count = 1
		return true
	case 1:
		if s.single == o {
			return false
		}
		s.many = map[any]bool{s.single: true, o: true}
		s.single = nil
		s.count = 2
		return true
	default:
		if s.many[o] {
			return false
		}
		s.many[o] = true
		s.count++
		return true
	}
}

// addAll merges every output from other into s.
func (s *outputSet) addAll(other outputSet) {
	switch other.count {
	case 0:
		return
	case 1:
		s.add(other.single)
	default:
		for o := range other.many {
			s.add(o)
		}
	}
}

func (s *outputSet) len() int {
	return s.count
}

// values returns an unordered snapshot of the outputs.
func (s *outputSet) values() []any {
	switch s.count {
	case 0:
		return nil
	case 1:
		return []any{s.single}
	default:
		out := make([]any, 0, len(s.many))
		for o := range s.many {
			out = append(out, o)
		}
		return out
	}
}

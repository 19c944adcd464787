package corasick

// edgeList is a sparse character-keyed map from a single code unit to a
// child state index. States near the root may eventually carry many
// children, but the vast majority of states in a realistic keyword set have
// one or two, so a plain map is adequate; it preserves O(1) expected get/put
// without the bookkeeping of a denser representation.
type edgeList struct {
	m map[uint16]int32
}

func newEdgeList() *edgeList {
	return &edgeList{m: make(map[uint16]int32, 1)}
}

// get returns the child state index for c, and whether it is present.
func (e *edgeList) get(c uint16) (int32, bool) {
	s, ok := e.m[c]
	return s, ok
}

func (e *edgeList) put(c uint16, s int32) {
	e.m[c] = s
}

func (e *edgeList) size() int {
	return len(e.m)
}

// keys returns an unordered snapshot of the outgoing code units.
func (e *edgeList) keys() []uint16 {
	keys := make([]uint16, 0, len(e.m))
	for c := range e.m {
		keys = append(keys, c)
	}
	return keys
}

// values returns an unordered snapshot of the child state indices.
func (e *edgeList) values() []int32 {
	vals := make([]int32, 0, len(e.m))
	for _, s := range e.m {
		vals = append(vals, s)
	}
	return vals
}

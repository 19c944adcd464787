package corasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeList_GetPutSize(t *testing.T) {
	e := newEdgeList()
	assert.Equal(t, 0, e.size())

	_, ok := e.get('a')
	assert.False(t, ok)

	e.put('a', 1)
	e.put('b', 2)
	assert.Equal(t, 2, e.size())

	v, ok := e.get('a')
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)
}

func TestEdgeList_KeysValues(t *testing.T) {
	e := newEdgeList()
	e.put('x', 10)
	e.put('y', 20)

	assert.ElementsMatch(t, []uint16{'x', 'y'}, e.keys())
	assert.ElementsMatch(t, []int32{10, 20}, e.values())
}

func TestEdgeList_PutOverwrites(t *testing.T) {
	e := newEdgeList()
	e.put('a', 1)
	e.put('a', 2)
	assert.Equal(t, 1, e.size())

	v, ok := e.get('a')
	assert.True(t, ok)
	assert.Equal(t, int32(2), v)
}

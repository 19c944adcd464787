package corasick

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endorses/lippycat/internal/pkg/metrics"
)

func TestBufferedAutomaton_ZeroResultsBeforeFirstBuild(t *testing.T) {
	b := NewBufferedAutomaton()

	results, err := b.CompleteSearch("he said hello", false, false, nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	it, err := b.ProgressiveSearch("he said hello")
	require.NoError(t, err)
	assert.Nil(t, it)

	assert.False(t, b.HasAutomaton())
}

func TestBufferedAutomaton_UpdateKeywordsSync(t *testing.T) {
	b := NewBufferedAutomaton()

	err := b.UpdateKeywordsSync([]Keyword{
		{Text: "he", Output: "HE"},
		{Text: "she", Output: "SHE"},
		{Text: "his", Output: "HIS"},
		{Text: "hers", Output: "HERS"},
	})
	require.NoError(t, err)

	require.True(t, b.HasAutomaton())
	assert.Equal(t, 4, b.KeywordCount())

	results, err := b.CompleteSearch("ushers", true, false, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestBufferedAutomaton_UpdateKeywordsSync_EmptyClears(t *testing.T) {
	b := NewBufferedAutomaton()
	require.NoError(t, b.UpdateKeywordsSync([]Keyword{{Text: "he", Output: "HE"}}))
	require.True(t, b.HasAutomaton())

	require.NoError(t, b.UpdateKeywordsSync(nil))
	assert.False(t, b.HasAutomaton())

	results, err := b.CompleteSearch("he", false, false, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBufferedAutomaton_WithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	b := NewBufferedAutomaton(WithMetrics(collector))
	require.NoError(t, b.UpdateKeywordsSync([]Keyword{{Text: "he", Output: "HE"}}))

	_, err := b.CompleteSearch("he said", true, false, nil)
	require.NoError(t, err)

	stats := b.Stats()
	assert.True(t, stats.HasAutomaton)
	assert.Equal(t, 1, stats.KeywordCount)
	assert.Greater(t, stats.StateCount, 0)
}

func TestBufferedAutomaton_WithBuilder(t *testing.T) {
	calls := 0
	b := NewBufferedAutomaton(WithBuilder(func() *Builder {
		calls++
		return NewBuilder()
	}))

	require.NoError(t, b.UpdateKeywordsSync([]Keyword{{Text: "abc", Output: 1}}))
	assert.Equal(t, 1, calls)

	require.NoError(t, b.UpdateKeywordsSync([]Keyword{{Text: "xyz", Output: 2}}))
	assert.Equal(t, 2, calls)
}

func TestBufferedAutomaton_IsBuildingFalseAfterSync(t *testing.T) {
	b := NewBufferedAutomaton()
	require.NoError(t, b.UpdateKeywordsSync([]Keyword{{Text: "he", Output: "HE"}}))
	assert.False(t, b.IsBuilding())
}

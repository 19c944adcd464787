package corasick

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAutomaton(t *testing.T, keywords ...string) *Automaton {
	t.Helper()
	a := NewAutomaton()
	for _, k := range keywords {
		require.NoError(t, a.Add(k))
	}
	require.NoError(t, a.Prepare())
	return a
}

// S1: classic "he/she/his/hers" over "ushers".
func TestCompleteSearch_HeSheHisHers_Overlapping(t *testing.T) {
	a := buildAutomaton(t, "he", "she", "his", "hers")

	got, err := a.CompleteSearch("ushers", true, false, nil)
	require.NoError(t, err)

	want := []OutputResult{
		{Output: "she", StartIndex: 1, EndIndex: 4},
		{Output: "he", StartIndex: 2, EndIndex: 4},
		{Output: "hers", StartIndex: 2, EndIndex: 6},
	}
	assert.Equal(t, want, got)
}

// S2: overlap removal over the same input.
func TestCompleteSearch_HeSheHisHers_NonOverlapping(t *testing.T) {
	a := buildAutomaton(t, "he", "she", "his", "hers")

	got, err := a.CompleteSearch("ushers", false, false, nil)
	require.NoError(t, err)

	want := []OutputResult{
		{Output: "she", StartIndex: 1, EndIndex: 4},
	}
	assert.Equal(t, want, got)
}

// S3: nested containment, x/xx/xxx over "xxx".
func TestProgressiveSearch_NestedContainment(t *testing.T) {
	a := buildAutomaton(t, "x", "xx", "xxx")

	it, err := a.ProgressiveSearch("xxx")
	require.NoError(t, err)

	var lastIndexes []int
	var outputSets [][]any
	for {
		sr, ok := it.Next()
		if !ok {
			break
		}
		lastIndexes = append(lastIndexes, sr.LastIndex)
		outputSets = append(outputSets, sr.Outputs)
	}

	assert.Equal(t, []int{1, 2, 3}, lastIndexes)
	require.Len(t, outputSets, 3)
	assert.ElementsMatch(t, []any{"x"}, outputSets[0])
	assert.ElementsMatch(t, []any{"xx", "x"}, outputSets[1])
	assert.ElementsMatch(t, []any{"xxx", "xx", "x"}, outputSets[2])
}

func TestCompleteSearch_NestedContainment_NonOverlapping(t *testing.T) {
	a := buildAutomaton(t, "x", "xx", "xxx")

	got, err := a.CompleteSearch("xxx", false, false, nil)
	require.NoError(t, err)

	want := []OutputResult{{Output: "xxx", StartIndex: 0, EndIndex: 3}}
	assert.Equal(t, want, got)
}

// S4: path compression correctness.
func TestCompleteSearch_PathCompression(t *testing.T) {
	a := buildAutomaton(t, "hello", "world")

	got, err := a.CompleteSearch("helloworld", false, false, nil)
	require.NoError(t, err)
	want := []OutputResult{
		{Output: "hello", StartIndex: 0, EndIndex: 5},
		{Output: "world", StartIndex: 5, EndIndex: 10},
	}
	assert.Equal(t, want, got)

	got, err = a.CompleteSearch("helloworl", false, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []OutputResult{{Output: "hello", StartIndex: 0, EndIndex: 5}}, got)
}

// S5: early termination inside a fast path.
func TestCompleteSearch_FastPathExhaustsInput(t *testing.T) {
	a := buildAutomaton(t, "abcdefg")

	got, err := a.CompleteSearch("abcde", true, false, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// S6: token-aligned filtering.
func TestCompleteSearch_TokenAligned(t *testing.T) {
	a := NewAutomaton()
	for _, k := range []string{"Real Madrid", "Madrid", "Barcelona", "Messi", "esp", "o p", "Mes", "Rea"} {
		require.NoError(t, a.Add(k))
	}
	require.NoError(t, a.Prepare())

	input := "El Real Madrid no puede fichar a Messi porque es del Barcelona"
	got, err := a.CompleteSearch(input, false, true, nil)
	require.NoError(t, err)

	want := []OutputResult{
		{Output: "Real Madrid", StartIndex: 3, EndIndex: 14},
		{Output: "Messi", StartIndex: 33, EndIndex: 38},
		{Output: "Barcelona", StartIndex: 53, EndIndex: 62},
	}
	assert.Equal(t, want, got)
}

// P6: adding the same (keyword, output) pair twice is equivalent to once.
func TestAdd_DuplicateIsIdempotent(t *testing.T) {
	a := NewAutomaton()
	require.NoError(t, a.Add("he"))
	require.NoError(t, a.Add("he"))
	require.NoError(t, a.Prepare())

	got, err := a.CompleteSearch("he", true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []OutputResult{{Output: "he", StartIndex: 0, EndIndex: 2}}, got)
}

func TestAdd_EmptyKeywordRejected(t *testing.T) {
	a := NewAutomaton()
	err := a.Add("")
	assert.ErrorIs(t, err, ErrEmptyKeyword)
}

func TestAdd_AfterPrepareFails(t *testing.T) {
	a := NewAutomaton()
	require.NoError(t, a.Prepare())
	err := a.Add("x")
	assert.ErrorIs(t, err, ErrAlreadyPrepared)
}

func TestPrepare_Twice(t *testing.T) {
	a := NewAutomaton()
	require.NoError(t, a.Prepare())
	err := a.Prepare()
	assert.ErrorIs(t, err, ErrAlreadyPrepared)
}

func TestSearch_BeforePrepareFails(t *testing.T) {
	a := NewAutomaton()
	_, err := a.ProgressiveSearch("x")
	assert.ErrorIs(t, err, ErrNotPrepared)

	_, err = a.CompleteSearch("x", true, false, nil)
	assert.ErrorIs(t, err, ErrNotPrepared)
}

func TestCompleteSearch_EmptyInput(t *testing.T) {
	a := buildAutomaton(t, "he")
	got, err := a.CompleteSearch("", true, false, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// P7: completeSearch(t, true, true) is a subset of completeSearch(t, true, false).
func TestCompleteSearch_TokenFilterIsSubset(t *testing.T) {
	a := NewAutomaton()
	for _, k := range []string{"Real Madrid", "Madrid", "Barcelona", "Messi", "esp", "o p", "Mes", "Rea"} {
		require.NoError(t, a.Add(k))
	}
	require.NoError(t, a.Prepare())

	input := "El Real Madrid no puede fichar a Messi porque es del Barcelona"
	all, err := a.CompleteSearch(input, true, false, nil)
	require.NoError(t, err)
	tokens, err := a.CompleteSearch(input, true, true, nil)
	require.NoError(t, err)

	allSet := make(map[OutputResult]bool, len(all))
	for _, r := range all {
		allSet[r] = true
	}
	for _, r := range tokens {
		assert.True(t, allSet[r], "token-aligned result %+v missing from unfiltered results", r)
	}
}

// S7-style randomized round trip, de-randomized with a seeded PRNG so the
// test is reproducible without invoking the Go toolchain's -run/-count
// machinery to detect flakes.
func TestCompleteSearch_RandomizedRoundTrip(t *testing.T) {
	alphabet := []rune("abc")
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.Intn(5)
		seen := map[string]bool{}
		var keywords []string
		for len(keywords) < n {
			l := 1 + rng.Intn(4)
			buf := make([]rune, l)
			for i := range buf {
				buf[i] = alphabet[rng.Intn(len(alphabet))]
			}
			k := string(buf)
			if seen[k] {
				continue
			}
			seen[k] = true
			keywords = append(keywords, k)
		}

		perm := rng.Perm(len(keywords))
		input := ""
		for _, idx := range perm {
			input += keywords[idx]
		}

		a := NewAutomaton()
		for _, k := range keywords {
			require.NoError(t, a.Add(k))
		}
		require.NoError(t, a.Prepare())

		results, err := a.CompleteSearch(input, true, false, nil)
		require.NoError(t, err)

		found := map[string]bool{}
		for _, r := range results {
			found[r.Output.(string)] = true
		}
		for _, k := range keywords {
			assert.True(t, found[k], "keyword %q missing from %q (keywords=%v)", k, input, keywords)
		}
	}
}

// P2/P3: non-overlapping results are sorted and mutually non-overlapping
// across a broader sample of inputs than the worked examples cover.
func TestCompleteSearch_NonOverlapping_InvariantSweep(t *testing.T) {
	a := buildAutomaton(t, "he", "she", "his", "hers", "her")

	inputs := []string{"ushers", "sherhis", "hishershe", "thisisnotthere"}
	for _, in := range inputs {
		got, err := a.CompleteSearch(in, false, false, nil)
		require.NoError(t, err)

		require.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
			return got[i].StartIndex < got[j].StartIndex
		}), "input %q: results not sorted: %+v", in, got)

		for i := 0; i+1 < len(got); i++ {
			assert.False(t, overlaps(got[i], got[i+1]), "input %q: results overlap: %+v vs %+v", in, got[i], got[i+1])
		}
	}
}

package rangecomine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testFeatureOrder() featureOrder {
	return newFeatureOrder([]Object{
		{ID: "a1", Feature: "A"},
		{ID: "b1", Feature: "B"},
		{ID: "c1", Feature: "C"},
		{ID: "d1", Feature: "D"},
	})
}

func TestNewPattern_SortsAndDedupes(t *testing.T) {
	fo := testFeatureOrder()
	p := newPattern([]string{"C", "A", "A", "B"}, fo)
	require.Equal(t, Pattern{"A", "B", "C"}, p)
}

func TestPattern_KeyDistinguishesPatterns(t *testing.T) {
	fo := testFeatureOrder()
	p1 := newPattern([]string{"A", "B"}, fo)
	p2 := newPattern([]string{"A", "C"}, fo)
	require.NotEqual(t, p1.Key(), p2.Key())
}

func TestCandidateJoin_Size2ToSize3(t *testing.T) {
	fo := testFeatureOrder()
	prev := []Pattern{
		newPattern([]string{"A", "B"}, fo),
		newPattern([]string{"A", "C"}, fo),
		newPattern([]string{"B", "C"}, fo),
	}
	cands := candidateJoin(prev, fo)
	require.Len(t, cands, 1)
	require.Equal(t, Pattern{"A", "B", "C"}, cands[0])
}

func TestCandidateJoin_PrunesMissingSubset(t *testing.T) {
	fo := testFeatureOrder()
	// (A,B) and (A,C) share prefix "A" and would join to (A,B,C), but
	// (B,C) is absent from prev, so the size-3 candidate is pruned.
	prev := []Pattern{
		newPattern([]string{"A", "B"}, fo),
		newPattern([]string{"A", "C"}, fo),
	}
	cands := candidateJoin(prev, fo)
	require.Empty(t, cands)
}

func TestCandidateJoin_EmptyInput(t *testing.T) {
	fo := testFeatureOrder()
	require.Empty(t, candidateJoin(nil, fo))
}

func TestCombinations(t *testing.T) {
	var got [][]string
	combinations([]string{"A", "B", "C"}, 2, func(c []string) bool {
		got = append(got, append([]string(nil), c...))
		return true
	})
	require.Equal(t, [][]string{{"A", "B"}, {"A", "C"}, {"B", "C"}}, got)
}

func TestCombinations_EarlyStop(t *testing.T) {
	count := 0
	combinations([]string{"A", "B", "C", "D"}, 2, func(c []string) bool {
		count++
		return count < 2
	})
	require.Equal(t, 2, count)
}

func TestSortPatterns(t *testing.T) {
	fo := testFeatureOrder()
	patterns := []Pattern{
		newPattern([]string{"C"}, fo),
		newPattern([]string{"A", "B"}, fo),
		newPattern([]string{"A"}, fo),
	}
	sortPatterns(patterns, fo)
	require.Equal(t, []Pattern{{"A"}, {"A", "B"}, {"C"}}, patterns)
}

package rangecomine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStarNeighborhood_SelfEntryAtZero(t *testing.T) {
	objects := []Object{{ID: "a1", Feature: "A", X: 0, Y: 0}}
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, 10, fo)
	require.Len(t, star["a1"], 1)
	require.Equal(t, "a1", star["a1"][0].id)
	require.Equal(t, 0.0, star["a1"][0].dist)
}

func TestBuildStarNeighborhood_RespectsFeatureOrderAndRange(t *testing.T) {
	objects := []Object{
		{ID: "a1", Feature: "A", X: 0, Y: 0},
		{ID: "b1", Feature: "B", X: 1, Y: 0},
		{ID: "b2", Feature: "B", X: 100, Y: 0},
	}
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, 5, fo)

	// a1's star: B's feature rank (1) is >= A's rank (0), so fo.leq(B,A) is
	// false and b1/b2 are excluded from a1's star; only the self-entry remains.
	require.Len(t, star["a1"], 1)

	// b1's star: A precedes B, so a1 qualifies (within range); b2 is out of range.
	ids := make([]string, 0)
	for _, n := range star["b1"] {
		ids = append(ids, n.id)
	}
	require.ElementsMatch(t, []string{"b1", "a1"}, ids)
}

func TestBuildStarNeighborhood_EqualFeatureBothDirections(t *testing.T) {
	objects := []Object{
		{ID: "a1", Feature: "A", X: 0, Y: 0},
		{ID: "a2", Feature: "A", X: 1, Y: 0},
	}
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, 5, fo)

	hasNeighbor := func(center, other string) bool {
		for _, n := range star[center] {
			if n.id == other {
				return true
			}
		}
		return false
	}
	require.True(t, hasNeighbor("a1", "a2"))
	require.True(t, hasNeighbor("a2", "a1"))
}

func TestPairDistances_FiltersRangeAndDedupesPairs(t *testing.T) {
	objects := []Object{
		{ID: "a1", Feature: "A", X: 0, Y: 0},
		{ID: "b1", Feature: "B", X: 2, Y: 0},
		{ID: "b2", Feature: "B", X: 10, Y: 0},
	}
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, 20, fo)

	got := pairDistances(star, 0, 5)
	require.Equal(t, []float64{2.0}, got)
}

func TestPairDistances_SortedDescending(t *testing.T) {
	objects := []Object{
		{ID: "a1", Feature: "A", X: 0, Y: 0},
		{ID: "b1", Feature: "B", X: 1, Y: 0},
		{ID: "b2", Feature: "B", X: 3, Y: 0},
	}
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, 20, fo)
	// a1-b1=1, b1-b2=2 (equal-feature pairs count too), a1-b2=3.
	got := pairDistances(star, 0, 10)
	require.Len(t, got, 3)
	require.True(t, got[0] > got[1])
	require.True(t, got[1] > got[2])
}

func TestPairDistances_EmptyWhenNoneInRange(t *testing.T) {
	objects := []Object{
		{ID: "a1", Feature: "A", X: 0, Y: 0},
		{ID: "b1", Feature: "B", X: 100, Y: 0},
	}
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, 200, fo)
	require.Empty(t, pairDistances(star, 0, 5))
}

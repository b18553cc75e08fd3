package rangecomine

import (
	"sort"

	"github.com/colomine/rangecomine/internal/dedupe"
)

// neighbor is one entry of a center's star: the neighboring object id,
// its feature, and its distance from the center.
type neighbor struct {
	id      string
	feature string
	dist    float64
}

// starNeighborhood maps a center id to its star: a self-entry at
// distance 0, plus every neighbor within dmax whose feature precedes or
// equals the center's feature in the feature order.
//
// Equal-feature neighbor pairs are retained on both sides (the order
// predicate is <=, not <): the clique enumerator tolerates either
// direction by deduplicating on the sorted id tuple, matching the
// reference implementation's star condition exactly.
type starNeighborhood map[string][]neighbor

// buildStarNeighborhood runs the O(n^2) double scan described for the
// star-neighborhood builder: for every ordered pair (i, j), record a
// self-entry when i == j, or a neighbor entry when dist(i, j) <= dmax and
// the neighbor's feature does not exceed the center's in feature order.
func buildStarNeighborhood(objects []Object, dmax float64, fo featureOrder) starNeighborhood {
	star := make(starNeighborhood, len(objects))
	for i := range objects {
		oi := objects[i]
		for j := range objects {
			oj := objects[j]
			if i == j {
				star[oi.ID] = append(star[oi.ID], neighbor{id: oj.ID, feature: oj.Feature, dist: 0})
				continue
			}
			d := dist(oi, oj)
			if d <= dmax && fo.leq(oj.Feature, oi.Feature) {
				star[oi.ID] = append(star[oi.ID], neighbor{id: oj.ID, feature: oj.Feature, dist: d})
			}
		}
	}
	return star
}

// pairDistances returns the distinct pairwise distances in [d1, d2]
// observed in the star neighborhood, sorted descending — the D_pair
// sequence the range baselines walk.
func pairDistances(star starNeighborhood, d1, d2 float64) []float64 {
	seen := dedupe.NewSet()
	defer seen.Cleanup()
	distinct := make(map[float64]struct{})
	for center, neighs := range star {
		for _, n := range neighs {
			if n.id == center {
				continue
			}
			a, b := center, n.id
			if b < a {
				a, b = b, a
			}
			key := a + patternKeySep + b
			if seen.Contains(key) {
				continue
			}
			seen.Upsert(key)
			if n.dist >= d1 && n.dist <= d2 {
				distinct[n.dist] = struct{}{}
			}
		}
	}
	out := make([]float64, 0, len(distinct))
	for d := range distinct {
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

package rangecomine

import "sort"

// clique is one clique instance realizing a pattern at some diameter:
// the canonical (ascending-sorted) object id tuple, and its diameter.
type clique struct {
	ids []string
	dia float64
}

// cliqueID returns the canonical sorted-id key used to deduplicate
// clique observations that arise through symmetric neighbor traversals.
func cliqueID(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	out := sorted[0]
	for _, id := range sorted[1:] {
		out += patternKeySep + id
	}
	return out
}

// cliqueSet accumulates cliques keyed by canonical id tuple, retaining
// the smallest diameter observed for any duplicate — this is the arena
// for one candidate's clique instances.
type cliqueSet struct {
	byID map[string]clique
}

func newCliqueSet() *cliqueSet {
	return &cliqueSet{byID: make(map[string]clique)}
}

func (s *cliqueSet) add(ids []string, dia float64) {
	key := cliqueID(ids)
	if existing, ok := s.byID[key]; !ok || dia < existing.dia {
		s.byID[key] = clique{ids: append([]string(nil), ids...), dia: dia}
	}
}

func (s *cliqueSet) slice() []clique {
	out := make([]clique, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, c)
	}
	return out
}

// enumerateSize2Cliques implements the size-2 clique enumerator path: for
// candidate pattern (f1, f2), iterate every center whose feature is one
// of the two, and form a sorted id pair with every neighbor carrying the
// other feature. Diameter is the pair distance.
func enumerateSize2Cliques(pattern Pattern, star starNeighborhood, idx objectIndex) []clique {
	f1, f2 := pattern[0], pattern[1]
	set := newCliqueSet()
	for center, neighs := range star {
		cfeat := idx[center].Feature
		if cfeat != f1 && cfeat != f2 {
			continue
		}
		for _, n := range neighs {
			if n.feature != f1 && n.feature != f2 {
				continue
			}
			if n.feature == cfeat {
				continue
			}
			set.add([]string{center, n.id}, n.dist)
		}
	}
	return set.slice()
}

// enumerateCliques implements the size-k>=3 clique enumerator path:
// partition objects by feature within the candidate, take the Cartesian
// product across the k feature buckets, and keep every k-tuple whose
// C(k,2) pairwise distances are all <= dmax.
func enumerateCliques(pattern Pattern, idx objectIndex, dmax float64) []clique {
	byFeature := make(map[string][]string, len(pattern))
	for _, f := range pattern {
		byFeature[f] = nil
	}
	for id, o := range idx {
		if _, want := byFeature[o.Feature]; want {
			byFeature[o.Feature] = append(byFeature[o.Feature], id)
		}
	}
	for _, f := range pattern {
		sort.Strings(byFeature[f])
	}

	buckets := make(featureBuckets, len(pattern))
	for i, f := range pattern {
		buckets[i] = byFeature[f]
	}

	set := newCliqueSet()
	buckets.product(func(combo []string) {
		dia, ok := cliqueDiameterWithin(combo, idx, dmax)
		if ok {
			set.add(combo, dia)
		}
	})
	return set.slice()
}

// cliqueDiameterWithin returns the diameter of the given object ids and
// true if every pairwise distance is <= dmax.
func cliqueDiameterWithin(ids []string, idx objectIndex, dmax float64) (float64, bool) {
	max := 0.0
	for i := 0; i < len(ids); i++ {
		oi := idx[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			d := dist(oi, idx[ids[j]])
			if d > dmax {
				return 0, false
			}
			if d > max {
				max = d
			}
		}
	}
	return max, true
}

// featureBuckets is one object-id slice per feature of a pattern, in
// feature order. product enumerates the Cartesian product across the
// buckets by recursive construction, mirroring the teacher's ClusterBomb
// recursion: fix one bucket's element per recursive level until every
// bucket has contributed exactly one id, then invoke cb.
type featureBuckets [][]string

func (b featureBuckets) product(cb func(combo []string)) {
	if len(b) == 0 {
		return
	}
	for _, bucket := range b {
		if len(bucket) == 0 {
			return
		}
	}
	combo := make([]string, len(b))
	b.productAt(0, combo, cb)
}

func (b featureBuckets) productAt(depth int, combo []string, cb func(combo []string)) {
	if depth == len(b) {
		cb(combo)
		return
	}
	for _, id := range b[depth] {
		combo[depth] = id
		b.productAt(depth+1, combo, cb)
	}
}

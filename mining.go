package rangecomine

import (
	"github.com/colomine/rangecomine/internal/levelrun"
	"github.com/projectdiscovery/gologger"
)

// RangeCoMine is the core Range–CoMine engine: star-neighborhood
// construction, clique-instance enumeration, CDMP-pruned level-wise
// lattice traversal, and per-candidate critical-distance computation. It
// returns the ColList of every pattern whose critical distance falls in
// [d1, d2].
//
// The call owns all its intermediate state and releases it on return; it
// never mutates objects. Concurrency only affects scheduling, never the
// result (see WithConcurrency).
func RangeCoMine(objects []Object, d1, d2, minPrev float64, opts ...Option) (ColList, error) {
	if err := validateParams(objects, d1, d2, minPrev); err != nil {
		return nil, err
	}
	cfg := newMinerConfig(opts)

	idx := newObjectIndex(objects)
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, d2, fo)

	col := make(ColList)
	critical := make(map[string]float64, len(fo.features))

	prev := make([]Pattern, 0, len(fo.features))
	for _, f := range fo.features {
		p := newPattern([]string{f}, fo)
		col.insert(d1, p)
		critical[p.Key()] = d1
		prev = append(prev, p)
	}

	for k := 2; len(prev) > 0; k++ {
		var candidates []Pattern
		if k == 2 {
			candidates = size2Candidates(fo)
		} else {
			candidates = candidateJoin(prev, fo)
		}
		if len(candidates) == 0 {
			break
		}

		results := levelrun.Eval(candidates, cfg.concurrency, func(cand Pattern) levelCandidateResult {
			return evaluateCandidate(cand, k, star, idx, critical, d1, d2, minPrev)
		})

		next := make([]Pattern, 0, len(candidates))
		for _, r := range results {
			if !r.ok {
				continue
			}
			critical[r.pattern.Key()] = r.criticalD
			col.insert(r.criticalD, r.pattern)
			next = append(next, r.pattern)
		}
		gologger.Verbose().Msgf("level %d: %d candidates, %d prevalent", k, len(candidates), len(next))
		if cfg.onLevel != nil {
			cfg.onLevel(k, len(candidates), len(next))
		}
		prev = next
	}

	return col.finalize(fo), nil
}

type levelCandidateResult struct {
	pattern   Pattern
	criticalD float64
	ok        bool
}

// evaluateCandidate runs steps 4a-4e of the lattice driver for a single
// candidate pattern at level k.
func evaluateCandidate(cand Pattern, k int, star starNeighborhood, idx objectIndex, critical map[string]float64, d1, d2, minPrev float64) levelCandidateResult {
	var cliques []clique
	if k == 2 {
		cliques = enumerateSize2Cliques(cand, star, idx)
	} else {
		cliques = enumerateCliques(cand, idx, d2)
		cliques = cdmpPrune(cliques, cand, critical)
	}
	if len(cliques) == 0 {
		return levelCandidateResult{}
	}
	if participationIndex(cliques, cand, idx) < minPrev {
		return levelCandidateResult{}
	}
	d, ok := criticalDistance(cliques, cand, idx, d1, minPrev)
	if !ok {
		return levelCandidateResult{}
	}
	return levelCandidateResult{pattern: cand, criticalD: d, ok: true}
}

// cdmpPrune applies Critical-Distance-based Monotonic Pruning (k >= 3
// only): compute min_allowed = max(critical[sub]) over every
// (k-1)-subset of cand present in the critical-distance table, and
// discard any clique whose diameter is below it. A clique below a
// subpattern's critical distance induces a subpattern-clique that did
// not help that subpattern reach min_prev at a smaller d, so it carries
// no new critical-distance information for cand.
func cdmpPrune(cliques []clique, cand Pattern, critical map[string]float64) []clique {
	minAllowed := 0.0
	found := false
	combinations(cand, cand.Size()-1, func(sub []string) bool {
		key := Pattern(sub).Key()
		if d, ok := critical[key]; ok {
			if !found || d > minAllowed {
				minAllowed = d
				found = true
			}
		}
		return true
	})
	if !found {
		return cliques
	}
	out := cliques[:0:0]
	for _, c := range cliques {
		if c.dia >= minAllowed {
			out = append(out, c)
		}
	}
	return out
}

// size2Candidates returns every unordered feature pair as a Pattern.
func size2Candidates(fo featureOrder) []Pattern {
	var out []Pattern
	combinations(fo.features, 2, func(pair []string) bool {
		out = append(out, newPattern(pair, fo))
		return true
	})
	sortPatterns(out, fo)
	return out
}

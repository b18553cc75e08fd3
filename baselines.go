package rangecomine

import "github.com/colomine/rangecomine/internal/levelrun"

// NaiveRange is the naive range-mining oracle: it enumerates the set of
// pairwise distances D_pair within [d1, d2] in descending order, and at
// each distance recomputes every clique and prevalent pattern from
// scratch. For consecutive distances d_(i-1) > d_i, patterns prevalent at
// d_(i-1) but no longer prevalent at d_i receive critical distance
// d_(i-1) — the "previous distance" convention used throughout the
// baselines, one D_pair step coarser than RangeCoMine's own
// smallest-qualifying-diameter result (see DESIGN.md's Open Question
// decisions).
//
// Unlike RangeCoMine, NaiveRange does not seed size-1 patterns: a
// single-feature pattern never "drops out" between distances, so the
// baselines (faithfully ported from original_source/range_comine/baselines.py)
// never emit one. Cross-validation against RangeCoMine (property 6)
// therefore compares size >= 2 patterns only.
func NaiveRange(objects []Object, d1, d2, minPrev float64, opts ...Option) (ColList, error) {
	if err := validateParams(objects, d1, d2, minPrev); err != nil {
		return nil, err
	}
	cfg := newMinerConfig(opts)
	idx := newObjectIndex(objects)
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, d2, fo)

	dpair := pairDistances(star, d1, d2)
	if len(dpair) == 0 {
		return ColList{}, nil
	}

	cliquesByPat, patternsAll := cliquesAtDistance(dpair[0], star, idx, fo, cfg.concurrency)
	prevPrev := prevalentPatterns(patternsAll, cliquesByPat, idx, minPrev)

	col := make(ColList)
	for i := 1; i < len(dpair); i++ {
		d := dpair[i]
		cliquesNow, _ := cliquesAtDistance(d, star, idx, fo, cfg.concurrency)
		nowPrev := prevalentPatterns(patternsAll, cliquesNow, idx, minPrev)
		for _, p := range setDiff(prevPrev, nowPrev) {
			col.insert(dpair[i-1], p)
		}
		prevPrev = nowPrev
	}
	// Patterns still prevalent at the smallest evaluated distance never
	// dropped out, so the descending-pair scan never assigns them a
	// critical distance; they receive the smallest D_pair value tested.
	for _, p := range prevPrev {
		col.insert(dpair[len(dpair)-1], p)
	}
	return col.finalize(fo), nil
}

// RangeIncMining has identical semantics to NaiveRange but maintains the
// clique sets across descending distances instead of recomputing them:
// at each step it drops cliques whose diameter exceeds the new distance
// (an incremental shrink) rather than re-enumerating from scratch.
func RangeIncMining(objects []Object, d1, d2, minPrev float64, opts ...Option) (ColList, error) {
	if err := validateParams(objects, d1, d2, minPrev); err != nil {
		return nil, err
	}
	cfg := newMinerConfig(opts)
	idx := newObjectIndex(objects)
	fo := newFeatureOrder(objects)
	star := buildStarNeighborhood(objects, d2, fo)

	dpair := pairDistances(star, d1, d2)
	if len(dpair) == 0 {
		return ColList{}, nil
	}

	cliquesByPat, patternsAll := cliquesAtDistance(dpair[0], star, idx, fo, cfg.concurrency)
	prevPrev := prevalentPatterns(patternsAll, cliquesByPat, idx, minPrev)

	col := make(ColList)
	for i := 1; i < len(dpair); i++ {
		d := dpair[i]
		for key, cliques := range cliquesByPat {
			cliquesByPat[key] = filterByDiameter(cliques, d)
		}
		nowPrev := prevalentPatterns(patternsAll, cliquesByPat, idx, minPrev)
		for _, p := range setDiff(prevPrev, nowPrev) {
			col.insert(dpair[i-1], p)
		}
		prevPrev = nowPrev
	}
	for _, p := range prevPrev {
		col.insert(dpair[len(dpair)-1], p)
	}
	return col.finalize(fo), nil
}

// cliquesAtDistance builds, from scratch, the clique set of every
// pattern reachable by Apriori join at threshold d: every size-2 feature
// pair (filtered to diameter <= d from the d2-built star), then every
// larger candidate whose clique set is non-empty at d, level by level,
// until no candidate survives.
func cliquesAtDistance(d float64, star starNeighborhood, idx objectIndex, fo featureOrder, concurrency int) (map[string][]clique, []Pattern) {
	byPattern := make(map[string][]clique)
	var all []Pattern

	pairs := size2Candidates(fo)
	for _, p := range pairs {
		byPattern[p.Key()] = filterByDiameter(enumerateSize2Cliques(p, star, idx), d)
		all = append(all, p)
	}

	prev := pairs
	for {
		cands := candidateJoin(prev, fo)
		if len(cands) == 0 {
			break
		}
		cliquesPerCand := levelrun.Eval(cands, concurrency, func(cand Pattern) []clique {
			return enumerateCliques(cand, idx, d)
		})
		var next []Pattern
		for i, cand := range cands {
			cliques := cliquesPerCand[i]
			if len(cliques) > 0 {
				byPattern[cand.Key()] = cliques
				next = append(next, cand)
				all = append(all, cand)
			}
		}
		if len(next) == 0 {
			break
		}
		prev = next
	}
	return byPattern, all
}

// prevalentPatterns returns the subset of patterns whose PI (computed
// from their clique set in cliquesByPat) meets minPrev.
func prevalentPatterns(patterns []Pattern, cliquesByPat map[string][]clique, idx objectIndex, minPrev float64) []Pattern {
	var out []Pattern
	for _, p := range patterns {
		cliques := cliquesByPat[p.Key()]
		if len(cliques) == 0 {
			continue
		}
		if participationIndex(cliques, p, idx) >= minPrev {
			out = append(out, p)
		}
	}
	return out
}

func filterByDiameter(cliques []clique, d float64) []clique {
	out := make([]clique, 0, len(cliques))
	for _, c := range cliques {
		if c.dia <= d {
			out = append(out, c)
		}
	}
	return out
}

// setDiff returns the patterns in a whose key is not present in b.
func setDiff(a, b []Pattern) []Pattern {
	inB := make(map[string]struct{}, len(b))
	for _, p := range b {
		inB[p.Key()] = struct{}{}
	}
	var out []Pattern
	for _, p := range a {
		if _, ok := inB[p.Key()]; !ok {
			out = append(out, p)
		}
	}
	return out
}

package rangecomine

import "sort"

// participationIndex computes PI over a set of cliques for the given
// pattern features: the minimum, over each feature, of the fraction of
// that feature's dataset instances appearing in at least one clique. PI
// is 0 if the clique set is empty or any feature has zero total
// instances in the dataset.
func participationIndex(cliques []clique, pattern Pattern, idx objectIndex) float64 {
	if len(cliques) == 0 {
		return 0
	}
	features := make(map[string]struct{}, len(pattern))
	for _, f := range pattern {
		features[f] = struct{}{}
	}
	totals := totalByFeature(idx, features)
	seen := make(map[string]map[string]struct{}, len(pattern))
	for f := range features {
		seen[f] = make(map[string]struct{})
	}
	for _, c := range cliques {
		for _, id := range c.ids {
			f := idx[id].Feature
			if _, ok := seen[f]; ok {
				seen[f][id] = struct{}{}
			}
		}
	}
	pi := 1.0
	for f := range features {
		total := totals[f]
		if total == 0 {
			return 0
		}
		ratio := float64(len(seen[f])) / float64(total)
		if ratio < pi {
			pi = ratio
		}
	}
	return pi
}

// criticalDistance finds the smallest diameter d in {diameters of
// cliques} intersected with [d1, d2] such that the PI computed from the
// cumulative subset of cliques with diameter <= d meets minPrev. Returns
// (0, false) if no diameter qualifies.
//
// The three steps: group per-feature object ids by diameter level, walk
// diameters ascending while maintaining a running per-feature union, and
// return the first d >= d1 whose PI meets minPrev. PI is monotone
// non-decreasing in d, so the first-meeting distance is well defined.
func criticalDistance(cliques []clique, pattern Pattern, idx objectIndex, d1, minPrev float64) (float64, bool) {
	if len(cliques) == 0 {
		return 0, false
	}
	features := make(map[string]struct{}, len(pattern))
	for _, f := range pattern {
		features[f] = struct{}{}
	}
	totals := totalByFeature(idx, features)

	byDiameter := make(map[float64]map[string][]string)
	diameterSet := make(map[float64]struct{})
	for _, c := range cliques {
		diameterSet[c.dia] = struct{}{}
		if byDiameter[c.dia] == nil {
			byDiameter[c.dia] = make(map[string][]string)
		}
		for _, id := range c.ids {
			f := idx[id].Feature
			byDiameter[c.dia][f] = append(byDiameter[c.dia][f], id)
		}
	}
	diameters := make([]float64, 0, len(diameterSet))
	for d := range diameterSet {
		diameters = append(diameters, d)
	}
	sort.Float64s(diameters)

	running := make(map[string]map[string]struct{}, len(features))
	for f := range features {
		running[f] = make(map[string]struct{})
	}

	for _, d := range diameters {
		for f, ids := range byDiameter[d] {
			for _, id := range ids {
				running[f][id] = struct{}{}
			}
		}
		if d < d1 {
			continue
		}
		pi := 1.0
		for f := range features {
			total := totals[f]
			if total == 0 {
				pi = 0
				break
			}
			ratio := float64(len(running[f])) / float64(total)
			if ratio < pi {
				pi = ratio
			}
		}
		if pi >= minPrev {
			return d, true
		}
	}
	return 0, false
}

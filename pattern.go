package rangecomine

import (
	"sort"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// patternKeySep separates features in a Pattern.Key() string. Feature
// labels are validated at load time to exclude this byte (see
// internal/loader), so keys never collide across distinct patterns.
const patternKeySep = "\x1f"

// Pattern is a non-empty set of distinct features, canonicalized as a
// tuple sorted in the feature order.
type Pattern []string

// newPattern canonicalizes features into a Pattern: de-duplicated (as the
// teacher dedupes payload word lists in mutator.go) and sorted per fo.
func newPattern(features []string, fo featureOrder) Pattern {
	out := Pattern(sliceutil.Dedupe(features))
	sort.Slice(out, func(i, j int) bool { return fo.rank[out[i]] < fo.rank[out[j]] })
	return out
}

// Key returns a stable, comparable representation of the pattern for use
// as a map key.
func (p Pattern) Key() string {
	return strings.Join(p, patternKeySep)
}

// Size returns the number of features in the pattern.
func (p Pattern) Size() int {
	return len(p)
}

// sortPatterns orders patterns in feature order: lexicographically by
// their (already feature-order-sorted) members, with a pattern that is a
// prefix of another sorting before it (so (A) < (A,B) < (C)).
func sortPatterns(patterns []Pattern, fo featureOrder) {
	sort.Slice(patterns, func(i, j int) bool {
		a, b := patterns[i], patterns[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return fo.rank[a[k]] < fo.rank[b[k]]
			}
		}
		return len(a) < len(b)
	})
}

// candidateJoin is the Apriori candidate generator: from the prevalent
// (k-1)-patterns in prev, produce every size-k union of two patterns
// sharing their first k-2 features, pruning any candidate missing one of
// its (k-1)-sized subsets from prev.
func candidateJoin(prev []Pattern, fo featureOrder) []Pattern {
	if len(prev) == 0 {
		return nil
	}
	k := prev[0].Size() + 1

	prevSet := make(map[string]struct{}, len(prev))
	for _, p := range prev {
		prevSet[p.Key()] = struct{}{}
	}

	seen := make(map[string]Pattern)
	for i := 0; i < len(prev); i++ {
		for j := i + 1; j < len(prev); j++ {
			p, q := prev[i], prev[j]
			if !sharePrefix(p, q) {
				continue
			}
			union := unionFeatures(p, q, fo)
			if len(union) != k {
				continue
			}
			if !allSubsetsPresent(union, k-1, prevSet, fo) {
				continue
			}
			key := union.Key()
			if _, ok := seen[key]; !ok {
				seen[key] = union
			}
		}
	}

	out := make([]Pattern, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sortPatterns(out, fo)
	return out
}

// sharePrefix reports whether two same-size patterns agree on every
// feature but the last.
func sharePrefix(p, q Pattern) bool {
	if len(p) != len(q) || len(p) == 0 {
		return false
	}
	for i := 0; i < len(p)-1; i++ {
		if p[i] != q[i] {
			return false
		}
	}
	return p[len(p)-1] != q[len(q)-1]
}

func unionFeatures(p, q Pattern, fo featureOrder) Pattern {
	all := make([]string, 0, len(p)+len(q))
	all = append(all, p...)
	all = append(all, q...)
	return newPattern(all, fo)
}

// allSubsetsPresent checks every size-(k-1) subset of cand is in prevSet.
func allSubsetsPresent(cand Pattern, size int, prevSet map[string]struct{}, fo featureOrder) bool {
	ok := true
	combinations(cand, size, func(sub []string) bool {
		key := newPattern(sub, fo).Key()
		if _, present := prevSet[key]; !present {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// combinations invokes cb with every size-n combination of elements,
// stopping early if cb returns false.
func combinations(elements []string, n int, cb func([]string) bool) {
	if n <= 0 || n > len(elements) {
		return
	}
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		combo := make([]string, n)
		for i, idx := range idxs {
			combo[i] = elements[idx]
		}
		if !cb(combo) {
			return
		}
		i := n - 1
		for i >= 0 && idxs[i] == i+len(elements)-n {
			i--
		}
		if i < 0 {
			return
		}
		idxs[i]++
		for j := i + 1; j < n; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}

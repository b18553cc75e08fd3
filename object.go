package rangecomine

import "sort"

// Object is an immutable spatial record: a stable id, a categorical
// feature label, and planar coordinates.
type Object struct {
	ID      string
	Feature string
	X       float64
	Y       float64
}

// objectIndex is the single owning lookup from id to Object, built once
// per miner invocation. No other structure stores Objects by value; all
// relational structures (star neighborhood, cliques) carry only ids.
type objectIndex map[string]Object

func newObjectIndex(objects []Object) objectIndex {
	idx := make(objectIndex, len(objects))
	for _, o := range objects {
		idx[o.ID] = o
	}
	return idx
}

// featureOrder is the deterministic total order on feature labels,
// obtained by sorting the distinct labels lexicographically.
type featureOrder struct {
	features []string
	rank     map[string]int
}

func newFeatureOrder(objects []Object) featureOrder {
	seen := make(map[string]struct{})
	for _, o := range objects {
		seen[o.Feature] = struct{}{}
	}
	features := make([]string, 0, len(seen))
	for f := range seen {
		features = append(features, f)
	}
	sort.Strings(features)
	rank := make(map[string]int, len(features))
	for i, f := range features {
		rank[f] = i
	}
	return featureOrder{features: features, rank: rank}
}

// leq reports whether feature a precedes or equals feature b in the
// total order.
func (fo featureOrder) leq(a, b string) bool {
	return fo.rank[a] <= fo.rank[b]
}

// totalByFeature returns, for every feature in the given set, the total
// number of objects in the dataset carrying that feature.
func totalByFeature(idx objectIndex, features map[string]struct{}) map[string]int {
	totals := make(map[string]int, len(features))
	for f := range features {
		totals[f] = 0
	}
	for _, o := range idx {
		if _, ok := features[o.Feature]; ok {
			totals[o.Feature]++
		}
	}
	return totals
}

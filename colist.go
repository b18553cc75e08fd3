package rangecomine

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// ColList maps a critical distance to the set of patterns attaining it.
// A pattern appears under at most one key; every key d satisfies
// d1 <= d <= d2.
type ColList map[float64][]Pattern

// insert records that pattern attains critical distance d, appending it
// to the bucket rather than replacing it (buckets accumulate patterns
// discovered across lattice levels).
func (cl ColList) insert(d float64, p Pattern) {
	cl[d] = append(cl[d], p)
}

// sortedKeys returns the ColList's keys in ascending order.
func (cl ColList) sortedKeys() []float64 {
	keys := make([]float64, 0, len(cl))
	for k := range cl {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

// finalize returns a copy of cl with each bucket sorted in feature
// order, ready for rendering. The input ColList is left untouched.
func (cl ColList) finalize(fo featureOrder) ColList {
	out := make(ColList, len(cl))
	for d, patterns := range cl {
		cp := append([]Pattern(nil), patterns...)
		sortPatterns(cp, fo)
		out[d] = cp
	}
	return out
}

// MarshalJSON renders the ColList as a JSON object with keys sorted
// ascending and rendered via strconv's shortest round-trip float
// formatting, and each bucket's patterns as arrays of feature strings in
// the order they're already stored. This produces byte-identical output
// across runs and across input-sequence permutations, independent of Go
// map iteration order.
func (cl ColList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	keys := cl.sortedKeys()
	for i, d := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatFloat(d, 'g', -1, 64))
		buf.WriteString(`":[`)
		for j, p := range cl[d] {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('[')
			for k, f := range p {
				if k > 0 {
					buf.WriteByte(',')
				}
				escaped, _ := json.Marshal(f)
				buf.Write(escaped)
			}
			buf.WriteByte(']')
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

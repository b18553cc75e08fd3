package runner

import (
	"io"

	rangecomine "github.com/colomine/rangecomine"
)

// WriteResult marshals the ColList as JSON to w.
func WriteResult(w io.Writer, col rangecomine.ColList) error {
	bin, err := col.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(bin, '\n'))
	return err
}

// VerboseLevelSummary renders the per-level summary line shown under
// --verbose, reusing the teacher's fasttemplate-based Replace.
func VerboseLevelSummary(k, candidates, prevalent int) string {
	return rangecomine.Replace("level={{k}} candidates={{candidates}} prevalent={{prevalent}}", map[string]interface{}{
		"k":          k,
		"candidates": candidates,
		"prevalent":  prevalent,
	})
}

package rangecomine

import (
	"fmt"

	"github.com/projectdiscovery/utils/errkit"
)

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) so callers
// can errors.Is against these while still getting a descriptive message.
var (
	// ErrInvalidParameter reports d1 < 0, d2 < d1, minPrev outside (0, 1],
	// or an empty feature set.
	ErrInvalidParameter = errkit.New("invalid parameter")
	// ErrDegenerateInput is not returned by the miners (a degenerate
	// dataset yields a minimal ColList, not an error); it is exposed for
	// callers that want to distinguish "no pairs in range" explicitly.
	ErrDegenerateInput = errkit.New("no object pair within [d1, d2]")
)

// validateParams enforces the entry-boundary preconditions shared by
// RangeCoMine, NaiveRange and RangeIncMining.
func validateParams(objects []Object, d1, d2, minPrev float64) error {
	if d1 < 0 {
		return fmt.Errorf("d1 must be >= 0, got %v: %w", d1, ErrInvalidParameter)
	}
	if d2 < d1 {
		return fmt.Errorf("d2 (%v) must be >= d1 (%v): %w", d2, d1, ErrInvalidParameter)
	}
	if minPrev <= 0 || minPrev > 1 {
		return fmt.Errorf("min_prev must be in (0, 1], got %v: %w", minPrev, ErrInvalidParameter)
	}
	if len(objects) == 0 {
		return fmt.Errorf("empty feature set: %w", ErrInvalidParameter)
	}
	hasFeature := false
	for _, o := range objects {
		if o.Feature != "" {
			hasFeature = true
			break
		}
	}
	if !hasFeature {
		return fmt.Errorf("empty feature set: %w", ErrInvalidParameter)
	}
	return nil
}

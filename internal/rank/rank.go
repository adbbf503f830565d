// Package rank computes fractional sort keys for tasks inside a section.
package rank

import "time"

// Allocate returns a rank that sorts right after before and right before
// after. Either neighbor may be missing; with neither, the rank is now in
// Unix milliseconds so fresh tasks land behind older integer-ish ranks.
//
// Existing ranks are never rewritten. Repeated midpoints between the same
// pair eventually collide in float64; see Spread.
func Allocate(before, after *float64, now time.Time) float64 {
	switch {
	case before != nil && after != nil:
		return (*before + *after) / 2
	case before != nil:
		return *before + 1
	case after != nil:
		return *after - 1
	default:
		return float64(now.UnixMilli())
	}
}

// Spread returns n evenly spaced ranks starting at step.
func Spread(n int, step float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = step * float64(i+1)
	}
	return out
}

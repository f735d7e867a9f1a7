// Package plan computes the generation plan: which length limits to
// generate headers for, and how a single length limit decomposes into
// string-indexing expressions.
package plan

import (
	"fmt"
	"strconv"
)

// Limit is one length limit a header is generated for.
type Limit struct {
	Value int
	Name  string // decimal value zero-padded to the width of the maximum
}

// LengthLimits returns the stepped sequence of length limits for a
// maximum limit and step size: step, 2*step, ... rounded up past the
// maximum. When maxLimit is not a multiple of step the last limit
// overshoots by up to step-1; callers must treat the returned set, not
// maxLimit, as the authoritative list of limits to generate.
func LengthLimits(maxLimit, step int) []Limit {
	width := len(strconv.Itoa(maxLimit))
	var limits []Limit
	for limit := step; limit < maxLimit+step-1; limit += step {
		limits = append(limits, Limit{
			Value: limit,
			Name:  fmt.Sprintf("%0*d", width, limit),
		})
	}
	return limits
}

// MaxValue returns the largest limit value in the sequence.
func MaxValue(limits []Limit) int {
	max := 0
	for _, l := range limits {
		if l.Value > max {
			max = l.Value
		}
	}
	return max
}

package trend

import (
	"fmt"
	"math"

	"github.com/arloliu/lsts/errs"
)

// DefaultMergeThreshold is the membership degree above which two adjacent
// trends count as the same category.
const DefaultMergeThreshold = 0.7

// ValidateThreshold reports whether threshold is a usable membership threshold.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidThreshold, threshold)
	}

	return nil
}

// Merge coalesces adjacent trends that belong to the same category.
//
// Trends are scanned left to right. When a single membership function scores
// at least threshold for both the previous (possibly already merged) trend
// and the current one, the two are replaced by their merge; otherwise both are
// kept. A run of same-category trends therefore collapses into one.
//
// A merged trend spans both inputs: the smaller start index with its time,
// the larger end index with its time, the sum of the spans, and the union of
// the cones. The merge does not depend on which membership triggered it.
//
// Parameters:
//   - trends: Contiguous trends in series order, e.g. from Segment
//   - memberships: Category membership functions, e.g. DynamicMemberships
//   - threshold: Minimum degree in [0, 1], usually DefaultMergeThreshold
//
// Returns:
//   - []PartialTrend[X]: Merged trends in series order
//   - error: ErrInvalidThreshold for a threshold outside [0, 1]
func Merge[X any](trends []PartialTrend[X], memberships []Membership[X], threshold float64) ([]PartialTrend[X], error) {
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	merged := make([]PartialTrend[X], 0, len(trends))
	for _, curr := range trends {
		if len(merged) == 0 {
			merged = append(merged, curr)
			continue
		}

		last := len(merged) - 1
		if prev := merged[last]; shareCategory(prev, curr, memberships, threshold) {
			merged[last] = combine(prev, curr)
		} else {
			merged = append(merged, curr)
		}
	}

	return merged, nil
}

func shareCategory[X any](a, b PartialTrend[X], memberships []Membership[X], threshold float64) bool {
	for _, u := range memberships {
		if u(a) >= threshold && u(b) >= threshold {
			return true
		}
	}

	return false
}

func combine[X any](a, b PartialTrend[X]) PartialTrend[X] {
	out := PartialTrend[X]{
		IndexStart:     a.IndexStart,
		TimeStart:      a.TimeStart,
		IndexEnd:       a.IndexEnd,
		TimeEnd:        a.TimeEnd,
		PercentageSpan: a.PercentageSpan + b.PercentageSpan,
		Cone:           UnionCone(a.Cone, b.Cone),
	}
	if b.IndexStart < out.IndexStart {
		out.IndexStart, out.TimeStart = b.IndexStart, b.TimeStart
	}
	if b.IndexEnd > out.IndexEnd {
		out.IndexEnd, out.TimeEnd = b.IndexEnd, b.TimeEnd
	}

	return out
}

package trend

import (
	"fmt"
	"math"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/point"
)

// PartialTrend is a maximal run of a series that a single straight line
// approximates within the segmentation tolerance.
//
// Fields:
//   - IndexStart, IndexEnd: Indices of the first and last point in the original series
//   - TimeStart, TimeEnd: X values of those points
//   - PercentageSpan: Share of the normalized x range covered by the trend
//   - Cone: Slopes consistent with every point of the trend
type PartialTrend[X any] struct {
	IndexStart     int
	IndexEnd       int
	TimeStart      X
	TimeEnd        X
	PercentageSpan float64
	Cone           Cone
}

// String returns a string representation of the trend.
func (t PartialTrend[X]) String() string {
	return fmt.Sprintf("PartialTrend{[%d, %d], span: %.4f, %s}", t.IndexStart, t.IndexEnd, t.PercentageSpan, t.Cone)
}

// ValidateEps reports whether eps is a usable segmentation tolerance.
func ValidateEps(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidEpsilon, eps)
	}

	return nil
}

// Segment partitions a normalized series into partial trends with the
// Sklansky and Gonzalez maximal segment algorithm, modified for uniform
// eps-approximation: a run i..j is kept as long as the cones from point i to
// the eps-disks of every later point of the run still intersect.
//
// Returned trends are contiguous (each trend starts where the previous one
// ends) and together cover [0, n-1]. Times are taken from original.
//
// Reference: Kacprzyk, Wilbik and Zadrożny, "Linguistic summarization of time
// series using a fuzzy quantifier driven aggregation", Fuzzy Sets and Systems
// 159.12 (2008).
//
// Parameters:
//   - original: Series as supplied by the caller, indexed like normalized
//   - normalized: The same series normalized with point.Normalize
//   - eps: Radius of the tolerance disk around each point, in normalized units
//
// Returns:
//   - []PartialTrend[X]: Trends in series order; empty for fewer than two points
//   - error: ErrInvalidEpsilon or ErrLengthMismatch
func Segment[X any](original []point.XY[X], normalized []point.NormalizedPoint, eps float64) ([]PartialTrend[X], error) {
	if err := ValidateEps(eps); err != nil {
		return nil, err
	}
	if len(original) != len(normalized) {
		return nil, fmt.Errorf("%w: %d points vs %d normalized points", errs.ErrLengthMismatch, len(original), len(normalized))
	}

	n := len(normalized)
	if n <= 1 {
		return []PartialTrend[X]{}, nil
	}

	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, p := range normalized {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
	}
	xspan := xmax - xmin

	trends := make([]PartialTrend[X], 0, 4)
	i, j := 0, 1
	for j < n {
		k := j
		coneij := NewCone(normalized[i], normalized[k], eps)
		for {
			j = k
			k++
			if k == n {
				break
			}
			next, ok := IntersectCone(coneij, NewCone(normalized[i], normalized[k], eps))
			if !ok {
				break
			}
			coneij = next
		}

		span := 0.0
		if xspan > 0 {
			span = (normalized[j].X - normalized[i].X) / xspan
		}
		trends = append(trends, PartialTrend[X]{
			IndexStart:     i,
			IndexEnd:       j,
			TimeStart:      original[i].X,
			TimeEnd:        original[j].X,
			PercentageSpan: span,
			Cone:           coneij,
		})

		i = j
		j = k
	}

	return trends, nil
}

// Package smooth produces trend-following versions of a series.
//
// Both smoothers keep the x values of their input and return a series of the
// same length; no point is dropped at the boundaries.
package smooth

import (
	"fmt"
	"math"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/point"
)

// DefaultAlpha is the default exponential smoothing factor.
const DefaultAlpha = 0.3

// ValidateAlpha reports whether alpha is a usable smoothing factor.
func ValidateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidAlpha, alpha)
	}

	return nil
}

// ExponentialMovingAverage smooths points with the recurrence
//
//	S[0] = Y[0]
//	S[t] = alpha*Y[t] + (1-alpha)*S[t-1]
//
// A higher alpha discounts older observations faster; alpha = 1 returns the
// input values unchanged.
//
// Parameters:
//   - points: Series to smooth
//   - alpha: Smoothing factor in (0, 1]
//
// Returns:
//   - []point.XY[X]: Smoothed series with the input's x values
//   - error: ErrInvalidAlpha if alpha is outside (0, 1]
func ExponentialMovingAverage[X any](points []point.XY[X], alpha float64) ([]point.XY[X], error) {
	if err := ValidateAlpha(alpha); err != nil {
		return nil, err
	}

	out := make([]point.XY[X], len(points))
	for i, p := range points {
		s := p.Y
		if i > 0 {
			s = alpha*p.Y + (1.0-alpha)*out[i-1].Y
		}
		out[i] = point.XY[X]{X: p.X, Y: s}
	}

	return out, nil
}

// CenteredMovingAverage smooths points with two windows around each index i:
// a left window points[max(0, i-k) .. i] and a right window
// points[i .. min(n-1, i+k)], both inclusive. The smoothed value is the
// average of the two window means. Windows shrink near the edges, so the
// output has the same length as the input. k = 0 returns the input values.
//
// Parameters:
//   - points: Series to smooth
//   - k: Half window size, must not be negative
//
// Returns:
//   - []point.XY[X]: Smoothed series with the input's x values
//   - error: ErrInvalidWindow if k is negative
func CenteredMovingAverage[X any](points []point.XY[X], k int) ([]point.XY[X], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, k)
	}

	n := len(points)
	// prefix[i] holds the sum of the first i values
	prefix := make([]float64, n+1)
	for i, p := range points {
		prefix[i+1] = prefix[i] + p.Y
	}
	windowMean := func(lo, hi int) float64 { // [lo, hi)
		return (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}

	out := make([]point.XY[X], n)
	for i, p := range points {
		left := windowMean(max(0, i-k), i+1)
		right := windowMean(i, min(n, i+k+1))
		out[i] = point.XY[X]{X: p.X, Y: 0.5 * (left + right)}
	}

	return out, nil
}

// Package linear fits straight lines to numeric points.
//
// It reports the slope as a gradient and as an angle, the coefficient of
// determination, and residual statistics. Callers use it to describe how well
// a segment of a series follows a line; trend segmentation itself works on
// cones and does not depend on this package.
package linear

import (
	"fmt"
	"math"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/internal/pool"
	"github.com/arloliu/lsts/point"
)

// Fit performs ordinary least squares regression of y on x.
//
// Parameters:
//   - points: Numeric points, at least two with distinct x values
//
// Returns:
//   - *Model: The fitted model
//   - error: ErrInsufficientPoints for fewer than two points,
//     ErrDegenerateFit when every x value is identical
func Fit(points []point.NumPoint) (*Model, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: linear fit needs 2 points, got %d", errs.ErrInsufficientPoints, n)
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	// centered moments; raw moments lose precision on Unix-millisecond ordinals
	var sxx, sxy float64
	for _, p := range points {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}
	if sxx == 0 {
		return nil, errs.ErrDegenerateFit
	}

	m := sxy / sxx
	c := meanY - m*meanX

	prediction := make([]point.NumPoint, n)
	predicted, cleanupPredicted := pool.GetFloat64Slice(n)
	defer cleanupPredicted()
	observed, cleanupObserved := pool.GetFloat64Slice(n)
	defer cleanupObserved()
	residuals, cleanupResiduals := pool.GetFloat64Slice(n)
	defer cleanupResiduals()

	absSum := 0.0
	for i, p := range points {
		py := m*p.X + c
		prediction[i] = point.NumPoint{X: p.X, Y: py}
		predicted[i] = py
		observed[i] = p.Y
		residuals[i] = p.Y - py
		absSum += math.Abs(residuals[i])
	}

	return &Model{
		Gradient:          m,
		GradientAngleRad:  math.Atan(m),
		YIntercept:        c,
		R2:                RSquared(observed, predicted),
		Prediction:        prediction,
		AbsoluteErrorMean: absSum / float64(n),
		ErrorStd:          Std(residuals),
	}, nil
}

// RSquared calculates the coefficient of determination of predicted against observed.
//
// Returns 1 when observed has zero variance and is matched exactly, 0 when it
// has zero variance otherwise, and 0 for empty input.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := Mean(observed)
	ssTot := 0.0 // total sum of squares
	ssRes := 0.0 // residual sum of squares
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// Mean calculates the arithmetic mean (0 for an empty slice).
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Std calculates the sample standard deviation (0 for fewer than two values).
func Std(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Package point defines the series points consumed by lsts and the
// normalization that maps them into the chart-shaped domain used for angle
// computation.
package point

import (
	"math"
	"time"
)

// XY is a single observation of a series. X is the ordering key (a timestamp
// or a number), Y the observed value.
type XY[X any] struct {
	X X
	Y float64
}

// TimePoint is a time-indexed observation.
type TimePoint = XY[time.Time]

// NumPoint is a numerically indexed observation.
type NumPoint = XY[float64]

// NormalizedPoint is a point rescaled for geometry together with its
// original coordinates.
type NormalizedPoint struct {
	X    float64 // X is the normalized x value, in [0, XRange] with default limits.
	Y    float64 // Y is the normalized y value, in [0, 1] with default limits.
	RawX float64 // RawX is the x value before normalization.
	RawY float64 // RawY is the y value before normalization.
}

// TimeOrdinal maps a timestamp to Unix milliseconds.
func TimeOrdinal(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// NumOrdinal is the identity ordinal for numerically indexed points.
func NumOrdinal(x float64) float64 {
	return x
}

// Ordinals converts points to NumPoints using the given ordinal mapping.
func Ordinals[X any](points []XY[X], ordinal func(X) float64) []NumPoint {
	out := make([]NumPoint, len(points))
	for i, p := range points {
		out[i] = NumPoint{X: ordinal(p.X), Y: p.Y}
	}

	return out
}

// Values returns the y values of points.
func Values[X any](points []XY[X]) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Y
	}

	return out
}

// FromTimes pairs timestamps with values. The shorter slice bounds the result.
func FromTimes(times []time.Time, values []float64) []TimePoint {
	n := min(len(times), len(values))
	out := make([]TimePoint, n)
	for i := range n {
		out[i] = TimePoint{X: times[i], Y: values[i]}
	}

	return out
}

// Daily builds a time series with one point per day starting at start.
func Daily(start time.Time, values ...float64) []TimePoint {
	out := make([]TimePoint, len(values))
	for i, v := range values {
		out[i] = TimePoint{X: start.AddDate(0, 0, i), Y: v}
	}

	return out
}

func minMax(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

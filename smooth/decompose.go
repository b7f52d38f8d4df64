package smooth

import (
	"fmt"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/point"
)

// Decomposition holds the components of an additive decomposition:
//
//	Points[i].Y    = Trend[i].Y + Seasonal[i].Y + Residual[i].Y
//	Detrended[i].Y = Points[i].Y - Trend[i].Y
type Decomposition[X any] struct {
	Detrended []point.XY[X]
	Seasonal  []point.XY[X]
	Residual  []point.XY[X]
}

// AdditiveDecompose splits points into detrended, seasonal and residual
// series given a trend series (typically the output of one of the smoothers).
//
// The seasonal value of a point is the mean detrended value of every point
// sharing its group, as returned by group. Grouping by weekday yields a
// weekly seasonal profile, for example.
//
// Parameters:
//   - points: Observed series
//   - trend: Trend series with the same length as points
//   - group: Maps a point to its seasonal group
//
// Returns:
//   - *Decomposition[X]: Detrended, seasonal and residual series
//   - error: ErrLengthMismatch if trend and points differ in length
func AdditiveDecompose[X any, G comparable](points, trend []point.XY[X], group func(point.XY[X]) G) (*Decomposition[X], error) {
	if len(points) != len(trend) {
		return nil, fmt.Errorf("%w: %d points vs %d trend points", errs.ErrLengthMismatch, len(points), len(trend))
	}

	n := len(points)
	detrended := make([]point.XY[X], n)
	for i, p := range points {
		detrended[i] = point.XY[X]{X: p.X, Y: p.Y - trend[i].Y}
	}

	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[G]*acc)
	keys := make([]G, n)
	for i, p := range points {
		// group sees observed points, not detrended ones
		key := group(p)
		keys[i] = key
		a, ok := groups[key]
		if !ok {
			a = &acc{}
			groups[key] = a
		}
		a.sum += detrended[i].Y
		a.count++
	}

	seasonal := make([]point.XY[X], n)
	residual := make([]point.XY[X], n)
	for i, p := range points {
		a := groups[keys[i]]
		s := a.sum / float64(a.count)
		seasonal[i] = point.XY[X]{X: p.X, Y: s}
		residual[i] = point.XY[X]{X: p.X, Y: p.Y - trend[i].Y - s}
	}

	return &Decomposition[X]{
		Detrended: detrended,
		Seasonal:  seasonal,
		Residual:  residual,
	}, nil
}

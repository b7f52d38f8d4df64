package point

const (
	// XRange is the upper bound of normalized x values. It matches the 8:5
	// aspect ratio of the rendered chart so that angles computed on
	// normalized points match the angles a reader sees.
	XRange = 8.0 / 5.0

	// NormalizeEps guards zero-width ranges in normalization.
	NormalizeEps = 1e-5
)

// AxisLimit overrides the data-derived bounds of an axis. A nil bound is
// derived from the data.
type AxisLimit struct {
	Min *float64
	Max *float64
}

// Bound returns a pointer to v, for use in AxisLimit literals.
func Bound(v float64) *float64 {
	return &v
}

// Lift converts NumPoints to NormalizedPoints without rescaling.
func Lift(points []NumPoint) []NormalizedPoint {
	out := make([]NormalizedPoint, len(points))
	for i, p := range points {
		out[i] = NormalizedPoint{X: p.X, Y: p.Y, RawX: p.X, RawY: p.Y}
	}

	return out
}

// NormalizeX rescales x values to [0, XRange]:
//
//	x' = (x - xmin) / (xmax - xmin + NormalizeEps) * XRange
//
// xmin and xmax default to the data extremes. Y values are carried through
// unchanged. The output has the same length and order as the input.
func NormalizeX(points []NumPoint, lim AxisLimit) []NormalizedPoint {
	out := Lift(points)
	if len(out) == 0 {
		return out
	}

	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	xmin, xmax := minMax(xs)
	if lim.Min != nil {
		xmin = *lim.Min
	}
	if lim.Max != nil {
		xmax = *lim.Max
	}

	denom := span(xmin, xmax)
	for i := range out {
		out[i].X = (out[i].RawX - xmin) / denom * XRange
	}

	return out
}

// NormalizeY rescales y values:
//
//	y' = (y - ymin) / (ymax - ymin + NormalizeEps)
//
// ymin defaults to 0 and ymax to the largest y value, so a non-negative
// series lands in [0, 1]. X values and the raw coordinates are kept.
func NormalizeY(points []NormalizedPoint, lim AxisLimit) []NormalizedPoint {
	out := make([]NormalizedPoint, len(points))
	copy(out, points)
	if len(out) == 0 {
		return out
	}

	ymin := 0.0
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.RawY
	}
	_, ymax := minMax(ys)
	if lim.Min != nil {
		ymin = *lim.Min
	}
	if lim.Max != nil {
		ymax = *lim.Max
	}

	denom := span(ymin, ymax)
	for i := range out {
		out[i].Y = (out[i].RawY - ymin) / denom
	}

	return out
}

// Normalize applies NormalizeX followed by NormalizeY.
func Normalize(points []NumPoint, xlim, ylim AxisLimit) []NormalizedPoint {
	return NormalizeY(NormalizeX(points, xlim), ylim)
}

// span returns hi - lo + NormalizeEps, falling back to NormalizeEps when an
// explicit limit makes the sum vanish.
func span(lo, hi float64) float64 {
	d := hi - lo + NormalizeEps
	if d == 0 {
		return NormalizeEps
	}

	return d
}

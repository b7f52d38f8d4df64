package fuzzy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrapezoid(t *testing.T) {
	f := Trapezoid(0, 1, 2, 4)

	tests := []struct {
		x    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
		{2, 1},
		{3, 0.5},
		{4, 0},
		{10, 0},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, f(tt.x), 1e-12, "x=%v", tt.x)
	}
}

func TestTrapezoidShoulders(t *testing.T) {
	low := TrapezoidL(1, 3)
	require.InDelta(t, 1.0, low(-5), 0)
	require.InDelta(t, 1.0, low(1), 0)
	require.InDelta(t, 0.5, low(2), 1e-12)
	require.InDelta(t, 0.0, low(3), 0)
	require.InDelta(t, 0.0, low(8), 0)

	high := TrapezoidR(1, 3)
	require.InDelta(t, 0.0, high(-5), 0)
	require.InDelta(t, 0.0, high(1), 0)
	require.InDelta(t, 0.5, high(2), 1e-12)
	require.InDelta(t, 1.0, high(3), 0)
	require.InDelta(t, 1.0, high(8), 0)
}

func TestDegenerateRampIsStep(t *testing.T) {
	step := TrapezoidR(1, 1)
	require.InDelta(t, 0.0, step(0.999), 0)
	require.InDelta(t, 1.0, step(1), 0)

	f := Trapezoid(0, 0, 1, 1)
	require.InDelta(t, 1.0, f(0), 0)
	require.InDelta(t, 1.0, f(0.5), 0)
	require.InDelta(t, 0.0, f(1.0001), 0)
	for _, x := range []float64{-1, 0, 0.5, 1, 2} {
		require.False(t, math.IsNaN(f(x)))
	}
}

func TestNotAndOr(t *testing.T) {
	low := TrapezoidL(0, 1)
	require.InDelta(t, 0.75, Not(low)(0.75), 1e-12)

	both := And(TrapezoidR(0, 2), TrapezoidL(1, 3))
	require.InDelta(t, 0.5, both(1), 1e-12)
	either := Or(TrapezoidR(0, 2), TrapezoidL(1, 3))
	require.InDelta(t, 1.0, either(1), 1e-12)

	require.InDelta(t, 1.0, And()(0), 0)
	require.InDelta(t, 0.0, Or()(0), 0)
}

func TestDegreesStayInUnitInterval(t *testing.T) {
	d := ChartDiagonalAngle
	fs := []Func{
		Not(TrapezoidL(d/8, d/4)),
		Trapezoid(-d/4, -d/8, d/8, d/4),
		Not(TrapezoidR(-d/4, -d/8)),
	}
	for x := -math.Pi / 2; x <= math.Pi/2; x += 0.01 {
		for _, f := range fs {
			v := f(x)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
	require.InDelta(t, math.Atan(0.625), ChartDiagonalAngle, 1e-15)
}

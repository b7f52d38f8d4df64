package trend

import (
	"strings"

	"github.com/arloliu/lsts/fuzzy"
)

// Membership maps a partial trend to a degree of membership in [0, 1].
type Membership[X any] func(PartialTrend[X]) float64

// ConeAngle lifts an angle membership function to partial trends by
// evaluating it at the mid angle of the trend's cone.
func ConeAngle[X any](f fuzzy.Func) Membership[X] {
	return func(t PartialTrend[X]) float64 {
		return f(t.Cone.MidAngleRad())
	}
}

// Dynamic is a linguistic category describing the direction of a trend.
type Dynamic uint8

const (
	Increased Dynamic = iota + 1 // Increased describes a rising trend.
	Similar                      // Similar describes a flat trend.
	Decreased                    // Decreased describes a falling trend.
)

var dynamics = []Dynamic{Increased, Similar, Decreased}

// Dynamics returns every Dynamic in the fixed order Increased, Similar, Decreased.
func Dynamics() []Dynamic {
	out := make([]Dynamic, len(dynamics))
	copy(out, dynamics)

	return out
}

var dynamicNames = map[Dynamic]string{
	Increased: "increased",
	Similar:   "similar",
	Decreased: "decreased",
}

// String returns the word used for the dynamic in summaries.
func (d Dynamic) String() string {
	if name, ok := dynamicNames[d]; ok {
		return name
	}

	return "unknown"
}

// ParseDynamic returns the Dynamic named name (case-insensitive).
func ParseDynamic(name string) (Dynamic, bool) {
	for d, n := range dynamicNames {
		if strings.EqualFold(n, name) {
			return d, true
		}
	}

	return 0, false
}

// Func returns the angle membership function of the dynamic. With D the
// chart diagonal angle:
//
//	Increased: not TrapezoidL(D/8, D/4)         (0 below D/8, 1 above D/4)
//	Similar:   Trapezoid(-D/4, -D/8, D/8, D/4)
//	Decreased: not TrapezoidR(-D/4, -D/8)       (1 below -D/4, 0 above -D/8)
//
// An unknown dynamic never matches.
func (d Dynamic) Func() fuzzy.Func {
	diag := fuzzy.ChartDiagonalAngle
	switch d {
	case Increased:
		return fuzzy.Not(fuzzy.TrapezoidL(diag/8, diag/4))
	case Similar:
		return fuzzy.Trapezoid(-diag/4, -diag/8, diag/8, diag/4)
	case Decreased:
		return fuzzy.Not(fuzzy.TrapezoidR(-diag/4, -diag/8))
	default:
		return func(float64) float64 { return 0 }
	}
}

// DynamicMembership returns the cone-level membership function of d.
func DynamicMembership[X any](d Dynamic) Membership[X] {
	return ConeAngle[X](d.Func())
}

// DynamicMemberships returns the memberships of every Dynamic, in Dynamics order.
func DynamicMemberships[X any]() []Membership[X] {
	out := make([]Membership[X], len(dynamics))
	for i, d := range dynamics {
		out[i] = DynamicMembership[X](d)
	}

	return out
}

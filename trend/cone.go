package trend

import (
	"fmt"
	"math"

	"github.com/arloliu/lsts/point"
)

// Cone is an angular sector [StartAngleRad, EndAngleRad] of line slopes,
// with StartAngleRad <= EndAngleRad. Angles are measured from the x-axis in
// (-π/2, π/2].
type Cone struct {
	StartAngleRad float64
	EndAngleRad   float64
}

// HalfPlane is the cone admitting every orientation.
var HalfPlane = Cone{StartAngleRad: -math.Pi / 2, EndAngleRad: math.Pi / 2}

// MidAngleRad returns the angle bisecting the cone.
func (c Cone) MidAngleRad() float64 {
	return (c.StartAngleRad + c.EndAngleRad) / 2
}

// Width returns the angular width of the cone.
func (c Cone) Width() float64 {
	return c.EndAngleRad - c.StartAngleRad
}

// String returns a string representation of the cone.
func (c Cone) String() string {
	return fmt.Sprintf("Cone{%.4f, %.4f}", c.StartAngleRad, c.EndAngleRad)
}

// NewCone returns the cone of lines through p1 that pass within eps of p2.
//
// The bounds are the two tangent lines from p1 to the disk of radius eps
// centered on p2:
//
//	atan((dx*dy ∓ eps*sqrt(dx²+dy²-eps²)) / (dx²-eps²))
//
// When p2 lies within eps of p1 the points are indistinguishable at this
// tolerance and the cone is the full half-plane. The same holds when
// dx² <= eps², where a tangent would be vertical or lean backwards and the
// closed form has no finite value.
func NewCone(p1, p2 point.NormalizedPoint, eps float64) Cone {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	eps2 := eps * eps
	dx2 := dx * dx

	if dx2+dy*dy <= eps2 || dx2 <= eps2 {
		return HalfPlane
	}

	root := eps * math.Sqrt(dx2+dy*dy-eps2)
	a1 := math.Atan((dx*dy - root) / (dx2 - eps2))
	a2 := math.Atan((dx*dy + root) / (dx2 - eps2))

	return Cone{
		StartAngleRad: math.Min(a1, a2),
		EndAngleRad:   math.Max(a1, a2),
	}
}

// IntersectCone returns the common sector of c1 and c2. The second return
// value is false when the cones do not overlap. IntersectCone is commutative.
func IntersectCone(c1, c2 Cone) (Cone, bool) {
	start := math.Max(c1.StartAngleRad, c2.StartAngleRad)
	end := math.Min(c1.EndAngleRad, c2.EndAngleRad)
	if start > end {
		return Cone{}, false
	}

	return Cone{StartAngleRad: start, EndAngleRad: end}, true
}

// UnionCone returns the smallest cone covering c1 and c2.
func UnionCone(c1, c2 Cone) Cone {
	return Cone{
		StartAngleRad: math.Min(c1.StartAngleRad, c2.StartAngleRad),
		EndAngleRad:   math.Max(c1.EndAngleRad, c2.EndAngleRad),
	}
}

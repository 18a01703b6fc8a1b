package physics

import "math"

// Edge is a line segment between two world-space points.
type Edge struct {
	A Vector2D
	B Vector2D
}

// Length returns the length of the segment.
func (e Edge) Length() float64 {
	return e.A.Distance(e.B)
}

// Intersects reports whether e and other cross, using angles measured at the
// endpoints of e rather than orientation signs. With e = AB and other = CD:
//
//   - C and D must lie on opposite sides of line AB, which holds exactly when
//     ∠CAD is the largest of ∠CAD, ∠CAB and ∠DAB;
//   - the crossing point must lie on the A side of B and the B side of A, which
//     holds when ∠CAB+∠DAB ≤ π and ∠CBA+∠DBA ≤ π.
//
// Near-collinear or touching segments can be misclassified. Any coincident pair
// of points (including a zero-length segment) is reported as not intersecting.
func (e Edge) Intersects(other Edge) bool {
	a, b := e.A, e.B
	c, d := other.A, other.B

	if a == b || c == d {
		return false
	}

	cad, ok1 := Angle(c, a, d)
	cab, ok2 := Angle(c, a, b)
	dab, ok3 := Angle(d, a, b)
	cba, ok4 := Angle(c, b, a)
	dba, ok5 := Angle(d, b, a)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return false
	}

	if cad != math.Max(cad, math.Max(cab, dab)) {
		return false // C and D on the same side of AB
	}
	if cab+dab > math.Pi || cba+dba > math.Pi {
		return false
	}
	return true
}

// Crosses is the order-independent form of Intersects: both segments have to
// agree that they cross. Polygon collision uses it so that swapping the two
// bodies can never change the answer.
func Crosses(e, f Edge) bool {
	return e.Intersects(f) && f.Intersects(e)
}

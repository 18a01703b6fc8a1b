package physics

// Circle is a bounding circle used as the collision broad-phase.
type Circle struct {
	Center Vector2D
	Radius float64
}

// Overlaps reports whether the two circles touch or overlap. Anything it rejects
// cannot collide at the polygon level.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.Distance(other.Center) <= c.Radius+other.Radius
}

// InField reports whether p lies inside the square field [0, size]×[0, size],
// boundary included.
func InField(p Vector2D, size float64) bool {
	return p.X >= 0 && p.X <= size && p.Y >= 0 && p.Y <= size
}

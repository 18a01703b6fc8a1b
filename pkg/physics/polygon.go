package physics

import "math"

// Pose places a body in the field. Heading is in radians and is never
// normalized; every consumer goes through sin/cos, so unbounded growth is fine.
type Pose struct {
	Position Vector2D
	Heading  float64
}

// Velocity is the per-tick change applied to a Pose.
type Velocity struct {
	Linear  Vector2D
	Angular float64
}

// Polygon is a rigid body: a closed outline defined around its own center plus
// the pose and velocity that place and move it. Edge i joins vertex i to vertex
// (i+1) mod N.
type Polygon struct {
	Pose     Pose
	Velocity Velocity

	localVertices []Vector2D
	radius        float64
}

// radiusTolerance is the relative rounding slack allowed between the farthest
// vertex and the nominal radius passed to NewPolygon.
const radiusTolerance = 1e-9

// NewPolygon copies the local vertices and fixes the bounding radius. The radius
// is the nominal one when the farthest vertex matches it up to rounding, and the
// farthest vertex distance otherwise; pass 0 to always measure. The radius never
// changes afterwards.
func NewPolygon(pose Pose, velocity Velocity, localVertices []Vector2D, radius float64) Polygon {
	vertices := make([]Vector2D, len(localVertices))
	copy(vertices, localVertices)

	farthest := 0.0
	for _, v := range vertices {
		farthest = math.Max(farthest, v.Length())
	}
	if math.Abs(farthest-radius) > radiusTolerance*radius {
		radius = farthest
	}

	return Polygon{
		Pose:          pose,
		Velocity:      velocity,
		localVertices: vertices,
		radius:        radius,
	}
}

// BoundingRadius is the distance from the center to the farthest vertex.
func (p *Polygon) BoundingRadius() float64 {
	return p.radius
}

// LocalVertices returns a copy of the outline relative to the body's center.
func (p *Polygon) LocalVertices() []Vector2D {
	out := make([]Vector2D, len(p.localVertices))
	copy(out, p.localVertices)
	return out
}

// Bounds returns the bounding circle at the current position.
func (p *Polygon) Bounds() Circle {
	return Circle{Center: p.Pose.Position, Radius: p.radius}
}

// WorldVertices rotates each local vertex by the heading and translates it by the
// position. Nothing is cached, so the result always reflects the current pose.
func (p *Polygon) WorldVertices() []Vector2D {
	sin, cos := math.Sincos(p.Pose.Heading)
	pos := p.Pose.Position

	out := make([]Vector2D, len(p.localVertices))
	for i, v := range p.localVertices {
		out[i] = Vector2D{
			X: v.X*cos - v.Y*sin + pos.X,
			Y: v.X*sin + v.Y*cos + pos.Y,
		}
	}
	return out
}

// Edges returns the closed cycle of world-space segments.
func (p *Polygon) Edges() []Edge {
	points := p.WorldVertices()
	edges := make([]Edge, len(points))
	for i := range points {
		edges[i] = Edge{A: points[i], B: points[(i+1)%len(points)]}
	}
	return edges
}

// Update applies one tick of velocity to the pose.
func (p *Polygon) Update() {
	p.Pose.Position = p.Pose.Position.Add(p.Velocity.Linear)
	p.Pose.Heading += p.Velocity.Angular
}

// Wraparound moves a body that has fully left the field [0, size]×[0, size] to just
// outside the opposite side, one bounding radius off the edge, so it drifts back in
// instead of popping into view. Each axis is checked once.
func (p *Polygon) Wraparound(size float64) {
	pos := &p.Pose.Position
	r := p.radius

	if pos.X-r > size {
		pos.X = -r
	} else if pos.X+r < 0 {
		pos.X = size + r
	}

	if pos.Y-r > size {
		pos.Y = -r
	} else if pos.Y+r < 0 {
		pos.Y = size + r
	}
}

// CollidesWith reports whether the two outlines touch. Bodies whose bounding circles
// do not overlap are rejected outright; otherwise every edge pair is tested, and
// finally each body is checked for lying wholly inside the other, which no edge
// crossing would reveal.
func (p *Polygon) CollidesWith(other *Polygon) bool {
	if !p.Bounds().Overlaps(other.Bounds()) {
		return false
	}

	edges := p.Edges()
	otherEdges := other.Edges()
	for _, e := range edges {
		for _, f := range otherEdges {
			if Crosses(e, f) {
				return true
			}
		}
	}

	return p.containsAny(other.WorldVertices()) || other.containsAny(p.WorldVertices())
}

func (p *Polygon) containsAny(points []Vector2D) bool {
	for _, pt := range points {
		if p.Contains(pt) {
			return true
		}
	}
	return false
}

// Contains reports whether pt lies inside the outline, using the even-odd rule.
// Outlines with fewer than three vertices have no interior.
func (p *Polygon) Contains(pt Vector2D) bool {
	if len(p.localVertices) < 3 {
		return false
	}

	points := p.WorldVertices()
	inside := false
	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

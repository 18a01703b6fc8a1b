package physics

import "math"

// Angle returns the angle ∠POQ at vertex o, computed from the three pairwise
// distances with the law of cosines. The acos argument is clamped to [-1, 1] so
// rounding never produces NaN. ok is false when p or q coincides with o, since
// the angle is undefined there.
func Angle(p, o, q Vector2D) (float64, bool) {
	po := p.Distance(o)
	oq := o.Distance(q)
	if po == 0 || oq == 0 {
		return 0, false
	}
	pq := p.Distance(q)

	cos := (po*po + oq*oq - pq*pq) / (2 * po * oq)
	return math.Acos(clamp(cos, -1, 1)), true
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

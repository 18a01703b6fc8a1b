package entity

import "github.com/opd-ai/go-asteroids/pkg/config"

// Tier is an asteroid's size class. Each tier has half the radius of the one
// before it.
type Tier int

const (
	TierFull Tier = iota
	TierHalf
	TierQuarter
)

// Radius returns the bounding radius for the tier.
func (t Tier) Radius(cfg *config.GameConfig) float64 {
	switch t {
	case TierHalf:
		return cfg.AsteroidSize / 2
	case TierQuarter:
		return cfg.AsteroidSize / 4
	default:
		return cfg.AsteroidSize
	}
}

// IsMinimum reports whether the tier cannot split any further.
func (t Tier) IsMinimum() bool {
	return t >= TierQuarter
}

// Next returns the tier of the fragments this tier breaks into.
func (t Tier) Next() Tier {
	if t.IsMinimum() {
		return TierQuarter
	}
	return t + 1
}

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierHalf:
		return "half"
	case TierQuarter:
		return "quarter"
	default:
		return "unknown"
	}
}

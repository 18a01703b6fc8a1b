// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ID is a unique identifier for a body within one session.
type ID uint64

// Kind tags which variant a Body is.
type Kind int

const (
	KindAsteroid Kind = iota
	KindBullet
	KindShip
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindShip:
		return "ship"
	default:
		return "unknown"
	}
}

// Body is the one rigid-body type shared by every variant. Variant rules are
// selected by Kind; Tier only means something for asteroids.
type Body struct {
	physics.Polygon
	ID   ID
	Kind Kind
	Tier Tier
}

// Position returns the body's center.
func (b *Body) Position() physics.Vector2D {
	return b.Pose.Position
}

// Update advances the body one tick. Asteroids wrap around the field; bullets
// and the ship hull only move (bullets are culled by their ship, and the ship
// wraps itself at the end of its own update).
func (b *Body) Update(fieldSize float64) {
	b.Polygon.Update()
	if b.Kind == KindAsteroid {
		b.Wraparound(fieldSize)
	}
}

// pkg/entity/ship.go
package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Ship is the player's body plus the state only a ship has: the shot cooldown
// and the bullets it has fired that are still in flight.
type Ship struct {
	Body
	ShootDelay int
	Bullets    []*Body

	factory *Factory
}

// NewShip creates a ship at rest at pos facing heading. The outline is an
// isosceles triangle with its nose PlayerSize ahead of the center. The cooldown
// starts full, so a new ship cannot fire for PlayerMinShootDelay ticks.
func (f *Factory) NewShip(pos physics.Vector2D, heading float64) *Ship {
	size := f.Config.PlayerSize
	sin, cos := math.Sincos(math.Pi / 5)
	backX, backY := size*cos, size*sin

	return &Ship{
		Body: Body{
			Polygon: physics.NewPolygon(
				physics.Pose{Position: pos, Heading: heading},
				physics.Velocity{},
				[]physics.Vector2D{{X: size, Y: 0}, {X: -backX, Y: backY}, {X: -backX, Y: -backY}},
				size,
			),
			ID:   f.NextID(),
			Kind: KindShip,
		},
		ShootDelay: f.Config.PlayerMinShootDelay,
		factory:    f,
	}
}

// Accelerate adds one tick of thrust along the heading.
func (s *Ship) Accelerate() {
	thrust := physics.FromAngle(s.Pose.Heading, s.factory.Config.PlayerAccel())
	s.Velocity.Linear = s.Velocity.Linear.Add(thrust)
}

// Rotate turns the ship by one tick of PlayerTurnSpeed; direction is -1 (left) or +1 (right).
func (s *Ship) Rotate(direction int) {
	s.Pose.Heading += float64(direction) * s.factory.Config.PlayerTurnSpeed
}

// Nose returns the tip of the ship, where bullets appear.
func (s *Ship) Nose() physics.Vector2D {
	return s.Pose.Position.Add(physics.FromAngle(s.Pose.Heading, s.BoundingRadius()))
}

// Fire launches a bullet from the nose if the cooldown has run out, then restarts
// the cooldown. It reports whether a bullet was fired.
func (s *Ship) Fire() bool {
	if s.ShootDelay != 0 {
		return false
	}
	s.Bullets = append(s.Bullets, s.factory.NewBullet(s.Nose(), s.Pose.Heading))
	s.ShootDelay = s.factory.Config.PlayerMinShootDelay
	return true
}

// Update runs one tick of ship control: move, apply friction, cull bullets that
// have left the field and advance the rest, apply the held keys, count the
// cooldown down, wrap around, and finally clamp to PlayerMaxSpeed. It reports
// whether a bullet was fired this tick.
func (s *Ship) Update(in Input) bool {
	cfg := s.factory.Config

	s.Polygon.Update()
	s.Velocity.Linear = s.Velocity.Linear.Scale(cfg.PlayerFriction)

	s.updateBullets(cfg.FieldSize)

	if in.Thrust {
		s.Accelerate()
	}
	if in.TurnLeft {
		s.Rotate(-1)
	}
	if in.TurnRight {
		s.Rotate(1)
	}
	fired := in.Fire && s.Fire()
	if s.ShootDelay > 0 {
		s.ShootDelay--
	}

	s.Wraparound(cfg.FieldSize)
	s.Velocity.Linear = s.Velocity.Linear.Limit(cfg.PlayerMaxSpeed)

	return fired
}

// updateBullets rebuilds the bullet list from the bullets still inside the
// field, advancing each one. Bullets are checked before they move.
func (s *Ship) updateBullets(fieldSize float64) {
	live := s.Bullets[:0]
	for _, b := range s.Bullets {
		if !physics.InField(b.Position(), fieldSize) {
			continue
		}
		b.Update(fieldSize)
		live = append(live, b)
	}
	clear(s.Bullets[len(live):])
	s.Bullets = live
}

// RemoveBullets drops the given bullets from the ship's list.
func (s *Ship) RemoveBullets(spent map[ID]bool) {
	if len(spent) == 0 {
		return
	}
	live := make([]*Body, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		if !spent[b.ID] {
			live = append(live, b)
		}
	}
	s.Bullets = live
}

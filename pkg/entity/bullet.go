package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// NewBullet creates a bullet at pos travelling along heading at BulletSpeed.
// It is a two point outline from its tail to BulletSize ahead.
func (f *Factory) NewBullet(pos physics.Vector2D, heading float64) *Body {
	return &Body{
		Polygon: physics.NewPolygon(
			physics.Pose{Position: pos, Heading: heading},
			physics.Velocity{Linear: physics.FromAngle(heading, f.Config.BulletSpeed)},
			[]physics.Vector2D{{X: 0, Y: 0}, {X: f.Config.BulletSize, Y: 0}},
			f.Config.BulletSize,
		),
		ID:   f.NextID(),
		Kind: KindBullet,
	}
}

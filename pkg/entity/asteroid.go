package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

const (
	minAsteroidSides = 6
	maxAsteroidSides = 10
)

// NewAsteroid creates an asteroid of the given tier centered at pos. It drifts in
// a random direction at AsteroidSpeed±0.5, spins at up to π/100 per tick either
// way, and has 6 to 10 vertices spaced evenly on a circle of the tier's radius.
// The vertex count is a rounded uniform draw, so 6 and 10 come up half as often
// as the counts between them.
func (f *Factory) NewAsteroid(pos physics.Vector2D, tier Tier) *Body {
	speed := f.between(f.Config.AsteroidSpeed-0.5, f.Config.AsteroidSpeed+0.5)
	velocity := physics.Velocity{
		Linear:  physics.FromAngle(f.Rand.Float64()*2*math.Pi, speed),
		Angular: f.between(-math.Pi/100, math.Pi/100),
	}

	sides := minAsteroidSides + int(math.Round(f.Rand.Float64()*(maxAsteroidSides-minAsteroidSides)))
	radius := tier.Radius(f.Config)
	vertices := make([]physics.Vector2D, sides)
	for i := range vertices {
		vertices[i] = physics.FromAngle(float64(i)*2*math.Pi/float64(sides), radius)
	}

	return &Body{
		Polygon: physics.NewPolygon(physics.Pose{Position: pos}, velocity, vertices, radius),
		ID:      f.NextID(),
		Kind:    KindAsteroid,
		Tier:    tier,
	}
}

// SpawnAsteroids places n asteroids at random points on the circle of radius
// FieldSize around the field center, which keeps them outside the visible field.
// Each is full size with probability Difficulty and half size otherwise.
func (f *Factory) SpawnAsteroids(n int) []*Body {
	size := f.Config.FieldSize
	center := physics.Vector2D{X: size / 2, Y: size / 2}

	asteroids := make([]*Body, 0, n)
	for i := 0; i < n; i++ {
		pos := center.Add(physics.FromAngle(f.Rand.Float64()*2*math.Pi, size))

		tier := TierHalf
		if f.Rand.Float64() < f.Config.Difficulty {
			tier = TierFull
		}
		asteroids = append(asteroids, f.NewAsteroid(pos, tier))
	}
	return asteroids
}

// Break returns what replaces a destroyed asteroid: two fragments of the next
// tier at its position, or, for a minimum-tier asteroid, one freshly spawned
// asteroid at the field edge so the field never runs dry. Non-asteroids break
// into nothing.
func (f *Factory) Break(b *Body) []*Body {
	if b.Kind != KindAsteroid {
		return nil
	}
	if b.Tier.IsMinimum() {
		return f.SpawnAsteroids(1)
	}

	next := b.Tier.Next()
	return []*Body{
		f.NewAsteroid(b.Position(), next),
		f.NewAsteroid(b.Position(), next),
	}
}

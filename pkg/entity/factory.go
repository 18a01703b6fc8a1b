package entity

import (
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
)

// Factory builds bodies for one session. It owns the random source and the ID
// sequence, so two factories seeded alike produce identical sessions.
type Factory struct {
	Config *config.GameConfig
	Rand   *rand.Rand

	nextID ID
}

// NewFactory creates a factory drawing randomness from rng.
func NewFactory(cfg *config.GameConfig, rng *rand.Rand) *Factory {
	return &Factory{
		Config: cfg,
		Rand:   rng,
		nextID: 1,
	}
}

// NextID hands out the next body ID.
func (f *Factory) NextID() ID {
	id := f.nextID
	f.nextID++
	return id
}

// between returns a uniform value in [lo, hi).
func (f *Factory) between(lo, hi float64) float64 {
	return lo + f.Rand.Float64()*(hi-lo)
}

// pkg/engine/world.go
package engine

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// World is the simulation state of one session: the live asteroids and the ship,
// which owns its bullets. It knows nothing about score or scenes.
type World struct {
	Config    *config.GameConfig
	Asteroids []*entity.Body
	Ship      *entity.Ship
	Tick      uint64

	factory *entity.Factory
}

// Destruction records one asteroid shot down during a tick.
type Destruction struct {
	Asteroid    *entity.Body
	BulletID    entity.ID
	Replacement []*entity.Body
}

// TickResult is what a tick reports to the frame controller.
type TickResult struct {
	Destroyed     []Destruction
	ShipDestroyed bool
	BulletFired   bool
}

// NewWorld spawns the opening asteroids and a ship at the field center facing up.
func NewWorld(cfg *config.GameConfig, rng *rand.Rand) *World {
	factory := entity.NewFactory(cfg, rng)
	center := physics.Vector2D{X: cfg.FieldSize / 2, Y: cfg.FieldSize / 2}

	return &World{
		Config:    cfg,
		Asteroids: factory.SpawnAsteroids(cfg.InitialAsteroids),
		Ship:      factory.NewShip(center, -math.Pi/2),
		factory:   factory,
	}
}

// Factory exposes the world's body factory, mainly for setting up scenarios.
func (w *World) Factory() *entity.Factory {
	return w.factory
}

// Step advances the world one tick: asteroids move, the ship and its bullets
// move under in, and then collisions are resolved.
func (w *World) Step(in entity.Input) TickResult {
	var result TickResult

	for _, a := range w.Asteroids {
		a.Update(w.Config.FieldSize)
	}
	result.BulletFired = w.Ship.Update(in)

	w.resolveCollisions(&result)
	w.Tick++
	return result
}

// resolveCollisions builds the next asteroid list. An asteroid touching the ship
// ends the session but stays in place; otherwise the first unspent bullet that
// touches it destroys it and its replacements are appended to the end of the
// list. Replacements are not tested until the next tick.
func (w *World) resolveCollisions(result *TickResult) {
	next := make([]*entity.Body, 0, len(w.Asteroids))
	var spawned []*entity.Body
	spent := make(map[entity.ID]bool)

	for _, a := range w.Asteroids {
		if a.CollidesWith(&w.Ship.Polygon) {
			result.ShipDestroyed = true
			next = append(next, a)
			continue
		}

		bullet := w.firstHit(a, spent)
		if bullet == nil {
			next = append(next, a)
			continue
		}

		spent[bullet.ID] = true
		replacement := w.factory.Break(a)
		spawned = append(spawned, replacement...)
		result.Destroyed = append(result.Destroyed, Destruction{
			Asteroid:    a,
			BulletID:    bullet.ID,
			Replacement: replacement,
		})
	}

	w.Asteroids = append(next, spawned...)
	w.Ship.RemoveBullets(spent)
}

func (w *World) firstHit(a *entity.Body, spent map[entity.ID]bool) *entity.Body {
	for _, b := range w.Ship.Bullets {
		if !spent[b.ID] && a.CollidesWith(&b.Polygon) {
			return b
		}
	}
	return nil
}

// Bodies returns every body to draw this frame: asteroids, then the ship, then
// its bullets.
func (w *World) Bodies() []*entity.Body {
	bodies := make([]*entity.Body, 0, len(w.Asteroids)+1+len(w.Ship.Bullets))
	bodies = append(bodies, w.Asteroids...)
	bodies = append(bodies, &w.Ship.Body)
	bodies = append(bodies, w.Ship.Bullets...)
	return bodies
}

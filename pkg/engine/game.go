// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Scene is the frame controller's state.
type Scene int

const (
	// ScenePlaying runs the simulation every tick.
	ScenePlaying Scene = iota
	// SceneGameOverPending freezes on the game over screen for GameOverDelayTicks.
	SceneGameOverPending
	// SceneGameOverIdle waits for any key to start a new session.
	SceneGameOverIdle
)

func (s Scene) String() string {
	switch s {
	case ScenePlaying:
		return "playing"
	case SceneGameOverPending:
		return "game_over_pending"
	case SceneGameOverIdle:
		return "game_over_idle"
	default:
		return "unknown"
	}
}

// HUD text.
const (
	tutorialText  = "[W]  [A][D]  [SPACE]"
	gameOverText  = "GAME OVER"
	playAgainText = "[PRESS ANY KEY TO PLAY AGAIN]"
)

// HUD line placement as fractions of the field side.
const (
	hudTopY    = 0.07
	hudBottomY = 0.97
	hudCenterY = 0.5
	hudLineGap = 0.03
	hudPromptY = 0.75
)

// Game is the frame controller: it owns the world, the score and the scene, and
// turns one input snapshot into one tick. Everything is tick based, so a Game
// driven by the same seed and inputs always plays out the same way.
type Game struct {
	Config   *config.GameConfig
	World    *World
	Score    int
	Scene    Scene
	EventBus *event.Bus

	sceneTicks int
	rng        *rand.Rand
	sessionID  string
	logger     *logging.Logger
}

// Frame summarizes one Update call.
type Frame struct {
	Tick   uint64
	Scene  Scene
	Score  int
	Result TickResult
}

// NewGame creates a game in the Playing scene with a fresh world.
func NewGame(cfg *config.GameConfig, rng *rand.Rand, bus *event.Bus, logger *logging.Logger) *Game {
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	g := &Game{
		Config:   cfg,
		EventBus: bus,
		rng:      rng,
		logger:   logger,
	}
	g.Reset()
	return g
}

// Reset discards the current session and starts a new one.
func (g *Game) Reset() {
	g.World = NewWorld(g.Config, g.rng)
	g.Score = 0
	g.Scene = ScenePlaying
	g.sceneTicks = 0
	g.sessionID = logging.NewSessionID()

	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

// SessionID identifies the current session in logs.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Context returns ctx tagged with the current session ID.
func (g *Game) Context(ctx context.Context) context.Context {
	return logging.WithSessionID(ctx, g.sessionID)
}

// Update advances the game one tick with the given input snapshot.
func (g *Game) Update(ctx context.Context, in entity.Input) Frame {
	ctx = g.Context(ctx)
	var result TickResult

	switch g.Scene {
	case ScenePlaying:
		result = g.World.Step(in)
		g.applyResult(ctx, result)

	case SceneGameOverPending:
		g.sceneTicks++
		if g.sceneTicks >= g.Config.GameOverDelayTicks {
			g.setScene(ctx, SceneGameOverIdle)
		}

	case SceneGameOverIdle:
		if in.Any() {
			g.logger.Info(ctx, "session restarted", "final_score", g.Score)
			g.Reset()
		}
	}

	return Frame{
		Tick:   g.World.Tick,
		Scene:  g.Scene,
		Score:  g.Score,
		Result: result,
	}
}

func (g *Game) applyResult(ctx context.Context, result TickResult) {
	if result.BulletFired {
		g.EventBus.Publish(&event.BaseEvent{EventType: event.BulletFired, Source: g})
	}

	for _, d := range result.Destroyed {
		g.Score++
		pos := d.Asteroid.Position()
		g.EventBus.Publish(event.NewAsteroidEvent(g, uint64(d.Asteroid.ID), int(d.Asteroid.Tier), pos.X, pos.Y, len(d.Replacement)))
		g.logger.Debug(ctx, "asteroid destroyed",
			"asteroid_id", d.Asteroid.ID,
			"tier", d.Asteroid.Tier.String(),
			"bullet_id", d.BulletID,
			"score", g.Score,
		)
	}

	if result.ShipDestroyed {
		g.EventBus.Publish(event.NewShipEvent(event.ShipDestroyed, g, uint64(g.World.Ship.ID), g.Score))
		g.logger.Info(ctx, "ship destroyed", "score", g.Score, "tick", g.World.Tick)
		g.setScene(ctx, SceneGameOverPending)
	}
}

func (g *Game) setScene(ctx context.Context, next Scene) {
	prev := g.Scene
	g.Scene = next
	g.sceneTicks = 0
	g.EventBus.Publish(event.NewSceneEvent(g, prev.String(), next.String()))
	g.logger.Debug(ctx, "scene changed", "from", prev.String(), "to", next.String())
}

// HUD returns the overlay text for the current scene: controls at the top and
// score at the bottom while playing, the result in the middle after game over.
func (g *Game) HUD() []entity.HUDLine {
	score := fmt.Sprintf("SCORE: %d", g.Score)

	switch g.Scene {
	case ScenePlaying:
		return []entity.HUDLine{
			{Text: tutorialText, Y: hudTopY},
			{Text: score, Y: hudBottomY},
		}
	case SceneGameOverPending:
		return []entity.HUDLine{
			{Text: gameOverText, Y: hudCenterY - hudLineGap},
			{Text: score, Y: hudCenterY + hudLineGap},
		}
	default:
		return []entity.HUDLine{
			{Text: gameOverText, Y: hudCenterY - hudLineGap},
			{Text: score, Y: hudCenterY + hudLineGap},
			{Text: playAgainText, Y: hudPromptY},
		}
	}
}

// Render draws the current frame. Bodies are only drawn while playing.
func (g *Game) Render(r entity.Renderer) {
	r.Clear()
	if g.Scene == ScenePlaying {
		for _, b := range g.World.Bodies() {
			r.RenderBody(b)
		}
	}
	r.RenderHUD(g.HUD())
	r.Present()
}

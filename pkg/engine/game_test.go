package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// recordingRenderer remembers the last frame it was asked to draw.
type recordingRenderer struct {
	bodies   []*entity.Body
	hud      []entity.HUDLine
	cleared  int
	presents int
}

func (r *recordingRenderer) RenderBody(b *entity.Body)        { r.bodies = append(r.bodies, b) }
func (r *recordingRenderer) RenderHUD(lines []entity.HUDLine) { r.hud = lines }
func (r *recordingRenderer) Clear()                           { r.bodies = nil; r.cleared++ }
func (r *recordingRenderer) Present()                         { r.presents++ }

func hudTexts(lines []entity.HUDLine) []string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return texts
}

func newTestGame(t *testing.T, seed string) (*Game, *event.Bus) {
	t.Helper()
	bus := event.NewEventBus()
	return NewGame(config.DefaultConfig(), NewRand(seed), bus, nil), bus
}

// crash puts an asteroid on top of the ship so the next tick ends the session.
func crash(g *Game) {
	placeAsteroid(g.World, g.World.Ship.Position(), entity.TierFull)
}

func collect(bus *event.Bus, types ...event.Type) *[]event.Event {
	var events []event.Event
	for _, typ := range types {
		bus.Subscribe(typ, func(e event.Event) { events = append(events, e) })
	}
	return &events
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "playing", ScenePlaying.String())
	assert.Equal(t, "game_over_pending", SceneGameOverPending.String())
	assert.Equal(t, "game_over_idle", SceneGameOverIdle.String())
	assert.Equal(t, "unknown", Scene(9).String())
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t, "new-game")

	assert.Equal(t, ScenePlaying, g.Scene)
	assert.Zero(t, g.Score)
	assert.NotEmpty(t, g.SessionID())
	assert.Equal(t, g.SessionID(), logging.GetSessionID(g.Context(context.Background())))
	require.NotNil(t, g.World)
}

func TestGame_Update_ScoresDestroyedAsteroids(t *testing.T) {
	g, bus := newTestGame(t, "score")
	events := collect(bus, event.AsteroidDestroyed, event.BulletFired)
	ctx := context.Background()

	placeAsteroid(g.World, g.World.Ship.Position().Add(physics.Vector2D{X: 0, Y: -150}), entity.TierFull)
	g.World.Ship.ShootDelay = 0
	frame := g.Update(ctx, entity.Input{Fire: true})
	require.True(t, frame.Result.BulletFired)

	for i := 0; i < 30 && g.Score == 0; i++ {
		frame = g.Update(ctx, entity.Input{})
	}

	assert.Equal(t, 1, g.Score)
	assert.Equal(t, 1, frame.Score)
	assert.Equal(t, ScenePlaying, frame.Scene)
	require.Len(t, *events, 2)
	assert.Equal(t, event.BulletFired, (*events)[0].GetType())

	destroyed, ok := (*events)[1].(*event.AsteroidEvent)
	require.True(t, ok)
	assert.Equal(t, int(entity.TierFull), destroyed.Tier)
	assert.Equal(t, 2, destroyed.Fragments)
}

func TestGame_Update_SceneTransitions(t *testing.T) {
	g, bus := newTestGame(t, "scenes")
	scenes := collect(bus, event.SceneChanged)
	deaths := collect(bus, event.ShipDestroyed)
	ctx := context.Background()

	crash(g)
	frame := g.Update(ctx, entity.Input{})
	require.True(t, frame.Result.ShipDestroyed)
	assert.Equal(t, SceneGameOverPending, g.Scene)
	require.Len(t, *deaths, 1)
	require.Len(t, *scenes, 1)
	change := (*scenes)[0].(*event.SceneEvent)
	assert.Equal(t, "playing", change.From)
	assert.Equal(t, "game_over_pending", change.To)

	tick := g.World.Tick
	for i := 0; i < g.Config.GameOverDelayTicks-1; i++ {
		g.Update(ctx, entity.Input{Fire: true})
		require.Equal(t, SceneGameOverPending, g.Scene, "keys are ignored while pending")
	}
	assert.Equal(t, tick, g.World.Tick, "the world is frozen after game over")

	g.Update(ctx, entity.Input{})
	assert.Equal(t, SceneGameOverIdle, g.Scene)
	require.Len(t, *scenes, 2)

	g.Update(ctx, entity.Input{})
	assert.Equal(t, SceneGameOverIdle, g.Scene, "idle waits for a key")
}

func TestGame_Update_AnyKeyRestarts(t *testing.T) {
	keys := []entity.Input{
		{Thrust: true},
		{TurnLeft: true},
		{TurnRight: true},
		{Fire: true},
		{Other: true},
	}

	for _, in := range keys {
		g, bus := newTestGame(t, "restart")
		started := collect(bus, event.GameStarted)
		ctx := context.Background()

		crash(g)
		g.Update(ctx, entity.Input{})
		for g.Scene != SceneGameOverIdle {
			g.Update(ctx, entity.Input{})
		}
		g.Score = 7
		oldWorld, oldSession := g.World, g.SessionID()

		frame := g.Update(ctx, in)

		assert.Equal(t, ScenePlaying, frame.Scene)
		assert.Zero(t, g.Score)
		assert.NotSame(t, oldWorld, g.World)
		assert.NotEqual(t, oldSession, g.SessionID())
		assert.Len(t, *started, 1)
	}
}

func TestGame_Update_LogsWithSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	g := NewGame(config.DefaultConfig(), NewRand("logs"), nil, logging.NewWithCore(core))

	crash(g)
	g.Update(context.Background(), entity.Input{})

	entries := logs.FilterMessage("ship destroyed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, g.SessionID(), entries[0].ContextMap()["session_id"])
}

func TestGame_HUD(t *testing.T) {
	g, _ := newTestGame(t, "hud")
	g.Score = 3

	playing := g.HUD()
	assert.Equal(t, []string{"[W]  [A][D]  [SPACE]", "SCORE: 3"}, hudTexts(playing))
	assert.Less(t, playing[0].Y, 0.1, "controls sit at the top")
	assert.Greater(t, playing[1].Y, 0.9, "score sits at the bottom")

	g.Scene = SceneGameOverPending
	pending := g.HUD()
	assert.Equal(t, []string{"GAME OVER", "SCORE: 3"}, hudTexts(pending))
	for _, l := range pending {
		assert.InDelta(t, 0.5, l.Y, 0.05, "%q is centered", l.Text)
	}
	assert.Less(t, pending[0].Y, pending[1].Y)

	g.Scene = SceneGameOverIdle
	idle := g.HUD()
	assert.Equal(t, []string{"GAME OVER", "SCORE: 3", "[PRESS ANY KEY TO PLAY AGAIN]"}, hudTexts(idle))
	assert.InDelta(t, 0.75, idle[2].Y, 1e-9)
}

func TestGame_Render(t *testing.T) {
	g, _ := newTestGame(t, "render")
	r := &recordingRenderer{}

	g.Render(r)
	assert.Len(t, r.bodies, len(g.World.Bodies()))
	assert.Equal(t, g.HUD(), r.hud)
	assert.Equal(t, 1, r.cleared)
	assert.Equal(t, 1, r.presents)

	g.Scene = SceneGameOverIdle
	g.Render(r)
	assert.Empty(t, r.bodies, "bodies are hidden on the game over screen")
	assert.Equal(t, "GAME OVER", r.hud[0].Text)
}

package engo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var _ entity.Renderer = (*EngoRenderer)(nil)

func newTestFactory() *entity.Factory {
	return entity.NewFactory(config.DefaultConfig(), rand.New(rand.NewPCG(3, 4)))
}

func TestEdgeTransform(t *testing.T) {
	tests := []struct {
		name     string
		edge     physics.Edge
		offset   engo.Point
		start    engo.Point
		length   float32
		rotation float32
	}{
		{
			name:     "right",
			edge:     physics.Edge{A: physics.Vector2D{X: 0, Y: 0}, B: physics.Vector2D{X: 10, Y: 0}},
			start:    engo.Point{X: 0, Y: 0},
			length:   10,
			rotation: 0,
		},
		{
			name:     "down_is_clockwise",
			edge:     physics.Edge{A: physics.Vector2D{X: 5, Y: 5}, B: physics.Vector2D{X: 5, Y: 8}},
			offset:   engo.Point{X: 100, Y: 50},
			start:    engo.Point{X: 105, Y: 55},
			length:   3,
			rotation: 90,
		},
		{
			name:     "diagonal_up_left",
			edge:     physics.Edge{A: physics.Vector2D{X: 3, Y: 4}, B: physics.Vector2D{X: 0, Y: 0}},
			start:    engo.Point{X: 3, Y: 4},
			length:   5,
			rotation: float32(math.Atan2(-4, -3) * 180 / math.Pi),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, rotation := edgeTransform(tt.edge, tt.offset)
			assert.Equal(t, tt.start, start)
			assert.InDelta(t, tt.length, length, 1e-5)
			assert.InDelta(t, tt.rotation, rotation, 1e-4)
		})
	}
}

func TestEngoRenderer_FieldOffset(t *testing.T) {
	r := NewEngoRenderer(nil, nil, 700)
	assert.Equal(t, engo.Point{}, r.fieldOffset())

	r.SetViewport(1000, 750)
	assert.Equal(t, engo.Point{X: 150, Y: 25}, r.fieldOffset())
}

func TestEngoRenderer_PoolsLines(t *testing.T) {
	f := newTestFactory()
	r := NewEngoRenderer(nil, nil, 700)
	ship := f.NewShip(physics.Vector2D{X: 350, Y: 350}, 0)
	asteroid := f.NewAsteroid(physics.Vector2D{X: 100, Y: 100}, entity.TierFull)

	r.Clear()
	r.RenderBody(&ship.Body)
	r.RenderBody(asteroid)
	r.Present()

	want := 3 + len(asteroid.LocalVertices())
	require.Len(t, r.lines, want)
	for _, l := range r.lines {
		assert.False(t, l.Hidden)
		assert.Equal(t, float32(lineWidth), l.Height)
	}
	assert.Equal(t, kindColor(entity.KindShip), r.lines[0].Color)

	r.Clear()
	r.RenderBody(&ship.Body)
	r.Present()

	require.Len(t, r.lines, want, "lines are reused, not reallocated")
	for i, l := range r.lines {
		assert.Equal(t, i >= 3, l.Hidden, "line %d", i)
	}
}

func TestEngoRenderer_ForwardsHUD(t *testing.T) {
	hud := NewHUDSystem(nil, nil)
	r := NewEngoRenderer(nil, hud, 700)

	lines := []entity.HUDLine{{Text: "GAME OVER", Y: 0.47}, {Text: "SCORE: 2", Y: 0.53}}
	r.RenderHUD(lines)
	assert.Equal(t, lines, hud.Lines())

	assert.NotPanics(t, func() { NewEngoRenderer(nil, nil, 700).RenderHUD([]entity.HUDLine{{Text: "x"}}) })
}

func TestEngoRenderer_Remove(t *testing.T) {
	r := NewEngoRenderer(nil, nil, 700)
	r.RenderBody(newTestFactory().NewBullet(physics.Vector2D{X: 1, Y: 1}, 0))
	require.NotEmpty(t, r.lines)

	r.Remove()
	assert.Empty(t, r.lines)
}

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestTerminalRenderer_WorldToScreen(t *testing.T) {
	r := NewTerminalRenderer(&bytes.Buffer{}, 20, 10, 100)

	tests := []struct {
		name  string
		pos   physics.Vector2D
		wantX int
		wantY int
	}{
		{"origin", physics.Vector2D{}, 0, 0},
		{"center", physics.Vector2D{X: 50, Y: 50}, 10, 5},
		{"far corner", physics.Vector2D{X: 99, Y: 99}, 19, 9},
		{"outside", physics.Vector2D{X: -10, Y: 120}, -2, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.worldToScreen(tt.pos)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestTerminalRenderer_Line(t *testing.T) {
	r := NewTerminalRenderer(&bytes.Buffer{}, 5, 5, 5)

	r.line(0, 0, 4, 4, '*')
	for i := 0; i < 5; i++ {
		assert.Equal(t, '*', r.buffer[i][i])
	}

	r.Clear()
	r.line(4, 2, 0, 2, '-')
	assert.Equal(t, "-----", string(r.buffer[2]))

	assert.NotPanics(t, func() { r.line(-3, -3, 8, 8, '#') })
}

func TestTerminalRenderer_RenderBody(t *testing.T) {
	f := newTestFactory()

	t.Run("bullet", func(t *testing.T) {
		r := NewTerminalRenderer(&bytes.Buffer{}, 10, 10, 100)
		r.RenderBody(f.NewBullet(physics.Vector2D{X: 5, Y: 5}, 0))
		assert.Equal(t, "...       ", string(r.buffer[0]))
	})

	t.Run("ship", func(t *testing.T) {
		r := NewTerminalRenderer(&bytes.Buffer{}, 50, 50, 100)
		ship := f.NewShip(physics.Vector2D{X: 50, Y: 50}, 0)
		r.RenderBody(&ship.Body)
		nose := r.buffer[25][30]
		assert.Equal(t, 'A', nose)
	})

	t.Run("asteroid_off_grid_is_clipped", func(t *testing.T) {
		r := NewTerminalRenderer(&bytes.Buffer{}, 10, 10, 100)
		assert.NotPanics(t, func() {
			r.RenderBody(f.NewAsteroid(physics.Vector2D{X: -500, Y: 900}, entity.TierFull))
		})
		for _, row := range r.buffer {
			assert.Equal(t, strings.Repeat(" ", 10), string(row))
		}
	})
}

func TestTerminalRenderer_Present(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, 4, 2, 100)
	r.plot(0, 0, '#')
	r.Present()

	want := clearScreen +
		"+----+\n" +
		"|#   |\n" +
		"|    |\n" +
		"+----+\n"
	assert.Equal(t, want, out.String())
}

func TestTerminalRenderer_RenderHUD(t *testing.T) {
	tests := []struct {
		name string
		line entity.HUDLine
		row  int
		want string
	}{
		{"top", entity.HUDLine{Text: "GO", Y: 0.07}, 0, "    GO    "},
		{"center", entity.HUDLine{Text: "GAME OVER", Y: 0.5}, 5, "GAME OVER "},
		{"bottom", entity.HUDLine{Text: "SCORE", Y: 0.97}, 9, "  SCORE   "},
		{"clamped_below", entity.HUDLine{Text: "X", Y: 1.5}, 9, "    X     "},
		{"cut_to_width", entity.HUDLine{Text: "[PRESS ANY KEY]", Y: 0.75}, 7, "[PRESS ANY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(&bytes.Buffer{}, 10, 10, 100)
			r.RenderHUD([]entity.HUDLine{tt.line})
			assert.Equal(t, tt.want, string(r.buffer[tt.row]))
		})
	}
}

func TestTerminalRenderer_ClearResetsHUD(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, 12, 1, 100)
	r.RenderHUD([]entity.HUDLine{{Text: "GAME OVER", Y: 0.5}})
	r.Clear()
	r.Present()

	require.NotContains(t, out.String(), "GAME OVER")
}

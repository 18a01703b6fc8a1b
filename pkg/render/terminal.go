package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Symbols used for each kind of outline.
const (
	asteroidRune = '#'
	shipRune     = 'A'
	bulletRune   = '.'
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\033[H\033[2J"

// TerminalRenderer draws outlines as ASCII art. The whole square field is
// scaled into a width by height character grid.
type TerminalRenderer struct {
	out       io.Writer
	width     int
	height    int
	fieldSize float64
	buffer    [][]rune
}

// NewTerminalRenderer creates a renderer writing frames to out.
func NewTerminalRenderer(out io.Writer, width, height int, fieldSize float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		out:       out,
		width:     width,
		height:    height,
		fieldSize: fieldSize,
		buffer:    buffer,
	}
	r.Clear()
	return r
}

// worldToScreen converts field coordinates to a grid cell.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	x := int(math.Floor(pos.X / r.fieldSize * float64(r.width)))
	y := int(math.Floor(pos.Y / r.fieldSize * float64(r.height)))
	return x, y
}

func (r *TerminalRenderer) plot(x, y int, c rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = c
	}
}

// line draws a Bresenham line; cells off the grid are skipped.
func (r *TerminalRenderer) line(x0, y0, x1, y1 int, c rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		r.plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Clear implements entity.Renderer.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// RenderBody implements entity.Renderer.
func (r *TerminalRenderer) RenderBody(body *entity.Body) {
	c := asteroidRune
	switch body.Kind {
	case entity.KindShip:
		c = shipRune
	case entity.KindBullet:
		c = bulletRune
	}

	for _, e := range body.Edges() {
		x0, y0 := r.worldToScreen(e.A)
		x1, y1 := r.worldToScreen(e.B)
		r.line(x0, y0, x1, y1, c)
	}
}

// RenderHUD implements entity.Renderer. Each line is written over the field at
// its row, centered and cut to the grid width.
func (r *TerminalRenderer) RenderHUD(lines []entity.HUDLine) {
	for _, l := range lines {
		row := int(math.Floor(l.Y * float64(r.height)))
		row = max(0, min(r.height-1, row))

		text := []rune(l.Text)
		if len(text) > r.width {
			text = text[:r.width]
		}
		start := (r.width - len(text)) / 2
		copy(r.buffer[row][start:], text)
	}
}

// Present implements entity.Renderer.
func (r *TerminalRenderer) Present() {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	sb.WriteString(clearScreen)
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	fmt.Fprint(r.out, sb.String())
}

// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// hudText is one HUD line.
type hudText struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	text string
}

// HUDSystem shows the overlay text as lines centered across the field, each at
// its own height within it. Text entities are pooled like outline segments.
type HUDSystem struct {
	renderSystem *common.RenderSystem
	font         *common.Font

	viewport   engo.Point
	fieldSize  float32
	lineHeight float32

	texts []*hudText
	lines []entity.HUDLine
	dirty bool
}

// NewHUDSystem creates a HUD drawing with font. Without a font nothing is
// drawn, but the current lines are still tracked.
func NewHUDSystem(renderSystem *common.RenderSystem, font *common.Font) *HUDSystem {
	hud := &HUDSystem{
		renderSystem: renderSystem,
		font:         font,
		lineHeight:   24,
	}
	if font != nil {
		hud.lineHeight = float32(font.Size) * 1.5
	}
	return hud
}

// SetViewport sets the window size and the side of the field centered in it.
func (hud *HUDSystem) SetViewport(width, height, fieldSize float32) {
	hud.viewport = engo.Point{X: width, Y: height}
	hud.fieldSize = fieldSize
	hud.dirty = true
}

// SetLines replaces the overlay text. Nothing changes on screen until Update
// runs, and only if the lines differ.
func (hud *HUDSystem) SetLines(lines []entity.HUDLine) {
	if equalLines(hud.lines, lines) {
		return
	}
	hud.lines = append(hud.lines[:0], lines...)
	hud.dirty = true
}

// Lines returns the current overlay text.
func (hud *HUDSystem) Lines() []entity.HUDLine {
	return hud.lines
}

func equalLines(a, b []entity.HUDLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// placeLines returns the top left corner of each line's text. Lines are
// centered horizontally and sit with their middle at Y of the field height.
func placeLines(lines []entity.HUDLine, widths []float32, viewport engo.Point, fieldSize, lineHeight float32) []engo.Point {
	fieldTop := (viewport.Y - fieldSize) / 2
	points := make([]engo.Point, len(lines))
	for i, l := range lines {
		points[i] = engo.Point{
			X: (viewport.X - widths[i]) / 2,
			Y: fieldTop + float32(l.Y)*fieldSize - lineHeight/2,
		}
	}
	return points
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update rebuilds the text entities when the lines changed.
func (hud *HUDSystem) Update(dt float32) {
	if !hud.dirty || hud.font == nil {
		return
	}
	hud.dirty = false

	widths := make([]float32, len(hud.lines))
	for i, line := range hud.lines {
		w, _, _ := hud.font.TextDimensions(line.Text)
		widths[i] = float32(w)
	}
	points := placeLines(hud.lines, widths, hud.viewport, hud.fieldSize, hud.lineHeight)

	for i, line := range hud.lines {
		t := hud.text(i)
		if t.text != line.Text {
			t.text = line.Text
			t.Drawable = common.Text{Font: hud.font, Text: line.Text}
		}
		t.Position = points[i]
		t.Hidden = false
	}
	for _, t := range hud.texts[len(hud.lines):] {
		t.Hidden = true
	}
}

func (hud *HUDSystem) text(i int) *hudText {
	for len(hud.texts) <= i {
		t := &hudText{BasicEntity: ecs.NewBasic()}
		t.SetShader(common.TextHUDShader)
		t.SetZIndex(1)
		if hud.renderSystem != nil {
			hud.renderSystem.Add(&t.BasicEntity, &t.RenderComponent, &t.SpaceComponent)
		}
		hud.texts = append(hud.texts, t)
	}
	return hud.texts[i]
}

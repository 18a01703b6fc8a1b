// pkg/render/engo/renderer.go
package engo

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// lineWidth is the stroke width of every outline, in pixels.
const lineWidth = 1.5

// lineEntity is one outline segment: a thin rectangle anchored at the segment
// start and rotated onto it.
type lineEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer on top of engo's RenderSystem. Line
// entities are pooled across frames; segments not drawn in a frame are hidden.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	hud          *HUDSystem

	fieldSize float32
	viewport  engo.Point

	lines []*lineEntity
	used  int
}

// NewEngoRenderer creates a renderer that adds its entities to renderSystem. A
// nil renderSystem keeps the entities local, which tests rely on.
func NewEngoRenderer(renderSystem *common.RenderSystem, hud *HUDSystem, fieldSize float64) *EngoRenderer {
	return &EngoRenderer{
		renderSystem: renderSystem,
		hud:          hud,
		fieldSize:    float32(fieldSize),
		viewport:     engo.Point{X: float32(fieldSize), Y: float32(fieldSize)},
	}
}

// SetViewport sets the window size the field is centered in.
func (r *EngoRenderer) SetViewport(width, height float32) {
	r.viewport = engo.Point{X: width, Y: height}
}

// fieldOffset is the screen position of the field's top left corner.
func (r *EngoRenderer) fieldOffset() engo.Point {
	return engo.Point{
		X: (r.viewport.X - r.fieldSize) / 2,
		Y: (r.viewport.Y - r.fieldSize) / 2,
	}
}

// edgeTransform returns where a segment starts on screen, how long it is, and
// its rotation in degrees clockwise, which is what SpaceComponent expects.
func edgeTransform(e physics.Edge, offset engo.Point) (engo.Point, float32, float32) {
	d := e.B.Sub(e.A)
	start := engo.Point{
		X: float32(e.A.X) + offset.X,
		Y: float32(e.A.Y) + offset.Y,
	}
	return start, float32(d.Length()), float32(d.Angle() * 180 / math.Pi)
}

// nextLine hands out the next pooled line, creating one when the pool is empty.
func (r *EngoRenderer) nextLine() *lineEntity {
	if r.used < len(r.lines) {
		l := r.lines[r.used]
		r.used++
		return l
	}

	l := &lineEntity{BasicEntity: ecs.NewBasic()}
	l.Drawable = common.Rectangle{}
	if r.renderSystem != nil {
		r.renderSystem.Add(&l.BasicEntity, &l.RenderComponent, &l.SpaceComponent)
	}
	r.lines = append(r.lines, l)
	r.used++
	return l
}

// Clear implements entity.Renderer.
func (r *EngoRenderer) Clear() {
	r.used = 0
}

// RenderBody implements entity.Renderer.
func (r *EngoRenderer) RenderBody(body *entity.Body) {
	offset := r.fieldOffset()
	c := kindColor(body.Kind)

	for _, e := range body.Edges() {
		pos, length, rotation := edgeTransform(e, offset)
		if length == 0 {
			continue
		}
		l := r.nextLine()
		l.SpaceComponent = common.SpaceComponent{
			Position: pos,
			Width:    length,
			Height:   lineWidth,
			Rotation: rotation,
		}
		l.Color = c
		l.Hidden = false
	}
}

// RenderHUD implements entity.Renderer.
func (r *EngoRenderer) RenderHUD(lines []entity.HUDLine) {
	if r.hud != nil {
		r.hud.SetLines(lines)
	}
}

// Present implements entity.Renderer. Engo draws on its own schedule, so all
// that is left is hiding the segments this frame did not use.
func (r *EngoRenderer) Present() {
	for _, l := range r.lines[r.used:] {
		l.Hidden = true
	}
}

// Remove drops every pooled line from the render system.
func (r *EngoRenderer) Remove() {
	if r.renderSystem != nil {
		for _, l := range r.lines {
			r.renderSystem.Remove(l.BasicEntity)
		}
	}
	r.lines = nil
	r.used = 0
}

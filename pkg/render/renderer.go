// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// NullRenderer draws nothing and logs every call at debug level. The headless
// mode uses it so a run can be traced frame by frame.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a NullRenderer that logs through logger. A nil logger
// discards everything.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns how many frames have been presented.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called", "frame", d.frames)
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
}

// RenderBody implements entity.Renderer.
func (d *NullRenderer) RenderBody(body *entity.Body) {
	ctx := context.Background()
	if body == nil {
		d.logger.Debug(ctx, "RenderBody called with nil body")
		return
	}
	pos := body.Position()
	d.logger.Debug(ctx, "RenderBody called",
		"body_id", body.ID,
		"kind", body.Kind.String(),
		"x", pos.X,
		"y", pos.Y,
	)
}

// RenderHUD implements entity.Renderer.
func (d *NullRenderer) RenderHUD(lines []entity.HUDLine) {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	d.logger.Debug(context.Background(), "RenderHUD called", "lines", texts)
}

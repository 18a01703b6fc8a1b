package entity

// HUDLine is one line of overlay text, centered horizontally. Y places the
// line's center as a fraction of the field side, 0 at the top and 1 at the
// bottom.
type HUDLine struct {
	Text string
	Y    float64
}

// Renderer draws one frame. The game calls Clear, then RenderBody for each
// live body, then RenderHUD, then Present.
type Renderer interface {
	// RenderBody draws the closed outline of b's world vertices.
	RenderBody(b *Body)
	// RenderHUD draws the text overlay.
	RenderHUD(lines []HUDLine)
	Clear()
	Present()
}

// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// hudFontURL is the name the embedded HUD font is registered under in engo.Files.
const hudFontURL = "asteroids/gomono.ttf"

// AssetManager loads the few assets the game needs. Outlines are drawn from
// primitives, so only the HUD font has to be loaded.
type AssetManager struct {
	fontSize float64
	font     *common.Font
}

// NewAssetManager creates an asset manager for a HUD font of the given size.
func NewAssetManager(fontSize float64) *AssetManager {
	return &AssetManager{fontSize: fontSize}
}

// LoadAssets registers the embedded font with engo and prepares it for drawing.
// It must run inside Preload or Setup, once the engo context exists.
func (am *AssetManager) LoadAssets() error {
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("failed to load HUD font: %w", err)
	}

	font := &common.Font{
		URL:  hudFontURL,
		FG:   color.White,
		Size: am.fontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return fmt.Errorf("failed to prepare HUD font: %w", err)
	}

	am.font = font
	return nil
}

// Font returns the HUD font, or nil before LoadAssets succeeds.
func (am *AssetManager) Font() *common.Font {
	return am.font
}

// kindColor is the stroke color for each kind of body.
func kindColor(kind entity.Kind) color.Color {
	switch kind {
	case entity.KindBullet:
		return color.RGBA{255, 230, 120, 255}
	case entity.KindShip:
		return color.RGBA{140, 220, 255, 255}
	default:
		return color.White
	}
}

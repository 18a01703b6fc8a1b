// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// Button names registered by SetupInputBindings.
const (
	buttonThrust    = "thrust"
	buttonTurnLeft  = "turnLeft"
	buttonTurnRight = "turnRight"
	buttonFire      = "fire"
	buttonOther     = "other"
)

// otherKeys are the keys without a ship action. Holding one still counts as a
// key press on the game over screen.
var otherKeys = []engo.Key{
	engo.KeyB, engo.KeyC, engo.KeyE, engo.KeyF, engo.KeyG, engo.KeyH,
	engo.KeyI, engo.KeyJ, engo.KeyK, engo.KeyL, engo.KeyM, engo.KeyN,
	engo.KeyO, engo.KeyP, engo.KeyQ, engo.KeyR, engo.KeyS, engo.KeyT,
	engo.KeyU, engo.KeyV, engo.KeyX, engo.KeyY, engo.KeyZ,
	engo.KeyZero, engo.KeyOne, engo.KeyTwo, engo.KeyThree, engo.KeyFour,
	engo.KeyFive, engo.KeySix, engo.KeySeven, engo.KeyEight, engo.KeyNine,
	engo.KeyArrowDown, engo.KeyEnter, engo.KeyEscape, engo.KeyTab, engo.KeyBackspace,
}

// ButtonFunc reports whether the named button is held down.
type ButtonFunc func(name string) bool

// engoButtons reads engo's global input state.
func engoButtons(name string) bool {
	return engo.Input.Button(name).Down()
}

// InputSystem samples the keyboard once per frame and serves the snapshot to
// the game loop as an engine.InputSource.
type InputSystem struct {
	buttons ButtonFunc
	state   entity.Input
}

// NewInputSystem creates an input system reading buttons. A nil buttons reads
// engo's keyboard state.
func NewInputSystem(buttons ButtonFunc) *InputSystem {
	if buttons == nil {
		buttons = engoButtons
	}
	return &InputSystem{buttons: buttons}
}

// Priority makes the input system run before the tick system in each frame.
func (is *InputSystem) Priority() int {
	return 10
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update samples the held keys.
func (is *InputSystem) Update(dt float32) {
	is.state = entity.Input{
		Thrust:    is.buttons(buttonThrust),
		TurnLeft:  is.buttons(buttonTurnLeft),
		TurnRight: is.buttons(buttonTurnRight),
		Fire:      is.buttons(buttonFire),
		Other:     is.buttons(buttonOther),
	}
}

// Poll returns the snapshot taken by the last Update.
func (is *InputSystem) Poll() entity.Input {
	return is.state
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonTurnLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonTurnRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonFire, engo.KeySpace)
	engo.Input.RegisterButton(buttonOther, otherKeys...)
}

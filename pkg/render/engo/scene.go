// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// maxStepsPerFrame caps catch-up ticks after a long frame.
const maxStepsPerFrame = 5

// hudFontSize is the HUD text size in points.
const hudFontSize = 18

// TickSystem converts engo's variable frame time into fixed game ticks.
type TickSystem struct {
	ctx    context.Context
	runner *engine.Runner
	step   float64
	acc    float64
	exit   func()
}

// NewTickSystem creates a tick system stepping runner tickRate times per second.
// When ctx ends, exit is called on the next frame.
func NewTickSystem(ctx context.Context, runner *engine.Runner, tickRate int, exit func()) *TickSystem {
	return &TickSystem{
		ctx:    ctx,
		runner: runner,
		step:   1 / float64(tickRate),
		exit:   exit,
	}
}

// Remove satisfies the ecs.System interface
func (ts *TickSystem) Remove(basic ecs.BasicEntity) {}

// Update runs as many ticks as the elapsed time allows.
func (ts *TickSystem) Update(dt float32) {
	if ts.ctx.Err() != nil {
		ts.exit()
		return
	}

	ts.acc += float64(dt)
	for n := 0; ts.acc >= ts.step; n++ {
		if n == maxStepsPerFrame {
			ts.acc = 0
			return
		}
		ts.runner.Step(ts.ctx)
		ts.acc -= ts.step
	}
}

// GameScene is the single engo scene: it wires the game to engo's input and
// render systems.
type GameScene struct {
	ctx    context.Context
	game   *engine.Game
	logger *logging.Logger

	// OnFrame is passed on to the runner.
	OnFrame func(engine.Frame)

	runner   *engine.Runner
	renderer *EngoRenderer
	hud      *HUDSystem
	input    *InputSystem
	assets   *AssetManager
}

// NewGameScene creates a scene for game. Cancelling ctx closes the window.
func NewGameScene(ctx context.Context, game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Nop()
	}
	return &GameScene{
		ctx:    ctx,
		game:   game,
		logger: logger,
		assets: NewAssetManager(hudFontSize),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "AsteroidsScene"
}

// Preload loads the HUD font. The game runs without a HUD if it fails.
func (scene *GameScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(scene.ctx, "HUD disabled", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	common.SetBackground(color.Black)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	width, height := engo.GameWidth(), engo.GameHeight()

	scene.hud = NewHUDSystem(renderSystem, scene.assets.Font())
	scene.hud.SetViewport(width, height, float32(scene.game.Config.FieldSize))

	scene.renderer = NewEngoRenderer(renderSystem, scene.hud, scene.game.Config.FieldSize)
	scene.renderer.SetViewport(width, height)

	scene.input = NewInputSystem(nil)
	world.AddSystem(scene.input)

	scene.runner = engine.NewRunner(scene.game, scene.input, scene.renderer)
	scene.runner.OnFrame = scene.OnFrame
	world.AddSystem(NewTickSystem(scene.ctx, scene.runner, scene.game.Config.TickRate, engo.Exit))
	world.AddSystem(scene.hud)

	scene.logger.Info(scene.ctx, "scene ready",
		"width", width,
		"height", height,
		"field_size", scene.game.Config.FieldSize,
	)
}

// Runner returns the runner driving the game once Setup has run.
func (scene *GameScene) Runner() *engine.Runner {
	return scene.runner
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	if scene.renderer != nil {
		scene.renderer.Remove()
	}
}

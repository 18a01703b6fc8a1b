// cmd/asteroids/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

type options struct {
	configPath string
	renderer   string
	width      int
	height     int
	cols       int
	rows       int
	fullscreen bool
	seed       string
	ticks      uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file (JSON or YAML)")
	flag.StringVar(&opts.renderer, "renderer", "engo", "Renderer type: 'engo', 'terminal' or 'headless'")
	flag.IntVar(&opts.width, "width", 1024, "Window width (Engo only)")
	flag.IntVar(&opts.height, "height", 768, "Window height (Engo only)")
	flag.IntVar(&opts.cols, "cols", 64, "Grid columns (terminal only)")
	flag.IntVar(&opts.rows, "rows", 32, "Grid rows (terminal only)")
	flag.BoolVar(&opts.fullscreen, "fullscreen", false, "Run in fullscreen mode (Engo only)")
	flag.StringVar(&opts.seed, "seed", "", "Random seed; overrides the configuration")
	flag.Uint64Var(&opts.ticks, "ticks", 0, "Stop after this many ticks (terminal and headless only)")
	flag.Parse()

	logger := logging.NewLogger()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error(ctx, "asteroids exited with error", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *logging.Logger) error {
	cfg, err := loadConfig(ctx, opts, logger)
	if err != nil {
		return err
	}

	bus := event.NewEventBus()
	game := engine.NewGame(cfg, engine.NewRand(cfg.Seed), bus, logger)
	subscribeEvents(bus, game, logger)

	logger.Info(game.Context(ctx), "game started",
		"renderer", opts.renderer,
		"field_size", cfg.FieldSize,
		"seeded", cfg.Seed != "",
	)

	switch opts.renderer {
	case "engo":
		runEngo(ctx, opts, game, logger)
		return nil
	case "terminal":
		r := render.NewTerminalRenderer(os.Stdout, opts.cols, opts.rows, cfg.FieldSize)
		return runLoop(ctx, game, r, opts.ticks, logger)
	case "headless":
		return runLoop(ctx, game, render.NewNullRenderer(logger), opts.ticks, logger)
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}

// loadConfig layers the configuration: defaults or file, then environment,
// then flags, then the window-derived field size.
func loadConfig(ctx context.Context, opts options, logger *logging.Logger) (*config.GameConfig, error) {
	var cfg *config.GameConfig

	if _, err := os.Stat(opts.configPath); errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "configuration file not found, using defaults", "path", opts.configPath)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, logging.WrapError(err, "loading %s", opts.configPath)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if opts.seed != "" {
		cfg.Seed = opts.seed
	}
	if opts.renderer == "engo" {
		cfg.FieldSize = cfg.FieldSizeForViewport(float64(opts.width), float64(opts.height))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// subscribeEvents logs the game's notable events.
func subscribeEvents(bus *event.Bus, game *engine.Game, logger *logging.Logger) {
	bus.Subscribe(event.GameStarted, func(e event.Event) {
		logger.Info(game.Context(context.Background()), "new session")
	})

	bus.Subscribe(event.ShipDestroyed, func(e event.Event) {
		if se, ok := e.(*event.ShipEvent); ok {
			logger.Info(game.Context(context.Background()), "final score", "score", se.Score)
		}
	})

	bus.Subscribe(event.SceneChanged, func(e event.Event) {
		if se, ok := e.(*event.SceneEvent); ok {
			logger.Debug(game.Context(context.Background()), "scene", "from", se.From, "to", se.To)
		}
	})
}

// runEngo opens the window and blocks until it closes.
func runEngo(ctx context.Context, opts options, game *engine.Game, logger *logging.Logger) {
	scene := engorender.NewGameScene(ctx, game, logger)

	engo.Run(engo.RunOptions{
		Title:      "Asteroids",
		Width:      opts.width,
		Height:     opts.height,
		Fullscreen: opts.fullscreen,
		VSync:      true,
	}, scene)
}

// runLoop drives the game without a window, steered by the autopilot. SIGUSR1
// toggles pause.
func runLoop(ctx context.Context, game *engine.Game, r entity.Renderer, ticks uint64, logger *logging.Logger) error {
	runner := engine.NewRunner(game, &autopilot{}, r)
	runner.MaxTicks = ticks

	group, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)

	group.Go(func() error {
		defer cancel()
		return runner.Run(runCtx)
	})

	group.Go(func() error {
		toggle := make(chan os.Signal, 1)
		signal.Notify(toggle, syscall.SIGUSR1)
		defer signal.Stop(toggle)

		for {
			select {
			case <-runCtx.Done():
				return nil
			case <-toggle:
				if runner.Paused() {
					runner.Resume()
				} else {
					runner.Pause()
				}
				logger.Info(game.Context(runCtx), "pause toggled", "paused", runner.Paused())
			}
		}
	})

	err := group.Wait()
	logger.Info(game.Context(ctx), "stopped", "tick", game.World.Tick, "score", game.Score)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

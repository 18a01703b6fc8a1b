// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig is the single tunable parameter surface of the simulation. It is
// built once at startup and treated as read-only afterwards.
type GameConfig struct {
	// FieldSize is the side of the square playfield, usually derived from the
	// viewport with FieldSizeForViewport.
	FieldSize float64 `json:"fieldSize" yaml:"fieldSize"`
	// Difficulty is the probability in [0, 1] that a spawned asteroid is full size
	// rather than half size.
	Difficulty       float64 `json:"difficulty" yaml:"difficulty"`
	InitialAsteroids int     `json:"initialAsteroids" yaml:"initialAsteroids"`

	AsteroidSize  float64 `json:"asteroidSize" yaml:"asteroidSize"`
	AsteroidSpeed float64 `json:"asteroidSpeed" yaml:"asteroidSpeed"`

	PlayerSize     float64 `json:"playerSize" yaml:"playerSize"`
	PlayerFriction float64 `json:"playerFriction" yaml:"playerFriction"`
	PlayerMaxSpeed float64 `json:"playerMaxSpeed" yaml:"playerMaxSpeed"`
	// PlayerAccelTicks is how many ticks of thrust take the ship from rest to
	// PlayerMaxSpeed. The acceleration itself is derived, see PlayerAccel.
	PlayerAccelTicks    float64 `json:"playerAccelTicks" yaml:"playerAccelTicks"`
	PlayerTurnSpeed     float64 `json:"playerTurnSpeed" yaml:"playerTurnSpeed"`
	PlayerMinShootDelay int     `json:"playerMinShootDelay" yaml:"playerMinShootDelay"`

	BulletSize  float64 `json:"bulletSize" yaml:"bulletSize"`
	BulletSpeed float64 `json:"bulletSpeed" yaml:"bulletSpeed"`

	TickRate           int `json:"tickRate" yaml:"tickRate"`
	GameOverDelayTicks int `json:"gameOverDelayTicks" yaml:"gameOverDelayTicks"`

	ViewportMargin float64 `json:"viewportMargin" yaml:"viewportMargin"`
	MinFieldSize   float64 `json:"minFieldSize" yaml:"minFieldSize"`
	MaxFieldSize   float64 `json:"maxFieldSize" yaml:"maxFieldSize"`

	// Seed makes runs reproducible. Empty means a random seed.
	Seed string `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// PlayerAccel is the per-tick thrust, PlayerMaxSpeed reached in PlayerAccelTicks.
func (c *GameConfig) PlayerAccel() float64 {
	return c.PlayerMaxSpeed / c.PlayerAccelTicks
}

// FieldSizeForViewport derives the square field side from a window size: the
// shorter side less the margin, clamped to [MinFieldSize, MaxFieldSize].
func (c *GameConfig) FieldSizeForViewport(width, height float64) float64 {
	size := math.Min(width, height) - c.ViewportMargin
	return math.Max(c.MinFieldSize, math.Min(c.MaxFieldSize, size))
}

// DefaultConfig returns the classic tuning: 60 ticks per second, a 30 tick
// run-up to top speed and a 90 tick full turn.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		FieldSize:        700,
		Difficulty:       0.3,
		InitialAsteroids: 5,

		AsteroidSize:  80,
		AsteroidSpeed: 0.6,

		PlayerSize:          10,
		PlayerFriction:      0.99,
		PlayerMaxSpeed:      5,
		PlayerAccelTicks:    30,
		PlayerTurnSpeed:     math.Pi / 45,
		PlayerMinShootDelay: 10,

		BulletSize:  15,
		BulletSpeed: 8,

		TickRate:           60,
		GameOverDelayTicks: 120,

		ViewportMargin: 50,
		MinFieldSize:   200,
		MaxFieldSize:   2000,
	}
}

// LoadConfig reads a configuration file on top of the defaults, so a file only
// needs the keys it changes. Files ending in .yaml or .yml are decoded as YAML,
// anything else as JSON.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes the configuration in the format implied by the extension.
func SaveConfig(config *GameConfig, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

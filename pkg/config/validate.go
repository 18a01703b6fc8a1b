package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every parameter is in range. All problems are reported
// together.
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.FieldSize > 0, "fieldSize must be positive, got %v", c.FieldSize)
	check(c.Difficulty >= 0 && c.Difficulty <= 1, "difficulty must be within [0, 1], got %v", c.Difficulty)
	check(c.InitialAsteroids >= 0, "initialAsteroids must not be negative, got %d", c.InitialAsteroids)
	check(c.AsteroidSize > 0, "asteroidSize must be positive, got %v", c.AsteroidSize)
	check(c.AsteroidSpeed >= 0.5, "asteroidSpeed must be at least 0.5, got %v", c.AsteroidSpeed)
	check(c.PlayerSize > 0, "playerSize must be positive, got %v", c.PlayerSize)
	check(c.PlayerFriction > 0 && c.PlayerFriction <= 1, "playerFriction must be within (0, 1], got %v", c.PlayerFriction)
	check(c.PlayerMaxSpeed > 0, "playerMaxSpeed must be positive, got %v", c.PlayerMaxSpeed)
	check(c.PlayerAccelTicks > 0, "playerAccelTicks must be positive, got %v", c.PlayerAccelTicks)
	check(c.PlayerTurnSpeed > 0, "playerTurnSpeed must be positive, got %v", c.PlayerTurnSpeed)
	check(c.PlayerMinShootDelay >= 0, "playerMinShootDelay must not be negative, got %d", c.PlayerMinShootDelay)
	check(c.BulletSize > 0, "bulletSize must be positive, got %v", c.BulletSize)
	check(c.BulletSpeed > 0, "bulletSpeed must be positive, got %v", c.BulletSpeed)
	check(c.TickRate > 0, "tickRate must be positive, got %d", c.TickRate)
	check(c.GameOverDelayTicks >= 0, "gameOverDelayTicks must not be negative, got %d", c.GameOverDelayTicks)
	check(c.MinFieldSize > 0 && c.MinFieldSize <= c.MaxFieldSize,
		"field size bounds must satisfy 0 < min <= max, got [%v, %v]", c.MinFieldSize, c.MaxFieldSize)

	return errors.Join(errs...)
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvFieldSize        = "ASTEROIDS_FIELD_SIZE"
	EnvDifficulty       = "ASTEROIDS_DIFFICULTY"
	EnvInitialAsteroids = "ASTEROIDS_INITIAL_ASTEROIDS"
	EnvTickRate         = "ASTEROIDS_TICK_RATE"
	EnvSeed             = "ASTEROIDS_SEED"
)

// ApplyEnv overrides fields of config from ASTEROIDS_* environment variables.
// Unset variables leave the field alone; malformed ones are an error.
func ApplyEnv(config *GameConfig) error {
	if err := envFloat(EnvFieldSize, &config.FieldSize); err != nil {
		return err
	}
	if err := envFloat(EnvDifficulty, &config.Difficulty); err != nil {
		return err
	}
	if err := envInt(EnvInitialAsteroids, &config.InitialAsteroids); err != nil {
		return err
	}
	if err := envInt(EnvTickRate, &config.TickRate); err != nil {
		return err
	}
	if seed, ok := os.LookupEnv(EnvSeed); ok {
		config.Seed = seed
	}
	return nil
}

func envFloat(key string, dst *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func envInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const appName = "vi-snake"

// Config holds runtime settings outside the game rules
type Config struct {
	TickInterval  time.Duration // Snake step period
	ClockInterval time.Duration // Play timer resolution

	// Screen footprint of one board cell
	CellWidth  int
	CellHeight int

	HighScoreDir string
	SpectateAddr string // Empty disables the spectator server
	Seed         int64  // Zero seeds from the clock
	Debug        bool
}

var (
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrInvalidCellSize = errors.New("cell size must be between 1 and 4")
	ErrInvalidEnv      = errors.New("invalid environment value")
)

// Default returns the stock settings
func Default() *Config {
	return &Config{
		TickInterval:  300 * time.Millisecond,
		ClockInterval: time.Second,
		CellWidth:     2,
		CellHeight:    1,
		HighScoreDir:  defaultHighScoreDir(),
	}
}

// defaultHighScoreDir prefers the user config dir, falling back to the working dir
func defaultHighScoreDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	return "." + appName
}

// LoadEnv returns the defaults with SNAKE_* overrides applied
func LoadEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SNAKE_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_TICK_MS=%q", ErrInvalidEnv, v)
		}
		c.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("SNAKE_CELL_WIDTH"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_CELL_WIDTH=%q", ErrInvalidEnv, v)
		}
		c.CellWidth = w
	}

	if v := os.Getenv("SNAKE_HIGHSCORE_DIR"); v != "" {
		c.HighScoreDir = v
	}

	if v, ok := os.LookupEnv("SNAKE_SPECTATE_ADDR"); ok {
		c.SpectateAddr = v
	}

	if v := os.Getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED=%q", ErrInvalidEnv, v)
		}
		c.Seed = seed
	}

	if v := os.Getenv("SNAKE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}

	return c.Validate()
}

// Validate checks ranges
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick %v: %w", c.TickInterval, ErrInvalidInterval)
	}
	if c.ClockInterval <= 0 {
		return fmt.Errorf("clock %v: %w", c.ClockInterval, ErrInvalidInterval)
	}
	if c.CellWidth < 1 || c.CellWidth > 4 || c.CellHeight < 1 || c.CellHeight > 4 {
		return fmt.Errorf("%dx%d: %w", c.CellWidth, c.CellHeight, ErrInvalidCellSize)
	}
	return nil
}

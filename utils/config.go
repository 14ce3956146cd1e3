package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Height           int           `json:"height"`
	Width            int           `json:"width"`
	Iterations       int           `json:"iterations"`
	Seed             int64         `json:"seed"`
	Pattern          string        `json:"pattern"`
	Workers          int           `json:"workers"`
	UseActiveRegion  bool          `json:"use_active_region"`
	StagnationWindow int           `json:"stagnation_window"`
	FrameDelay       time.Duration `json:"frame_delay"`
	GIFOutput        string        `json:"gif_output"`
	ChartOutput      string        `json:"chart_output"`
	Terminal         bool          `json:"terminal"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Height:           25,
		Width:            100,
		Iterations:       30,
		Seed:             0, // 0 picks a time based seed
		StagnationWindow: 5,
		FrameDelay:       200 * time.Millisecond,
		GIFOutput:        "game-of-life.gif",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a run cannot start without
func (c Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be positive, got %dx%d", c.Height, c.Width)
	}
	if c.Iterations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] iterations must not be negative, got %d", c.Iterations)
	}
	if c.StagnationWindow < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_window must not be negative, got %d", c.StagnationWindow)
	}
	if c.FrameDelay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_delay must not be negative, got %s", c.FrameDelay)
	}
	return nil
}

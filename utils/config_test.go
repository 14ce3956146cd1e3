package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	assert.Equal(t, 25, c.Height)
	assert.Equal(t, 100, c.Width)
	assert.Equal(t, 30, c.Iterations)
	assert.Equal(t, 200*time.Millisecond, c.FrameDelay)
	assert.Equal(t, "game-of-life.gif", c.GIFOutput)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"height": 10, "width": 12, "iterations": 4, "seed": 7, "use_active_region": true}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 4, c.Iterations)
	assert.Equal(t, int64(7), c.Seed)
	assert.True(t, c.UseActiveRegion)
	// Unset fields keep their defaults
	assert.Equal(t, "game-of-life.gif", c.GIFOutput)
	assert.Equal(t, 5, c.StagnationWindow)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	assert.Contains(t, err.Error(), "[LoadConfig]")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	c, err := LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
	assert.Equal(t, DefaultConfig().Height, c.Height)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, true},
		{"zero height", func(c *Config) { c.Height = 0 }, false},
		{"negative width", func(c *Config) { c.Width = -1 }, false},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }, false},
		{"negative stagnation window", func(c *Config) { c.StagnationWindow = -2 }, false},
		{"negative frame delay", func(c *Config) { c.FrameDelay = -time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNewRNG(t *testing.T) {
	t.Parallel()

	a, seedA := NewRNG(11)
	b, seedB := NewRNG(11)
	assert.Equal(t, int64(11), seedA)
	assert.Equal(t, seedA, seedB)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	_, picked := NewRNG(0)
	assert.NotZero(t, picked)
}

func TestStats(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.Update(0, 100, 0)
	assert.Equal(t, 100.0, s.AveragePopulation)
	assert.Equal(t, 100, s.PeakPopulation)

	s.Update(1, 200, 500*time.Millisecond)
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9)
	assert.Equal(t, 200, s.PeakPopulation)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}

package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, 20.0, cfg.PaddleWidth)
	assert.Equal(t, 100.0, cfg.PaddleHeight)
	assert.Equal(t, 25.0, cfg.PaddleStep)
	assert.Equal(t, 8.0, cfg.BallSpeed)
	assert.Equal(t, 20.0, cfg.BallSize)
	assert.Equal(t, 50.0, cfg.WallMargin)
	assert.Equal(t, Period, cfg.TickPeriod)
	assert.Equal(t, 50, cfg.TicksPerSecond())
	require.NoError(t, cfg.Validate())
}

func TestConfig_DerivedGeometry(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 380.0, cfg.PaddleX(), "paddle center sits one paddle width inside the edge")
	assert.Equal(t, 200.0, cfg.PaddleTravel(), "300 - 50 margin - 50 half height")
	assert.Equal(t, 240.0, cfg.WallBound(), "300 - 10 radius - 50 margin")
	assert.Equal(t, 360.0, cfg.PaddleFront(), "400 - 20 paddle - 20 ball")
	assert.Equal(t, 25, cfg.PauseTicks())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"negative height", func(c *Config) { c.Height = -600 }, "height"},
		{"zero margin", func(c *Config) { c.WallMargin = 0 }, "wallMargin"},
		{"zero paddle width", func(c *Config) { c.PaddleWidth = 0 }, "paddleWidth"},
		{"NaN paddle height", func(c *Config) { c.PaddleHeight = math.NaN() }, "paddleHeight"},
		{"zero step", func(c *Config) { c.PaddleStep = 0 }, "paddleStep"},
		{"infinite speed", func(c *Config) { c.BallSpeed = math.Inf(1) }, "ballSpeed"},
		{"zero ball", func(c *Config) { c.BallSize = 0 }, "ballSize"},
		{"paddle does not fit", func(c *Config) { c.PaddleHeight = 550 }, "paddleHeight"},
		{"paddle exactly fills", func(c *Config) { c.PaddleHeight = 500; c.WallMargin = 50 }, "paddleHeight"},
		{"ball does not fit", func(c *Config) { c.PaddleHeight = 10; c.BallSize = 550 }, "ballSize"},
		{"paddle reaches center", func(c *Config) { c.PaddleWidth = 390 }, "paddleWidth"},
		{"zero tick", func(c *Config) { c.TickPeriod = 0 }, "tickPeriod"},
		{"negative pause", func(c *Config) { c.ScorePause = -1 }, "scorePause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %T", err)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestConfig_ValidateAllowsZeroPause(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScorePause = 0
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.PauseTicks())
}

// File: utils/config.go
package utils

import (
	"fmt"
	"math"
	"time"
)

// Config holds the arena geometry, speeds and timing shared by the simulation,
// the renderers and the spectator feed. It is treated as immutable once the
// session starts.
type Config struct {
	// Timing
	TickPeriod time.Duration `json:"tickPeriod"` // Time between simulation ticks
	ScorePause time.Duration `json:"scorePause"` // Ball freeze after a point

	// Arena
	Width      float64 `json:"width"`      // Arena width, origin at the center
	Height     float64 `json:"height"`     // Arena height, origin at the center
	WallMargin float64 `json:"wallMargin"` // Inset from top/bottom edges

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight"`
	PaddleStep   float64 `json:"paddleStep"` // Distance moved per key event

	// Ball
	BallSpeed float64 `json:"ballSpeed"` // Per-axis speed magnitude per tick
	BallSize  float64 `json:"ballSize"`  // Diameter

	// Presentation
	Title         string `json:"title"`
	SpectatorAddr string `json:"spectatorAddr"` // Listen address of the spectator feed
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		TickPeriod: Period,
		ScorePause: ScorePause,

		// Arena
		Width:      800,
		Height:     600,
		WallMargin: 50,

		// Paddles
		PaddleWidth:  20,
		PaddleHeight: 100,
		PaddleStep:   25,

		// Ball
		BallSpeed: 8,
		BallSize:  20,

		// Presentation
		Title:         "Ping-Pong",
		SpectatorAddr: ":3001",
	}
}

// ConfigError reports a Config field that breaks an arena invariant.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// Validate checks that every dimension and speed is positive and that the
// paddle fits between the wall margins.
func (c Config) Validate() error {
	positives := []struct {
		field string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"wallMargin", c.WallMargin},
		{"paddleWidth", c.PaddleWidth},
		{"paddleHeight", c.PaddleHeight},
		{"paddleStep", c.PaddleStep},
		{"ballSpeed", c.BallSpeed},
		{"ballSize", c.BallSize},
	}
	for _, p := range positives {
		if !IsFinite(p.value) || p.value <= 0 {
			return &ConfigError{Field: p.field, Reason: fmt.Sprintf("must be a positive number, got %v", p.value)}
		}
	}

	if c.PaddleHeight+2*c.WallMargin >= c.Height {
		return &ConfigError{
			Field:  "paddleHeight",
			Reason: fmt.Sprintf("paddle height %v plus twice the margin %v must be less than height %v", c.PaddleHeight, c.WallMargin, c.Height),
		}
	}
	if c.BallSize+2*c.WallMargin >= c.Height {
		return &ConfigError{
			Field:  "ballSize",
			Reason: fmt.Sprintf("ball size %v plus twice the margin %v must be less than height %v", c.BallSize, c.WallMargin, c.Height),
		}
	}
	if c.PaddleWidth+c.BallSize >= c.Width/2 {
		return &ConfigError{
			Field:  "paddleWidth",
			Reason: fmt.Sprintf("paddle width %v plus ball size %v must be less than half the width %v", c.PaddleWidth, c.BallSize, c.Width/2),
		}
	}
	if c.TickPeriod <= 0 {
		return &ConfigError{Field: "tickPeriod", Reason: "must be positive"}
	}
	if c.ScorePause < 0 {
		return &ConfigError{Field: "scorePause", Reason: "must not be negative"}
	}
	return nil
}

// --- Derived geometry ---

func (c Config) HalfWidth() float64        { return c.Width / 2 }
func (c Config) HalfHeight() float64       { return c.Height / 2 }
func (c Config) BallRadius() float64       { return c.BallSize / 2 }
func (c Config) PaddleHalfWidth() float64  { return c.PaddleWidth / 2 }
func (c Config) PaddleHalfHeight() float64 { return c.PaddleHeight / 2 }

// PaddleX is the fixed horizontal center of the right paddle; the left paddle
// sits at its mirror image.
func (c Config) PaddleX() float64 { return c.HalfWidth() - c.PaddleWidth }

// PaddleTravel is the largest |y| a paddle center may reach while keeping the
// whole paddle inside the wall margins.
func (c Config) PaddleTravel() float64 {
	return c.HalfHeight() - c.WallMargin - c.PaddleHalfHeight()
}

// WallBound is the largest |y| of the ball center before it bounces off the
// top or bottom wall.
func (c Config) WallBound() float64 {
	return c.HalfHeight() - c.BallRadius() - c.WallMargin
}

// PaddleFront is the |x| at which a ball is considered to touch a paddle face.
func (c Config) PaddleFront() float64 {
	return c.HalfWidth() - c.PaddleWidth - c.BallSize
}

// PauseTicks converts ScorePause into a whole number of ticks, rounding up so
// the freeze is never shorter than configured.
func (c Config) PauseTicks() int {
	return TicksFor(c.ScorePause, c.TickPeriod)
}

// TicksPerSecond is the nominal simulation rate.
func (c Config) TicksPerSecond() int {
	if c.TickPeriod <= 0 {
		return 0
	}
	return int(math.Round(float64(time.Second) / float64(c.TickPeriod)))
}

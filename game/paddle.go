// File: game/paddle.go
package game

import (
	"fmt"

	"github.com/lguibr/pingpong/utils"
)

// Side identifies one of the two paddles, and the player behind it.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Direction is a paddle movement intent.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Paddle is a vertical paddle with a fixed x and a mutable y, both at its center.
type Paddle struct {
	Side   Side    `json:"side"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewPaddle places a paddle one paddle width inside its side of the arena,
// vertically centered.
func NewPaddle(cfg utils.Config, side Side) Paddle {
	x := cfg.PaddleX()
	if side == Left {
		x = -x
	}
	return Paddle{
		Side:   side,
		X:      x,
		Y:      0,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
}

func (p *Paddle) Top() float64    { return p.Y + p.Height/2 }
func (p *Paddle) Bottom() float64 { return p.Y - p.Height/2 }

// Covers reports whether a ball of the given diameter centered at y overlaps
// the paddle's vertical extent. Both ends are open: a tangent ball misses.
func (p *Paddle) Covers(y, ballSize float64) bool {
	reach := p.Height/2 + ballSize/2
	return p.Y-reach < y && y < p.Y+reach
}

// Move shifts the paddle one step in the given direction when its leading
// edge stays inside the wall margin; otherwise it leaves the paddle where it
// is. It reports whether the paddle moved.
func (p *Paddle) Move(cfg utils.Config, direction Direction) (bool, error) {
	limit := cfg.HalfHeight() - cfg.WallMargin
	candidate := *p

	switch direction {
	case Up:
		candidate.Y += cfg.PaddleStep
		if candidate.Top() > limit {
			return false, nil
		}
	case Down:
		candidate.Y -= cfg.PaddleStep
		if candidate.Bottom() < -limit {
			return false, nil
		}
	default:
		return false, fmt.Errorf("move %s paddle %q: %w", p.Side, string(direction), ErrUnknownDirection)
	}
	p.Y = candidate.Y
	return true, nil
}

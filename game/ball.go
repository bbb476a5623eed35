// File: game/ball.go
package game

import (
	"math"

	"github.com/lguibr/pingpong/utils"
)

// Ball is the single ball in play. Position is its center; Dx and Dy are the
// per-tick displacement and keep the same magnitude for the whole session,
// only their signs change.
type Ball struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Dx   float64 `json:"dx"`
	Dy   float64 `json:"dy"`
	Size float64 `json:"size"`
}

// NewBall returns a centered ball launched up and to the right.
func NewBall(cfg utils.Config) Ball {
	ball := Ball{Size: cfg.BallSize}
	ball.Relaunch(cfg, Right)
	return ball
}

func (b *Ball) Radius() float64 { return b.Size / 2 }

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.Dx
	b.Y += b.Dy
}

// Relaunch centers the ball and sets the initial speed on both axes. The
// ball always heads up, horizontally toward the given side.
func (b *Ball) Relaunch(cfg utils.Config, toward Side) {
	b.X, b.Y = 0, 0
	b.Dx = cfg.BallSpeed
	if toward == Left {
		b.Dx = -cfg.BallSpeed
	}
	b.Dy = cfg.BallSpeed
}

// Speed returns the per-axis speed magnitudes.
func (b *Ball) Speed() (float64, float64) {
	return math.Abs(b.Dx), math.Abs(b.Dy)
}

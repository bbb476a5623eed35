// File: game/state.go
package game

import (
	"fmt"

	"github.com/lguibr/pingpong/utils"
)

// Score counts points per side. It only ever grows.
type Score struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

func (s Score) String() string {
	return fmt.Sprintf("Left: %d  |  Right: %d", s.Left, s.Right)
}

func (s *Score) award(side Side) {
	if side == Left {
		s.Left++
	} else {
		s.Right++
	}
}

// State is everything that changes during a session. It is owned by a single
// mutator (the GameActor) and passed by pointer to MovePaddle and Step.
type State struct {
	Tick        uint64 `json:"tick"`
	LeftPaddle  Paddle `json:"leftPaddle"`
	RightPaddle Paddle `json:"rightPaddle"`
	Ball        Ball   `json:"ball"`
	Score       Score  `json:"score"`
	PauseTicks  int    `json:"pauseTicks"` // Ticks left in the post-score freeze
}

// NewState returns the kick-off state for cfg.
func NewState(cfg utils.Config) *State {
	return &State{
		LeftPaddle:  NewPaddle(cfg, Left),
		RightPaddle: NewPaddle(cfg, Right),
		Ball:        NewBall(cfg),
	}
}

// Paddle returns the paddle for side.
func (s *State) Paddle(side Side) (*Paddle, error) {
	switch side {
	case Left:
		return &s.LeftPaddle, nil
	case Right:
		return &s.RightPaddle, nil
	}
	return nil, fmt.Errorf("paddle %q: %w", side, ErrUnknownPaddle)
}

// Validate reports the first inconsistency that makes the state unusable.
func (s *State) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"leftPaddle.y", s.LeftPaddle.Y},
		{"rightPaddle.y", s.RightPaddle.Y},
		{"ball.x", s.Ball.X},
		{"ball.y", s.Ball.Y},
		{"ball.dx", s.Ball.Dx},
		{"ball.dy", s.Ball.Dy},
	}
	for _, c := range checks {
		if !utils.IsFinite(c.value) {
			return &InvalidStateError{Tick: s.Tick, Field: c.field, Reason: fmt.Sprintf("is not finite (%v)", c.value)}
		}
	}
	if s.Ball.Dx == 0 || s.Ball.Dy == 0 {
		return &InvalidStateError{Tick: s.Tick, Field: "ball.velocity", Reason: "has a zero component"}
	}
	if s.Score.Left < 0 || s.Score.Right < 0 {
		return &InvalidStateError{Tick: s.Tick, Field: "score", Reason: "is negative"}
	}
	if s.PauseTicks < 0 {
		return &InvalidStateError{Tick: s.Tick, Field: "pauseTicks", Reason: "is negative"}
	}
	return nil
}

// MovePaddle applies one movement intent to the paddle on side. Moves that
// would push the paddle past the wall margin are dropped silently.
func MovePaddle(state *State, cfg utils.Config, side Side, direction Direction) (bool, error) {
	paddle, err := state.Paddle(side)
	if err != nil {
		return false, err
	}
	return paddle.Move(cfg, direction)
}

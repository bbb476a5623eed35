// File: game/step.go
package game

import (
	"github.com/lguibr/pingpong/utils"
)

// Step advances the simulation by one tick and returns what happened.
//
// Resolution order is fixed: integrate, top/bottom walls, left paddle, right
// paddle, left boundary, right boundary. Each check sees the position left by
// the previous one. After a point the ball stays frozen at the center for
// cfg.PauseTicks() ticks while paddles remain movable.
//
// The only error is *InvalidStateError, also returned when cfg breaks an arena
// invariant; the session must not continue after it.
func Step(state *State, cfg utils.Config) ([]Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &InvalidStateError{Tick: state.Tick, Field: "config", Reason: err.Error()}
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	state.Tick++

	if state.PauseTicks > 0 {
		state.PauseTicks--
		return nil, nil
	}

	var events []Event
	ball := &state.Ball

	ball.Move()

	wall := cfg.WallBound()
	if ball.Y > wall {
		ball.Y = wall
		ball.Dy = -ball.Dy
		events = append(events, BallBounced(TopWall))
	}
	if ball.Y < -wall {
		ball.Y = -wall
		ball.Dy = -ball.Dy
		events = append(events, BallBounced(BottomWall))
	}

	front := cfg.PaddleFront()
	if ball.X < -front && ball.Dx < 0 && state.LeftPaddle.Covers(ball.Y, ball.Size) {
		ball.X = -front
		ball.Dx = -ball.Dx
		events = append(events, BallBounced(LeftPaddleFace))
	}
	if ball.X > front && ball.Dx > 0 && state.RightPaddle.Covers(ball.Y, ball.Size) {
		ball.X = front
		ball.Dx = -ball.Dx
		events = append(events, BallBounced(RightPaddleFace))
	}

	edge := cfg.HalfWidth()
	if ball.X < -edge {
		events = append(events, state.scorePoint(cfg, Right))
	}
	if ball.X > edge {
		events = append(events, state.scorePoint(cfg, Left))
	}

	return events, nil
}

// scorePoint awards a point to scorer and relaunches the ball from the center
// toward the scorer's side.
func (s *State) scorePoint(cfg utils.Config, scorer Side) Event {
	s.Score.award(scorer)
	s.Ball.Relaunch(cfg, scorer)
	s.PauseTicks = cfg.PauseTicks()
	return PointScored(scorer, s.Score)
}

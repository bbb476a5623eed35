// File: game/state_test.go
package game

import (
	"errors"
	"testing"

	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	cfg := utils.DefaultConfig()
	state := NewState(cfg)

	assert.Equal(t, Left, state.LeftPaddle.Side)
	assert.Equal(t, Right, state.RightPaddle.Side)
	assert.Equal(t, Ball{X: 0, Y: 0, Dx: 8, Dy: 8, Size: 20}, state.Ball)
	assert.Equal(t, Score{}, state.Score)
	assert.Zero(t, state.Tick)
	assert.Zero(t, state.PauseTicks)
	assert.NoError(t, state.Validate())
}

func TestState_Paddle(t *testing.T) {
	state := NewState(utils.DefaultConfig())

	left, err := state.Paddle(Left)
	require.NoError(t, err)
	assert.Same(t, &state.LeftPaddle, left)

	right, err := state.Paddle(Right)
	require.NoError(t, err)
	assert.Same(t, &state.RightPaddle, right)

	_, err = state.Paddle(Side("middle"))
	assert.True(t, errors.Is(err, ErrUnknownPaddle))
}

func TestMovePaddle(t *testing.T) {
	cfg := utils.DefaultConfig()
	state := NewState(cfg)

	moved, err := MovePaddle(state, cfg, Left, Up)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 25.0, state.LeftPaddle.Y)
	assert.Equal(t, 0.0, state.RightPaddle.Y, "only the named paddle moves")

	moved, err = MovePaddle(state, cfg, Right, Down)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, -25.0, state.RightPaddle.Y)

	_, err = MovePaddle(state, cfg, Side("nobody"), Up)
	assert.True(t, errors.Is(err, ErrUnknownPaddle))
}

func TestMovePaddle_NearTopIsNoOp(t *testing.T) {
	cfg := utils.DefaultConfig()
	state := NewState(cfg)
	state.LeftPaddle.Y = 240

	for i := 0; i < 3; i++ {
		moved, err := MovePaddle(state, cfg, Left, Up)
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, 240.0, state.LeftPaddle.Y)
	}
}

func TestScore_String(t *testing.T) {
	assert.Equal(t, "Left: 3  |  Right: 11", Score{Left: 3, Right: 11}.String())
}

func TestAction_Intent(t *testing.T) {
	tests := []struct {
		action    Action
		side      Side
		direction Direction
	}{
		{MoveLeftPaddleUp, Left, Up},
		{MoveLeftPaddleDown, Left, Down},
		{MoveRightPaddleUp, Right, Up},
		{MoveRightPaddleDown, Right, Down},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			side, direction, err := tt.action.Intent()
			require.NoError(t, err)
			assert.Equal(t, tt.side, side)
			assert.Equal(t, tt.direction, direction)
		})
	}

	_, _, err := Action("Jump").Intent()
	assert.True(t, errors.Is(err, ErrUnknownAction))
}

func TestNewFrame_CopiesEvents(t *testing.T) {
	cfg := utils.DefaultConfig()
	state := NewState(cfg)
	state.PauseTicks = 3
	events := []Event{BallBounced(TopWall)}

	frame := NewFrame("session-1", state, events)
	events[0] = BallBounced(BottomWall)
	state.Ball.X = 99

	assert.Equal(t, "session-1", frame.Session)
	assert.True(t, frame.Paused)
	assert.Equal(t, 0.0, frame.Ball.X)
	assert.Equal(t, []Event{BallBounced(TopWall)}, frame.Events)
}

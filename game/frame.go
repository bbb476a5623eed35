// File: game/frame.go
package game

// Frame is an immutable snapshot of the session taken right after a tick,
// together with the events that led to it. It is what presenters and
// spectators see; they never touch State.
type Frame struct {
	Session     string  `json:"session"`
	Tick        uint64  `json:"tick"`
	LeftPaddle  Paddle  `json:"leftPaddle"`
	RightPaddle Paddle  `json:"rightPaddle"`
	Ball        Ball    `json:"ball"`
	Score       Score   `json:"score"`
	Paused      bool    `json:"paused"`
	Events      []Event `json:"events"`
}

// NewFrame copies state and events into a Frame.
func NewFrame(session string, state *State, events []Event) Frame {
	copied := make([]Event, len(events))
	copy(copied, events)
	return Frame{
		Session:     session,
		Tick:        state.Tick,
		LeftPaddle:  state.LeftPaddle,
		RightPaddle: state.RightPaddle,
		Ball:        state.Ball,
		Score:       state.Score,
		Paused:      state.PauseTicks > 0,
		Events:      copied,
	}
}

// Presenter receives every frame, in order, right after the tick that
// produced it. Present runs on the game actor's goroutine and must not block.
type Presenter interface {
	Present(frame Frame)
}

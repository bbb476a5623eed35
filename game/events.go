// File: game/events.go
package game

// EventKind tags what happened during a tick.
type EventKind string

const (
	EventPaddleMoved EventKind = "paddle_moved"
	EventBallBounced EventKind = "ball_bounced"
	EventPointScored EventKind = "point_scored"
)

// Surface is what the ball bounced off.
type Surface string

const (
	TopWall         Surface = "top_wall"
	BottomWall      Surface = "bottom_wall"
	LeftPaddleFace  Surface = "left_paddle"
	RightPaddleFace Surface = "right_paddle"
)

// Event is a discrete state change the presentation layer may react to.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind `json:"kind"`
	Side    Side      `json:"side,omitempty"`    // Moved paddle or scoring player
	Surface Surface   `json:"surface,omitempty"` // Bounces only
	Y       float64   `json:"y,omitempty"`       // New paddle y
	Score   *Score    `json:"score,omitempty"`   // Score after a point
}

func PaddleMoved(side Side, y float64) Event {
	return Event{Kind: EventPaddleMoved, Side: side, Y: y}
}

func BallBounced(surface Surface) Event {
	return Event{Kind: EventBallBounced, Surface: surface}
}

func PointScored(scorer Side, score Score) Event {
	return Event{Kind: EventPointScored, Side: scorer, Score: &score}
}

// HasPoint reports whether events contain a PointScored.
func HasPoint(events []Event) bool {
	for _, e := range events {
		if e.Kind == EventPointScored {
			return true
		}
	}
	return false
}

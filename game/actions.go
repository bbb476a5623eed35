// File: game/actions.go
package game

import "fmt"

// Action is a logical keyboard action delivered by the input collaborator.
type Action string

const (
	MoveLeftPaddleUp    Action = "MoveLeftPaddleUp"
	MoveLeftPaddleDown  Action = "MoveLeftPaddleDown"
	MoveRightPaddleUp   Action = "MoveRightPaddleUp"
	MoveRightPaddleDown Action = "MoveRightPaddleDown"
)

// Actions lists every action in a stable order.
var Actions = []Action{MoveLeftPaddleUp, MoveLeftPaddleDown, MoveRightPaddleUp, MoveRightPaddleDown}

// Intent maps an action to the paddle and direction it moves.
func (a Action) Intent() (Side, Direction, error) {
	switch a {
	case MoveLeftPaddleUp:
		return Left, Up, nil
	case MoveLeftPaddleDown:
		return Left, Down, nil
	case MoveRightPaddleUp:
		return Right, Up, nil
	case MoveRightPaddleDown:
		return Right, Down, nil
	}
	return "", "", fmt.Errorf("action %q: %w", string(a), ErrUnknownAction)
}

// File: game/errors.go
package game

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPaddle    = errors.New("unknown paddle")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownAction    = errors.New("unknown action")
)

// InvalidStateError means the simulation state can no longer be trusted
// (non-finite coordinates, a stopped ball). It is fatal for the session.
type InvalidStateError struct {
	Tick   uint64
	Field  string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state at tick %d: %s %s", e.Tick, e.Field, e.Reason)
}

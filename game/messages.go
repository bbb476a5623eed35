// File: game/messages.go
package game

import (
	"golang.org/x/net/websocket"
)

// --- GameActor Messages ---

// GameTick advances the simulation by one step.
type GameTick struct{}

// KeyPressed carries one keyboard action into the game actor.
type KeyPressed struct {
	Action Action
}

// GetFrameRequest asks the game actor for its latest Frame (use with Ask).
type GetFrameRequest struct{}

// --- BroadcasterActor Messages ---

// AddClient registers a spectator connection.
type AddClient struct {
	ID   string
	Conn *websocket.Conn
}

// RemoveClient unregisters a spectator connection.
type RemoveClient struct {
	ID string
}

// BroadcastFrame fans one frame out to every spectator.
type BroadcastFrame struct {
	Frame Frame
}

// GetClientCountRequest asks the broadcaster how many spectators are attached (use with Ask).
type GetClientCountRequest struct{}

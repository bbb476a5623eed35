// File: game/broadcaster_actor.go
package game

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/lguibr/pingpong/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor fans frames out to spectator websocket connections.
// A connection that fails a send is dropped and closed.
type BroadcasterActor struct {
	clients map[string]*websocket.Conn
	selfPID *bollywood.PID
	log     *slog.Logger
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[string]*websocket.Conn),
			log:     slog.Default().With("actor", "broadcaster"),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic recovered in Receive", "pid", a.selfPID.String(), "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.log = a.log.With("pid", a.selfPID.String())
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.log.Debug("broadcaster started")

	case AddClient:
		if msg.Conn != nil && msg.ID != "" {
			a.clients[msg.ID] = msg.Conn
			a.log.Info("spectator attached", "client", msg.ID, "spectators", len(a.clients))
		}

	case RemoveClient:
		if _, ok := a.clients[msg.ID]; ok {
			delete(a.clients, msg.ID)
			a.log.Info("spectator detached", "client", msg.ID, "spectators", len(a.clients))
		}

	case BroadcastFrame:
		a.broadcast(msg.Frame)

	case GetClientCountRequest:
		ctx.Reply(len(a.clients))

	case bollywood.Stopping:
		for id, conn := range a.clients {
			_ = conn.Close()
			delete(a.clients, id)
		}

	case bollywood.Stopped:
		a.log.Debug("broadcaster stopped")

	default:
		a.log.Warn("unknown message", "type", fmt.Sprintf("%T", msg))
	}
}

func (a *BroadcasterActor) broadcast(frame Frame) {
	for id, conn := range a.clients {
		if err := websocket.JSON.Send(conn, frame); err != nil {
			a.log.Info("dropping spectator after send error", "client", id, "error", err)
			_ = conn.Close()
			delete(a.clients, id)
		}
	}
}

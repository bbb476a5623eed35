// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/game"
	"golang.org/x/net/websocket"
)

// HandleSubscribe registers the connection with the broadcaster and keeps it
// open until the spectator goes away. Spectators never drive the game:
// anything they send is read and discarded.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		clientID := uuid.NewString()
		log := s.log.With("client", clientID, "remote", ws.Request().RemoteAddr)

		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered in HandleSubscribe", "panic", r, "stack", string(debug.Stack()))
			}
			s.engine.Send(s.broadcasterPID, game.RemoveClient{ID: clientID}, nil)
			_ = ws.Close()
		}()

		if s.engine == nil || s.broadcasterPID == nil {
			log.Warn("no broadcaster, closing spectator")
			return
		}

		log.Info("spectator connected")
		s.engine.Send(s.broadcasterPID, game.AddClient{ID: clientID, Conn: ws}, nil)

		err := s.readLoop(ws)
		log.Info("spectator disconnected", "reason", err)
	}
}

// readLoop drains incoming messages until the connection fails.
func (s *Server) readLoop(ws *websocket.Conn) error {
	var discard []byte
	for {
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// HandleGetFrame replies with the latest frame as JSON, asking the game actor
// for it.
func (s *Server) HandleGetFrame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic recovered in HandleGetFrame", "panic", rec, "stack", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		reply, err := s.engine.Ask(s.gameActorPID, game.GetFrameRequest{}, s.askTimeout)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, bollywood.ErrTimeout) || errors.Is(err, bollywood.ErrActorNotFound) || errors.Is(err, bollywood.ErrEngineStopping) {
				status = http.StatusServiceUnavailable
			}
			s.log.Warn("frame query failed", "error", err)
			http.Error(w, fmt.Sprintf("game state unavailable: %v", err), status)
			return
		}
		frame, ok := reply.(game.Frame)
		if !ok {
			http.Error(w, fmt.Sprintf("unexpected reply type %T", reply), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(frame); err != nil {
			s.log.Warn("writing frame response", "error", err)
		}
	}
}

// File: server/server.go
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lguibr/pingpong/bollywood"
	"golang.org/x/net/websocket"
)

// Server exposes the read-only spectator feed of one game session.
type Server struct {
	engine         *bollywood.Engine
	gameActorPID   *bollywood.PID
	broadcasterPID *bollywood.PID
	askTimeout     time.Duration
	log            *slog.Logger
}

// New creates a spectator server bound to a session's actors.
func New(engine *bollywood.Engine, gameActorPID, broadcasterPID *bollywood.PID, askTimeout time.Duration) *Server {
	return &Server{
		engine:         engine,
		gameActorPID:   gameActorPID,
		broadcasterPID: broadcasterPID,
		askTimeout:     askTimeout,
		log:            slog.Default().With("component", "server"),
	}
}

// Routes returns the HTTP handler: GET / for the latest frame and
// /subscribe for the websocket frame stream.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetFrame())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}

// Start serves Routes on addr in the background. Listen errors are logged;
// the game keeps running without spectators.
func (s *Server) Start(addr string) *http.Server {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		s.log.Info("spectator feed listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("spectator feed stopped", "addr", addr, "error", err)
		}
	}()
	return httpServer
}

// Shutdown stops a server returned by Start.
func Shutdown(httpServer *http.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Warn("spectator feed shutdown", "error", err)
	}
}

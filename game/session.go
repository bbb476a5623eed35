// File: game/session.go
package game

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/utils"
)

// SessionOptions configures StartSession.
type SessionOptions struct {
	Presenters    []Presenter
	DisableTicker bool
}

// Session is one running game: an actor engine with a GameActor that owns the
// State and a BroadcasterActor that feeds spectators.
type Session struct {
	ID             string
	cfg            utils.Config
	engine         *bollywood.Engine
	gamePID        *bollywood.PID
	broadcasterPID *bollywood.PID

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// StartSession validates cfg and starts the actors. Ticking starts at once
// unless opts.DisableTicker is set.
func StartSession(cfg utils.Config, opts SessionOptions) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s := &Session{
		ID:     uuid.NewString(),
		cfg:    cfg,
		engine: bollywood.NewEngine(),
		done:   make(chan struct{}),
	}

	s.broadcasterPID = s.engine.Spawn(bollywood.NewProps(NewBroadcasterProducer()))
	s.gamePID = s.engine.Spawn(bollywood.NewProps(NewGameActorProducer(s.engine, cfg, GameActorOptions{
		Session:        s.ID,
		Presenters:     opts.Presenters,
		BroadcasterPID: s.broadcasterPID,
		OnEnd:          s.finish,
		DisableTicker:  opts.DisableTicker,
	})))
	if s.gamePID == nil || s.broadcasterPID == nil {
		return nil, fmt.Errorf("start session: %w", bollywood.ErrEngineStopping)
	}

	slog.Info("session started", "session", s.ID, "ticksPerSecond", cfg.TicksPerSecond())
	return s, nil
}

func (s *Session) finish(err error) {
	s.doneOnce.Do(func() {
		s.err = err
		close(s.done)
	})
}

// Press delivers one keyboard action. It never blocks.
func (s *Session) Press(action Action) {
	s.engine.Send(s.gamePID, KeyPressed{Action: action}, nil)
}

// Tick requests one simulation step; only useful with DisableTicker.
func (s *Session) Tick() {
	s.engine.Send(s.gamePID, GameTick{}, nil)
}

// Frame returns the latest presented frame.
func (s *Session) Frame(timeout time.Duration) (Frame, error) {
	reply, err := s.engine.Ask(s.gamePID, GetFrameRequest{}, timeout)
	if err != nil {
		return Frame{}, fmt.Errorf("session %s frame: %w", s.ID, err)
	}
	frame, ok := reply.(Frame)
	if !ok {
		return Frame{}, fmt.Errorf("session %s frame: unexpected reply type %T", s.ID, reply)
	}
	return frame, nil
}

// Done is closed when the game actor stops, normally or on a fatal error.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err returns the fatal error that ended the session, if any. Valid after Done.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Stop shuts down every actor of the session.
func (s *Session) Stop() {
	s.engine.Shutdown(utils.ShutdownTimeout)
	s.finish(nil)
	slog.Info("session stopped", "session", s.ID)
}

func (s *Session) Config() utils.Config           { return s.cfg }
func (s *Session) Engine() *bollywood.Engine      { return s.engine }
func (s *Session) GamePID() *bollywood.PID        { return s.gamePID }
func (s *Session) BroadcasterPID() *bollywood.PID { return s.broadcasterPID }

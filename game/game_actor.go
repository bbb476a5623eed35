// File: game/game_actor.go
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/utils"
)

// GameActorOptions wires a GameActor to its collaborators.
type GameActorOptions struct {
	Session        string
	Presenters     []Presenter
	BroadcasterPID *bollywood.PID
	// OnEnd is called once when the actor stops, with the fatal error if any.
	OnEnd func(err error)
	// DisableTicker leaves ticking to whoever sends GameTick messages.
	DisableTicker bool
}

// GameActor owns the session State. Ticks and key presses both arrive through
// its mailbox, so State has exactly one mutator and needs no lock.
type GameActor struct {
	cfg          utils.Config
	opts         GameActorOptions
	state        *State
	pending      []Event // Paddle moves since the last tick
	last         Frame
	engine       *bollywood.Engine
	selfPID      *bollywood.PID
	ticker       *time.Ticker
	stopTickerCh chan struct{}
	fatal        error
	ended        bool
	log          *slog.Logger
}

// NewGameActorProducer creates a producer for the GameActor.
func NewGameActorProducer(engine *bollywood.Engine, cfg utils.Config, opts GameActorOptions) bollywood.Producer {
	return func() bollywood.Actor {
		state := NewState(cfg)
		return &GameActor{
			cfg:          cfg,
			opts:         opts,
			state:        state,
			last:         NewFrame(opts.Session, state, nil),
			engine:       engine,
			stopTickerCh: make(chan struct{}),
			log:          slog.Default().With("actor", "game", "session", opts.Session),
		}
	}
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic recovered in Receive", "pid", a.selfPID.String(), "panic", r, "stack", string(debug.Stack()))
			if ctx.RequestID() != "" {
				ctx.Reply(fmt.Errorf("game actor panicked: %v", r))
			}
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.log = a.log.With("pid", a.selfPID.String())
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.log.Info("game actor started", "tickPeriod", a.cfg.TickPeriod)
		a.present(a.last)
		if !a.opts.DisableTicker {
			a.ticker = time.NewTicker(a.cfg.TickPeriod)
			go a.runTickerLoop()
		}

	case *GameTick:
		a.handleTick(ctx)

	case GameTick:
		a.handleTick(ctx)

	case KeyPressed:
		a.handleKeyPressed(m.Action)

	case GetFrameRequest:
		ctx.Reply(a.last)

	case bollywood.Stopping:
		a.log.Info("game actor stopping", "tick", a.state.Tick, "score", a.state.Score.String())
		a.stopTicker()

	case bollywood.Stopped:
		a.end()

	default:
		a.log.Warn("unknown message", "type", fmt.Sprintf("%T", m))
		if ctx.RequestID() != "" {
			ctx.Reply(fmt.Errorf("unknown message type: %T", m))
		}
	}
}

func (a *GameActor) handleTick(ctx bollywood.Context) {
	if a.fatal != nil {
		return
	}

	events, err := Step(a.state, a.cfg)
	if err != nil {
		var invalid *InvalidStateError
		if errors.As(err, &invalid) {
			a.log.Error("simulation state corrupted, ending session", "error", err)
		} else {
			a.log.Error("simulation step failed, ending session", "error", err)
		}
		a.fatal = err
		a.stopTicker()
		a.engine.Stop(ctx.Self())
		return
	}

	if len(a.pending) > 0 {
		events = append(a.pending, events...)
		a.pending = nil
	}
	for _, e := range events {
		if e.Kind == EventPointScored {
			a.log.Info("point scored", "scorer", e.Side, "score", a.state.Score.String())
		}
	}

	a.last = NewFrame(a.opts.Session, a.state, events)
	a.present(a.last)
}

func (a *GameActor) handleKeyPressed(action Action) {
	side, direction, err := action.Intent()
	if err != nil {
		a.log.Warn("ignoring key press", "error", err)
		return
	}
	moved, err := MovePaddle(a.state, a.cfg, side, direction)
	if err != nil {
		a.log.Warn("ignoring key press", "error", err)
		return
	}
	if moved {
		paddle, _ := a.state.Paddle(side)
		a.pending = append(a.pending, PaddleMoved(side, paddle.Y))
	}
}

// present hands the frame to local presenters first, then to spectators.
func (a *GameActor) present(frame Frame) {
	for _, p := range a.opts.Presenters {
		p.Present(frame)
	}
	if a.opts.BroadcasterPID != nil {
		a.engine.Send(a.opts.BroadcasterPID, BroadcastFrame{Frame: frame}, a.selfPID)
	}
}

// runTickerLoop sends GameTick messages to the actor's own mailbox at regular intervals.
func (a *GameActor) runTickerLoop() {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic recovered in ticker loop", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	a.log.Debug("ticker loop started")
	defer a.log.Debug("ticker loop stopped")

	tickMsg := &GameTick{}
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-a.ticker.C:
			select {
			case <-a.stopTickerCh:
				return
			default:
				a.engine.Send(a.selfPID, tickMsg, nil)
			}
		}
	}
}

func (a *GameActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}

func (a *GameActor) end() {
	if a.ended {
		return
	}
	a.ended = true
	a.stopTicker()
	a.log.Info("game actor stopped", "tick", a.state.Tick, "score", a.state.Score.String())
	if a.opts.OnEnd != nil {
		a.opts.OnEnd(a.fatal)
	}
}

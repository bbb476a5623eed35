package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan *messageEnvelope
	props    *Props
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// sendMessage enqueues without blocking; a full mailbox drops the message.
func (p *process) sendMessage(message interface{}, sender *PID, requestID string) bool {
	if p.stopped.Load() && !isSystemMessage(message) {
		return false
	}

	envelope := &messageEnvelope{
		Sender:    sender,
		Message:   message,
		RequestID: requestID,
	}

	select {
	case p.mailbox <- envelope:
		return true
	default:
		p.engine.log.Warn("mailbox full, dropping message", "pid", p.pid.ID, "type", fmt.Sprintf("%T", message))
		return false
	}
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil, "")
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			p.engine.log.Error("actor panicked", "pid", p.pid.ID, "panic", r, "stack", string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			// Stop arrived directly; run Stopping if the mailbox did not deliver it first.
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(Stopping{}, nil, "")
			}
			return

		case envelope := <-p.mailbox:
			switch msg := envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(msg, envelope.Sender, "")
				}
				p.signalStop()
			case Stopped:
				// Delivered only by run's deferred cleanup.
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(envelope.Message, envelope.Sender, envelope.RequestID)
			}
		}
	}
}

// invokeReceive calls the actor's Receive method, recovering from panics in it.
func (p *process) invokeReceive(msg interface{}, sender *PID, requestID string) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    sender,
		message:   msg,
		requestID: requestID,
	}

	defer func() {
		if r := recover(); r != nil {
			p.engine.log.Error("actor panicked during Receive",
				"pid", p.pid.ID, "type", fmt.Sprintf("%T", msg), "panic", r, "stack", string(debug.Stack()))
			if requestID != "" {
				ctx.Reply(fmt.Errorf("actor %s panicked: %v", p.pid.ID, r))
			}
		}
	}()
	p.actor.Receive(ctx)
}

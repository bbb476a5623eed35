package bollywood

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned by Ask when the target is not running.
	ErrActorNotFound = errors.New("bollywood: actor not found")
	// ErrEngineStopping is returned by Ask during shutdown.
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	askCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex // Protects the actors map
	stopping   atomic.Bool

	pendingMu sync.Mutex
	pending   map[string]chan interface{} // Ask reply channels keyed by request ID

	log *slog.Logger
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors:  make(map[string]*process),
		pending: make(map[string]chan interface{}),
		log:     slog.Default().With("component", "bollywood"),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil if the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.log.Warn("engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)

	return pid
}

// Send delivers a message to the actor identified by the PID.
// Messages to unknown actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	e.dispatch(pid, message, sender, "")
}

func (e *Engine) dispatch(pid *PID, message interface{}, sender *PID, requestID string) bool {
	if pid == nil {
		return false
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return false
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return false
	}
	return proc.sendMessage(message, sender, requestID)
}

// Ask sends a message and waits for the receiver to call Context.Reply.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}

	requestID := fmt.Sprintf("ask-%d", atomic.AddUint64(&e.askCounter, 1))
	replyCh := make(chan interface{}, 1)

	e.pendingMu.Lock()
	e.pending[requestID] = replyCh
	e.pendingMu.Unlock()
	defer func() {
		e.pendingMu.Lock()
		delete(e.pending, requestID)
		e.pendingMu.Unlock()
	}()

	if !e.dispatch(pid, message, nil, requestID) {
		return nil, fmt.Errorf("ask %s: %w", pid, ErrActorNotFound)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		if err, ok := reply.(error); ok {
			return nil, err
		}
		return reply, nil
	case <-timer.C:
		return nil, fmt.Errorf("ask %s (%T): %w", pid, message, ErrTimeout)
	}
}

func (e *Engine) deliverReply(requestID string, response interface{}) {
	e.pendingMu.Lock()
	replyCh, ok := e.pending[requestID]
	e.pendingMu.Unlock()
	if !ok {
		return // Asker already gave up
	}
	select {
	case replyCh <- response:
	default:
	}
}

// Stop requests an actor to stop processing messages and shut down.
// It sends the Stopping message and also directly signals the actor's stop channel.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if ok {
		e.Send(pid, Stopping{}, nil)
		proc.signalStop()
	}
}

// Running reports whether the actor is still registered with the engine.
func (e *Engine) Running(pid *PID) bool {
	if pid == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.actors[pid.ID]
	return ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits for them to terminate gracefully.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		e.log.Warn("engine already shutting down")
		return
	}

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	e.log.Info("engine shutdown initiated", "actors", len(pidsToStop))
	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			e.log.Info("engine shutdown complete")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	remaining := make([]string, 0, len(e.actors))
	for id := range e.actors {
		remaining = append(remaining, id)
	}
	e.actors = make(map[string]*process)
	e.mu.Unlock()
	e.log.Warn("engine shutdown timeout", "remaining", remaining)
}

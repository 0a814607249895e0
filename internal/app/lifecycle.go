package app

import (
	"context"
	"sync"
	"time"

	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/ports"
)

// ShutdownTimeout is the maximum time to wait for watch mode workers to stop.
const ShutdownTimeout = 30 * time.Second

// State represents the lifecycle state of watch mode.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateWatching
	StateStopping
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateStarting:
		return "Starting"
	case StateWatching:
		return "Watching"
	case StateStopping:
		return "Stopping"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Lifecycle manages the state machine of watch mode and tracks its workers
// (the re-run loop and the metrics server).
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	cancel       context.CancelFunc
	done         chan struct{}
	finished     bool
	wg           sync.WaitGroup
	logger       ports.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// NewLifecycle creates a new lifecycle manager.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateIdle,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to transition to a new state.
// Starting while active returns domain.ErrAlreadyWatching; any other
// transition that is not allowed returns domain.ErrNotWatching.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	if err := checkTransition(oldState, newState); err != nil {
		l.mu.Unlock()
		return err
	}

	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Info("watch state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return nil
}

func checkTransition(from, to State) error {
	switch from {
	case StateIdle, StateFailed:
		if to == StateStarting {
			return nil
		}
		return domain.ErrNotWatching
	case StateStarting:
		if to == StateWatching || to == StateStopping || to == StateFailed {
			return nil
		}
	case StateWatching:
		if to == StateStopping || to == StateFailed {
			return nil
		}
	case StateStopping:
		if to == StateIdle || to == StateFailed {
			return nil
		}
	}
	if to == StateStarting {
		return domain.ErrAlreadyWatching
	}
	return domain.ErrNotWatching
}

// CanStart returns true if watch mode can be started.
func (l *Lifecycle) CanStart() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateIdle || l.state == StateFailed
}

// CanStop returns true if watch mode can be stopped.
func (l *Lifecycle) CanStop() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateWatching || l.state == StateStarting
}

// SetCancel stores the cancel function for graceful shutdown and opens a
// new Done channel.
func (l *Lifecycle) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
	l.done = make(chan struct{})
	l.finished = false
}

// Done returns a channel closed by Finish. It is nil before SetCancel.
func (l *Lifecycle) Done() <-chan struct{} {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.done
}

// Finish closes the Done channel. Calls after the first are no-ops.
func (l *Lifecycle) Finish() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil && !l.finished {
		close(l.done)
		l.finished = true
	}
}

// Cancel triggers graceful shutdown.
func (l *Lifecycle) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Go runs fn as a tracked worker.
func (l *Lifecycle) Go(fn func()) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
}

// WaitWithTimeout waits for all workers to finish with a timeout.
// Returns domain.ErrShutdownTimeout if the timeout expires.
func (l *Lifecycle) WaitWithTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		l.logger.Warn("shutdown timeout, forcing exit",
			ports.Duration("timeout", timeout),
		)
		return domain.ErrShutdownTimeout
	}
}

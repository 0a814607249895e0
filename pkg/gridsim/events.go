package gridsim

import (
	"github.com/bft-labs/gridsim/internal/app"
)

// State is the lifecycle state of watch mode.
type State = app.State

// Watch mode states.
const (
	StateIdle     = app.StateIdle
	StateStarting = app.StateStarting
	StateWatching = app.StateWatching
	StateStopping = app.StateStopping
	StateFailed   = app.StateFailed
)

// StateChangeEvent is emitted on every watch mode state transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// RunEvent is emitted after every pipeline run.
type RunEvent struct {
	Report Report
	// Err is nil when the run succeeded.
	Err error
}

// EventHandler receives gridsim events.
// Methods are called synchronously and should return quickly.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnRunComplete(event RunEvent)
}

// BaseEventHandler implements EventHandler with no-op methods. Embed it to
// handle only some events.
type BaseEventHandler struct{}

// OnStateChange does nothing.
func (BaseEventHandler) OnStateChange(StateChangeEvent) {}

// OnRunComplete does nothing.
func (BaseEventHandler) OnRunComplete(RunEvent) {}

// eventEmitter adapts EventHandler to app.EventEmitter.
type eventEmitter struct {
	handler EventHandler
}

func (e *eventEmitter) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: previous,
		Current:  current,
		Reason:   reason,
	})
}

func (e *eventEmitter) onRunComplete(report Report, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnRunComplete(RunEvent{Report: report, Err: err})
}

package rtos

import (
	"context"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// SourceID identifies a hardware event source bound to a dispatcher.
type SourceID string

// Event is one activation delivered by a source.  Byte-oriented sources
// attach the received payload in Data; pure trigger sources (timers)
// leave it nil.
type Event struct {
	Source SourceID
	Data   []byte
}

// Handler is the entry point of a bound task.  A handler runs to
// completion: it must not block on anything other than bounded
// peripheral transactions, and it must not retain the ExecContext
// after returning.
type Handler interface {
	Handle(ExecContext) error
}

// HandleFunc is the func form of Handler.
type HandleFunc func(ExecContext) error

// Handle implements Handler.
func (f HandleFunc) Handle(ec ExecContext) error {
	return f(ec)
}

// ExecContext is the execution context of a single task activation.
type ExecContext interface {
	// Context retrieves the context.Context of the dispatcher run.
	Context() context.Context
	// Event gets the event that activated this task.
	Event() Event
	// Hold runs fn while holding res at its ceiling priority level.
	// It never waits: the ceiling discipline guarantees the resource
	// is free whenever the task is allowed to run.  Holds nest in
	// strict stack order because they are scoped to the closure.
	Hold(res *Resource, fn func() error) error
	// Yield dispatches pending activations of strictly higher
	// priority on the current call stack, emulating hardware
	// preemption at an explicit point.
	Yield()
	// Level returns the current effective priority level, including
	// any ceiling raise from enclosing Holds.
	Level() int
}

// PriorityLevels is the total number of priority levels.  Lower value
// means higher priority.
const PriorityLevels int = 16

// Predefined priority levels
const (
	PrLvTop    int = 0
	PrLvHigh   int = 4
	PrLvNormal int = 8
	PrLvLow    int = 12
	PrLvIdle   int = PriorityLevels - 1
)

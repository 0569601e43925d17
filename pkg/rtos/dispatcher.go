package rtos

import (
	"context"
	"errors"
	"sync"

	"github.com/golang/glog"
)

// Binding and posting errors.
var (
	// ErrSealed indicates Bind after the dispatcher started running.
	ErrSealed = errors.New("dispatcher is running, bindings are sealed")
	// ErrBadLevel indicates a priority level out of range.
	ErrBadLevel = errors.New("priority level out of range")
	// ErrLevelTaken indicates the priority level is already bound.
	// Levels are a total order: no two tasks may share one.
	ErrLevelTaken = errors.New("priority level already bound")
	// ErrSourceBound indicates the source already has a task.
	ErrSourceBound = errors.New("source already bound")
	// ErrUnboundSource indicates a post to a source with no task.
	ErrUnboundSource = errors.New("source not bound")
)

type binding struct {
	source  SourceID
	level   int
	handler Handler
	shared  map[*Resource]bool
	queue   []Event
}

// Dispatcher is a static-priority, event-driven task executor.
//
// There is exactly one logical executor: the goroutine running Run.
// Producer goroutines play the role of interrupt sources and hand
// events over with Post.  Each bound task runs to completion at its
// static priority; nesting happens only at explicit Yield points,
// which dispatch pending strictly-higher-priority activations on the
// call stack, so preempted work resumes exactly where it left off.
//
// Events are FIFO within a source and strictly priority-ordered
// across sources.  When nothing is pending the executor blocks until
// the next post, the analog of a low-power wait; it is always
// interruptible through the run context.
type Dispatcher struct {
	mu       sync.Mutex
	bindings map[SourceID]*binding
	byLevel  [PriorityLevels]*binding
	wakeCh   chan struct{}
	sealed   bool

	// execLevel is the current effective priority level, including
	// ceiling raises.  PriorityLevels when idle.  Touched only on
	// the executor goroutine.
	execLevel int
}

// NewDispatcher creates a Dispatcher with no bindings.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		bindings:  make(map[SourceID]*binding),
		wakeCh:    make(chan struct{}, 1),
		execLevel: PriorityLevels,
	}
}

// Bind binds a task to an event source at a static priority level and
// declares the closed set of shared resources the task may hold.  The
// ceiling of each declared resource is raised to the task's level if
// higher.  Binding fails once the dispatcher is running.
func (d *Dispatcher) Bind(src SourceID, level int, h Handler, shared ...*Resource) error {
	if h == nil {
		panic("handler is nil")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sealed {
		return ErrSealed
	}
	if level < 0 || level >= PriorityLevels {
		return ErrBadLevel
	}
	if d.byLevel[level] != nil {
		return ErrLevelTaken
	}
	if _, ok := d.bindings[src]; ok {
		return ErrSourceBound
	}
	b := &binding{
		source:  src,
		level:   level,
		handler: h,
		shared:  make(map[*Resource]bool, len(shared)),
	}
	for _, res := range shared {
		b.shared[res] = true
		if level < res.ceiling {
			res.ceiling = level
		}
	}
	d.bindings[src] = b
	d.byLevel[level] = b
	return nil
}

// Post enqueues one activation for the task bound to the event's
// source and wakes the executor if it is idle.  Post is safe to call
// from any goroutine and never blocks.
func (d *Dispatcher) Post(ev Event) error {
	d.mu.Lock()
	b := d.bindings[ev.Source]
	if b == nil {
		d.mu.Unlock()
		return ErrUnboundSource
	}
	b.queue = append(b.queue, ev)
	d.mu.Unlock()
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
	return nil
}

// Pending reports the number of queued activations for a source.
func (d *Dispatcher) Pending(src SourceID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if b := d.bindings[src]; b != nil {
		return len(b.queue)
	}
	return 0
}

// Run implements Runnable.  It seals the bindings and executes posted
// activations until the context is canceled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.mu.Lock()
	d.sealed = true
	d.mu.Unlock()
	for {
		d.dispatch(ctx, PriorityLevels)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.wakeCh:
		}
	}
}

// dispatch drains pending activations with level strictly above limit
// (numerically below it), highest priority first.  Task errors are
// logged and never stop the executor.
func (d *Dispatcher) dispatch(ctx context.Context, limit int) {
	for {
		b, ev, ok := d.take(limit)
		if !ok {
			return
		}
		prev := d.execLevel
		d.execLevel = b.level
		act := &activation{d: d, ctx: ctx, b: b, ev: ev}
		if err := b.handler.Handle(act); err != nil {
			glog.Errorf("task %s error: %v", b.source, err)
		}
		d.execLevel = prev
	}
}

// take pops the oldest event of the highest-priority source with a
// non-empty queue, considering only levels above limit.
func (d *Dispatcher) take(limit int) (*binding, Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if limit > PriorityLevels {
		limit = PriorityLevels
	}
	for lv := 0; lv < limit; lv++ {
		b := d.byLevel[lv]
		if b == nil || len(b.queue) == 0 {
			continue
		}
		ev := b.queue[0]
		b.queue = b.queue[1:]
		return b, ev, true
	}
	return nil, Event{}, false
}

// activation implements ExecContext for one task run.
type activation struct {
	d   *Dispatcher
	ctx context.Context
	b   *binding
	ev  Event
}

// Context implements ExecContext.
func (a *activation) Context() context.Context {
	return a.ctx
}

// Event implements ExecContext.
func (a *activation) Event() Event {
	return a.ev
}

// Level implements ExecContext.
func (a *activation) Level() int {
	return a.d.execLevel
}

// Yield implements ExecContext.
func (a *activation) Yield() {
	a.d.dispatch(a.ctx, a.d.execLevel)
}

// Hold implements ExecContext.  The effective level is raised to the
// resource ceiling for the duration of fn, so no other task sharing
// the resource can be dispatched mid-hold, even at a Yield point.
// There is no wait path: a held resource is a defect report, not a
// blocking condition.
func (a *activation) Hold(res *Resource, fn func() error) error {
	if !a.b.shared[res] {
		return &UndeclaredError{Source: a.b.source, Resource: res.name}
	}
	if res.holder != nil {
		return &HeldError{Resource: res.name, Holder: res.holder.source}
	}
	res.holder = a.b
	prev := a.d.execLevel
	if res.ceiling < prev {
		a.d.execLevel = res.ceiling
	}
	err := fn()
	a.d.execLevel = prev
	res.holder = nil
	return err
}

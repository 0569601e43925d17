package rtos

import (
	"fmt"
)

// Resource is a shared peripheral or buffer guarded by a
// priority-ceiling lock.  The ceiling is the highest priority (lowest
// level) of any task declaring the resource at Bind time; the set of
// accessors is closed once the dispatcher runs.
type Resource struct {
	name    string
	ceiling int
	holder  *binding
}

// NewResource creates a resource.  Its ceiling is established as tasks
// declaring it are bound.
func NewResource(name string) *Resource {
	return &Resource{name: name, ceiling: PriorityLevels}
}

// Name returns the resource identity.
func (r *Resource) Name() string {
	return r.name
}

// Ceiling returns the ceiling priority level.  PriorityLevels means no
// bound task has declared the resource yet.
func (r *Resource) Ceiling() int {
	return r.ceiling
}

// String implements fmt.Stringer.
func (r *Resource) String() string {
	return fmt.Sprintf("%s(ceiling=%d)", r.name, r.ceiling)
}

// UndeclaredError reports a Hold on a resource outside the task's
// declared shared set.  This is a design defect in the caller, not a
// runtime condition to recover from.
type UndeclaredError struct {
	Source   SourceID
	Resource string
}

// Error implements error.
func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("task %s: resource %s not in declared shared set", e.Source, e.Resource)
}

// HeldError reports a Hold on a resource that is already held.  Under
// the ceiling discipline this cannot happen; it is reported rather than
// waited on so a violation surfaces as a defect instead of a deadlock.
type HeldError struct {
	Resource string
	Holder   SourceID
}

// Error implements error.
func (e *HeldError) Error() string {
	return fmt.Sprintf("resource %s already held by task %s", e.Resource, e.Holder)
}

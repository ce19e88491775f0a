// Package render defines the boundary between animated components and the
// pipeline that draws them: the operations components emit, and the pollable
// contract an external scheduler drives them with.
package render

// State is the outcome of a single poll.
type State int

const (
	// Unmodified means nothing changed since the last poll.
	Unmodified State = iota
	// Modified means the component mutated its state and needs a redraw.
	Modified
	// Done is the terminal transition; it is emitted exactly once, after
	// which every poll returns Unmodified.
	Done
)

func (s State) String() string {
	switch s {
	case Modified:
		return "modified"
	case Done:
		return "done"
	default:
		return "unmodified"
	}
}

// Pollable advances a component's time-derived state. Poll is the only
// writer of that state; it is called by a scheduler at its own cadence,
// independent of render cadence.
type Pollable interface {
	Poll() State
}

// StartPolicy tells the scheduler when to begin polling a component.
type StartPolicy int

const (
	// OnDemand components are polled only once they become visible.
	OnDemand StartPolicy = iota
	// Automatic components are polled from session start.
	Automatic
)

// Async is a component driven through the pollable contract.
type Async interface {
	// Pollable returns the scheduler handle for this component. The handle
	// shares state with the component's renderer.
	Pollable() Pollable
	StartPolicy() StartPolicy
}

// OperationsRenderer produces the current frame's render operations.
type OperationsRenderer interface {
	RenderOperations() []Operation
}

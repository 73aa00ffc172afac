// Package jug defines states, actions, options and sentinel errors
// for the two-jug solver.
package jug

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for solver execution.
var (
	// ErrInvalidCapacity is returned when either jug capacity is not strictly positive.
	ErrInvalidCapacity = errors.New("jug: capacities must be positive")

	// ErrNegativeTarget is returned when the target amount is negative.
	ErrNegativeTarget = errors.New("jug: target must be non-negative")

	// ErrNoSolution is returned when no sequence of actions measures the target.
	ErrNoSolution = errors.New("jug: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("jug: invalid option supplied")

	// ErrStateLimit is returned when the search expands more states than allowed.
	ErrStateLimit = errors.New("jug: state limit exceeded")
)

// SolvedMarker is appended to the explanation of the final step of a Solution.
const SolvedMarker = " → SOLVED"

// State holds the current water level of both jugs.
type State struct {
	X, Y int
}

// String renders the state as "(x, y)".
func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

// Action identifies the move that produced a state.
type Action int

const (
	// Start marks the initial empty state.
	Start Action = iota
	FillX
	FillY
	EmptyX
	EmptyY
	// PourXY transfers from jug X into jug Y until X is empty or Y is full.
	PourXY
	// PourYX transfers from jug Y into jug X until Y is empty or X is full.
	PourYX
)

var actionNames = [...]string{
	Start:  "Start",
	FillX:  "Fill bucket X",
	FillY:  "Fill bucket Y",
	EmptyX: "Empty bucket X",
	EmptyY: "Empty bucket Y",
	PourXY: "Transfer from bucket X to bucket Y",
	PourYX: "Transfer from bucket Y to bucket X",
}

// String returns the human-readable description of the action.
func (a Action) String() string {
	if a < Start || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns the six moves in successor-generation order.
func Actions() []Action {
	return []Action{FillX, FillY, EmptyX, EmptyY, PourXY, PourYX}
}

// Step is one record of a Solution: the state reached and how it was reached.
type Step struct {
	State
	Action      Action
	Explanation string
}

// Solution is the ordered list of steps from (0, 0) to a state holding Target.
// Steps[0] is always the Start step; the last step's Explanation ends with SolvedMarker.
type Solution struct {
	Capacity State
	Target   int
	Steps    []Step
}

// Len returns the number of actions taken, excluding the Start step.
func (s *Solution) Len() int {
	if s == nil || len(s.Steps) == 0 {
		return 0
	}
	return len(s.Steps) - 1
}

// Last returns the final step of the solution, or the zero Step when
// the solution is nil or has no steps.
func (s *Solution) Last() Step {
	if s == nil || len(s.Steps) == 0 {
		return Step{}
	}
	return s.Steps[len(s.Steps)-1]
}

// States returns the sequence of states visited by the solution.
func (s *Solution) States() []State {
	if s == nil {
		return nil
	}
	out := make([]State, len(s.Steps))
	for i, st := range s.Steps {
		out[i] = st.State
	}
	return out
}

// Option configures solver behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// when Solve or Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a single search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every state taken off the queue, with its
	// distance in actions from (0, 0). A non-nil error aborts the search.
	OnVisit func(s State, depth int) error

	// MaxStates, if > 0, bounds the number of expanded states.
	MaxStates int

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// visit hook and no state limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(State, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every dequeued state.
func WithOnVisit(fn func(s State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStates stops the search after n expanded states.
//
//	n > 0: limit to n states
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

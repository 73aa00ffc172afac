package jug

import (
	"fmt"
)

// node is one reached state in the search arena.
type node struct {
	state  State
	action Action
	parent int // arena index, -1 for the start state
	depth  int
}

// walker encapsulates mutable search state for one call.
type walker struct {
	capacity State
	target   int
	opts     Options
	arena    []node
	head     int // arena[head:] is the FIFO queue
	seen     map[State]struct{}
	expanded int
}

// Solve returns the shortest sequence of actions that leaves target units in
// either jug of capacities capX and capY, starting from both jugs empty.
// Returns ErrInvalidCapacity or ErrNegativeTarget for invalid input,
// ErrNoSolution when the gcd rule rules the target out, ErrOptionViolation
// for bad options, ErrStateLimit, context errors or a wrapped OnVisit error.
func Solve(capX, capY, target int, opts ...Option) (*Solution, error) {
	if err := validate(capX, capY, target); err != nil {
		return nil, err
	}
	if !Feasible(capX, capY, target) {
		return nil, fmt.Errorf("%w: target %d with capacities %d and %d", ErrNoSolution, target, capX, capY)
	}
	return search(capX, capY, target, opts)
}

// Search runs the breadth-first search without the feasibility pre-check.
// On infeasible input it exhausts the finite state space and returns ErrNoSolution.
func Search(capX, capY, target int, opts ...Option) (*Solution, error) {
	if err := validate(capX, capY, target); err != nil {
		return nil, err
	}
	return search(capX, capY, target, opts)
}

func validate(capX, capY, target int) error {
	if capX <= 0 || capY <= 0 {
		return fmt.Errorf("%w: got %d and %d", ErrInvalidCapacity, capX, capY)
	}
	if target < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeTarget, target)
	}
	return nil
}

func search(capX, capY, target int, opts []Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// preallocate for small spaces; large ones grow on demand
	hint := 1 << 12
	if capX < hint && capY < hint {
		hint = min((capX+1)*(capY+1), hint)
	}
	w := &walker{
		capacity: State{X: capX, Y: capY},
		target:   target,
		opts:     o,
		arena:    make([]node, 0, hint),
		seen:     make(map[State]struct{}, hint),
	}
	w.enqueue(State{}, Start, -1, 0)

	return w.loop()
}

// enqueue admits s to the arena unless it was reached before.
func (w *walker) enqueue(s State, a Action, parent, depth int) {
	if _, ok := w.seen[s]; ok {
		return
	}
	w.seen[s] = struct{}{}
	w.arena = append(w.arena, node{state: s, action: a, parent: parent, depth: depth})
}

// loop processes the queue until a goal is found, the space is exhausted,
// or the search is aborted.
func (w *walker) loop() (*Solution, error) {
	for w.head < len(w.arena) {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		idx := w.dequeue()
		n := w.arena[idx]
		if err := w.opts.OnVisit(n.state, n.depth); err != nil {
			return nil, fmt.Errorf("jug: OnVisit error at %v: %w", n.state, err)
		}
		if n.state.X == w.target || n.state.Y == w.target {
			return w.solution(idx), nil
		}

		if w.opts.MaxStates > 0 && w.expanded >= w.opts.MaxStates {
			return nil, fmt.Errorf("%w: expanded %d states", ErrStateLimit, w.expanded)
		}
		w.expanded++
		for _, next := range Successors(w.capacity, n.state) {
			w.enqueue(next.State, next.Action, idx, n.depth+1)
		}
	}
	return nil, fmt.Errorf("%w: explored %d states", ErrNoSolution, len(w.arena))
}

func (w *walker) dequeue() int {
	idx := w.head
	w.head++
	return idx
}

// solution rebuilds the path ending at arena index goal.
func (w *walker) solution(goal int) *Solution {
	steps := make([]Step, w.arena[goal].depth+1)
	for i, cur := len(steps)-1, goal; cur >= 0; i, cur = i-1, w.arena[cur].parent {
		n := w.arena[cur]
		steps[i] = Step{State: n.state, Action: n.action, Explanation: n.action.String()}
	}
	steps[len(steps)-1].Explanation += SolvedMarker

	return &Solution{Capacity: w.capacity, Target: w.target, Steps: steps}
}

// Successors returns the six states reachable from s in one action,
// in generation order: fill X, fill Y, empty X, empty Y, pour X→Y, pour Y→X.
func Successors(capacity, s State) [6]Step {
	xy := min(s.X, capacity.Y-s.Y)
	yx := min(s.Y, capacity.X-s.X)
	moves := [6]struct {
		a    Action
		x, y int
	}{
		{FillX, capacity.X, s.Y},
		{FillY, s.X, capacity.Y},
		{EmptyX, 0, s.Y},
		{EmptyY, s.X, 0},
		{PourXY, s.X - xy, s.Y + xy},
		{PourYX, s.X + yx, s.Y - yx},
	}

	var out [6]Step
	for i, m := range moves {
		out[i] = Step{State: State{X: m.x, Y: m.y}, Action: m.a, Explanation: m.a.String()}
	}
	return out
}

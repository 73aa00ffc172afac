// Package jug solves the two-jug measuring puzzle: given capacities X and Y
// and a target Z, find the fewest fill/empty/transfer actions that leave
// exactly Z units in either jug, starting from both jugs empty.
//
// What
//
//   - Feasible decides solvability in O(log(min(X, Y))) using the gcd rule:
//     Z is measurable iff Z ≤ max(X, Y) and gcd(X, Y) divides Z.
//   - Solve runs the feasibility check, then a breadth-first search over
//     (x, y) states, and returns a Solution whose Steps go from the "Start"
//     step at (0, 0) to the first state holding Z in either jug.
//   - Search runs the breadth-first search alone; it terminates with
//     ErrNoSolution on infeasible input after exhausting the state space.
//
// Actions
//
// Every expanded state yields exactly six successors, generated and enqueued
// in this order:
//
//	1. Fill bucket X                      (X, y)
//	2. Fill bucket Y                      (x, Y)
//	3. Empty bucket X                     (0, y)
//	4. Empty bucket Y                     (x, 0)
//	5. Transfer from bucket X to bucket Y  min(x, Y−y) units
//	6. Transfer from bucket Y to bucket X  min(y, X−x) units
//
// Determinism
//
//	The queue is strictly FIFO and successors are enqueued in the fixed order
//	above, so among equally short solutions the first one reached under that
//	order is returned. Repeated calls with the same input return identical
//	Solutions.
//
// Memory layout
//
//	Each reached state is stored once in an arena together with the action that
//	produced it and the arena index of its parent. The path is rebuilt by
//	walking parents backward from the goal, so no per-state path copies exist.
//	A state is admitted to the arena the first time it is generated; since the
//	queue is FIFO this is also the copy that would be dequeued first, so the
//	result is the same as filtering duplicates at dequeue time.
//
// Complexity (S = (X+1)·(Y+1) states)
//
//   - Time:   O(S)   (each state expanded at most once, six successors each)
//   - Memory: O(S)   (arena, queue and visited set)
//
// Usage
//
//	sol, err := jug.Solve(2, 10, 4)
//	if errors.Is(err, jug.ErrNoSolution) {
//		// report "no solution"
//	}
//	for _, st := range sol.Steps {
//		fmt.Println(st.X, st.Y, st.Explanation)
//	}
//
// Options
//
//   - WithContext(ctx):    cancel a long search between dequeues.
//   - WithOnVisit(fn):     hook called for each expanded state; an error aborts.
//   - WithMaxStates(n):    abort with ErrStateLimit after n expansions (0 = no limit).
//
// Errors
//
//   - ErrInvalidCapacity  if X ≤ 0 or Y ≤ 0.
//   - ErrNegativeTarget   if Z < 0.
//   - ErrNoSolution       if no sequence of actions measures Z.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative state limit).
//   - ErrStateLimit       if WithMaxStates was exceeded.
//   - Context errors and wrapped OnVisit errors.
package jug

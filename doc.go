// Package waterjug is a solver for the two-jug measuring puzzle.
//
// Given jugs of capacities X and Y and a target Z, it finds the fewest
// fill, empty and transfer actions that leave exactly Z units in either
// jug, starting with both jugs empty, or proves that no such sequence exists.
//
// Under the hood:
//
//	jug/              : feasibility (gcd rule) and breadth-first search over (x, y) states
//	internal/input    : coercion and validation of raw user values
//	internal/render   : text, markdown, JSON and YAML presentation of a solution
//	internal/server   : HTTP API with Prometheus metrics
//	internal/config   : YAML configuration
//	internal/logging  : slog setup
//	cmd/waterjug      : command-line interface (solve, check, serve, version)
//
// Quick example:
//
//	$ waterjug solve 3 5 4
//	Jugs X=3 Y=5, target 4: solved in 6 moves
//	  0. (0, 0)  Start
//	  1. (0, 5)  Fill bucket Y
//	  2. (3, 2)  Transfer from bucket Y to bucket X
//	  3. (0, 2)  Empty bucket X
//	  4. (2, 0)  Transfer from bucket Y to bucket X
//	  5. (2, 5)  Fill bucket Y
//	  6. (3, 4)  Transfer from bucket Y to bucket X → SOLVED
//
//	go get github.com/katalvlaran/waterjug
package waterjug

// Package input turns raw user values into a validated solver query.
// Any value that cannot be a puzzle input maps to ErrInvalidInput, which
// callers present the same way as a puzzle without a solution.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/waterjug/jug"
)

// ErrInvalidInput is returned for non-numeric, non-integral or out-of-range values.
var ErrInvalidInput = errors.New("input: invalid value")

// MaxValue bounds the magnitude of every parsed value.
const MaxValue = math.MaxInt32

// Query holds the two capacities and the target.
type Query struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Parse coerces three raw strings into a Query and validates it.
func Parse(rawX, rawY, rawZ string) (Query, error) {
	var q Query
	for _, f := range []struct {
		name string
		raw  string
		dst  *int
	}{
		{"x", rawX, &q.X},
		{"y", rawY, &q.Y},
		{"z", rawZ, &q.Z},
	} {
		v, err := parseInt(f.raw)
		if err != nil {
			return Query{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidInput, f.name, f.raw, err)
		}
		*f.dst = v
	}
	return q, q.Validate()
}

// parseInt accepts integers and integral decimals such as "4.0".
func parseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("empty")
	}
	if v, err := strconv.Atoi(s); err == nil {
		return checkMagnitude(v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.New("not an integer")
	}
	if math.Abs(f) > MaxValue {
		return 0, fmt.Errorf("magnitude exceeds %d", MaxValue)
	}
	return int(f), nil
}

func checkMagnitude(v int) (int, error) {
	if v > MaxValue || v < -MaxValue {
		return 0, fmt.Errorf("magnitude exceeds %d", MaxValue)
	}
	return v, nil
}

// Validate enforces X > 0, Y > 0 and Z >= 0.
func (q Query) Validate() error {
	if q.X <= 0 || q.Y <= 0 {
		return fmt.Errorf("%w: capacities must be positive, got x=%d y=%d", ErrInvalidInput, q.X, q.Y)
	}
	if q.Z < 0 {
		return fmt.Errorf("%w: target must be non-negative, got z=%d", ErrInvalidInput, q.Z)
	}
	return nil
}

// Solve validates q and runs the solver.
func (q Query) Solve(opts ...jug.Option) (*jug.Solution, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return jug.Solve(q.X, q.Y, q.Z, opts...)
}

// IsNoSolution reports whether err should be shown to a user as "no solution".
func IsNoSolution(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, jug.ErrNoSolution)
}

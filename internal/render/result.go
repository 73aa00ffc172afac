// Package render presents solver results as text, markdown, JSON or YAML.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/waterjug/internal/input"
	"github.com/katalvlaran/waterjug/jug"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects an output encoding.
type Format string

const (
	// Text prints one numbered line per step, optionally colored.
	Text Format = "text"
	// Markdown renders a step table through glamour.
	Markdown Format = "markdown"
	// JSON encodes a Result object.
	JSON Format = "json"
	// YAML encodes a Result document.
	YAML Format = "yaml"
)

// ParseFormat accepts text, markdown (md), json and yaml (yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Step is the wire form of a jug.Step.
type Step struct {
	X           int    `json:"x" yaml:"x"`
	Y           int    `json:"y" yaml:"y"`
	Action      string `json:"action" yaml:"action"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Result is the wire form of one solve.
type Result struct {
	Query    input.Query `json:"query" yaml:"query"`
	Solvable bool        `json:"solvable" yaml:"solvable"`
	Moves    int         `json:"moves,omitempty" yaml:"moves,omitempty"`
	Steps    []Step      `json:"steps,omitempty" yaml:"steps,omitempty"`
	Error    string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewResult builds a Result from the outcome of q.Solve. Invalid input and
// an impossible target both become an unsolvable result; err is kept in
// Error only for invalid input so users can fix it.
func NewResult(q input.Query, sol *jug.Solution, err error) Result {
	res := Result{Query: q}
	if err != nil || sol == nil {
		if errors.Is(err, input.ErrInvalidInput) {
			res.Error = err.Error()
		}
		return res
	}
	res.Solvable = true
	res.Moves = sol.Len()
	res.Steps = make([]Step, len(sol.Steps))
	for i, st := range sol.Steps {
		res.Steps[i] = Step{X: st.X, Y: st.Y, Action: actionKey(st.Action), Explanation: st.Explanation}
	}
	return res
}

// actionKey is the stable machine name of an action.
func actionKey(a jug.Action) string {
	switch a {
	case jug.Start:
		return "start"
	case jug.FillX:
		return "fill_x"
	case jug.FillY:
		return "fill_y"
	case jug.EmptyX:
		return "empty_x"
	case jug.EmptyY:
		return "empty_y"
	case jug.PourXY:
		return "transfer_xy"
	case jug.PourYX:
		return "transfer_yx"
	}
	return "unknown"
}

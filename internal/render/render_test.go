package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waterjug/internal/input"
	"github.com/katalvlaran/waterjug/internal/render"
)

func solved(t *testing.T) render.Result {
	t.Helper()
	q := input.Query{X: 2, Y: 10, Z: 4}
	sol, err := q.Solve()
	require.NoError(t, err)
	return render.NewResult(q, sol, nil)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{
		"": render.Text, "TEXT": render.Text, "md": render.Markdown,
		"markdown": render.Markdown, "json": render.JSON, "yml": render.YAML,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestNewResult(t *testing.T) {
	res := solved(t)
	assert.True(t, res.Solvable)
	assert.Equal(t, 4, res.Moves)
	want := []render.Step{
		{X: 0, Y: 0, Action: "start", Explanation: "Start"},
		{X: 2, Y: 0, Action: "fill_x", Explanation: "Fill bucket X"},
		{X: 0, Y: 2, Action: "transfer_xy", Explanation: "Transfer from bucket X to bucket Y"},
		{X: 2, Y: 2, Action: "fill_x", Explanation: "Fill bucket X"},
		{X: 0, Y: 4, Action: "transfer_xy", Explanation: "Transfer from bucket X to bucket Y → SOLVED"},
	}
	if diff := cmp.Diff(want, res.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestNewResult_Unsolvable(t *testing.T) {
	q := input.Query{X: 2, Y: 4, Z: 3}
	_, err := q.Solve()
	res := render.NewResult(q, nil, err)
	assert.False(t, res.Solvable)
	assert.Empty(t, res.Error, "true negatives carry no error text")

	bad := input.Query{X: 0, Y: 4, Z: 3}
	_, err = bad.Solve()
	res = render.NewResult(bad, nil, err)
	assert.False(t, res.Solvable)
	assert.Contains(t, res.Error, "capacities must be positive")
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Renderer{Format: render.Text}.Render(&buf, solved(t)))
	out := buf.String()
	assert.Contains(t, out, "Jugs X=2 Y=10, target 4: solved in 4 moves")
	assert.Contains(t, out, "Fill bucket X")
	assert.Contains(t, out, "(0, 4)")
	assert.Contains(t, out, "→ SOLVED")

	buf.Reset()
	require.NoError(t, render.Renderer{}.Render(&buf, render.Result{}))
	assert.Contains(t, buf.String(), render.NoSolution)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Renderer{Format: render.JSON}.Render(&buf, solved(t)))
	var got render.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, solved(t), got)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Renderer{Format: render.YAML}.Render(&buf, solved(t)))
	assert.Contains(t, buf.String(), "solvable: true")
	var got render.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, solved(t), got)
}

func TestMarkdownSource(t *testing.T) {
	src := render.MarkdownSource(solved(t))
	assert.Contains(t, src, "# Water jugs 2 / 10 → 4")
	assert.Contains(t, src, "| 1 | 2 | 0 | Fill bucket X |")
	assert.Contains(t, render.MarkdownSource(render.Result{}), "**No solution.**")
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Renderer{Format: render.Markdown}.Render(&buf, solved(t)))
	assert.Contains(t, buf.String(), "Fill bucket X")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := render.Renderer{Format: "xml"}.Render(&bytes.Buffer{}, render.Result{})
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

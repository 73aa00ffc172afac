package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// NoSolution is what users see for impossible or invalid queries.
const NoSolution = "No solution."

// Renderer writes a Result in one Format.
type Renderer struct {
	Format Format
	// GlamourStyle is passed to glamour for Markdown; empty means "notty".
	GlamourStyle string
}

// Render writes res to w.
func (r Renderer) Render(w io.Writer, res Result) error {
	switch r.Format {
	case "", Text:
		return writeText(w, res)
	case Markdown:
		return r.writeMarkdown(w, res)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.Format)
}

func writeText(w io.Writer, res Result) error {
	out := termenv.NewOutput(w)
	if !res.Solvable {
		line := NoSolution
		if res.Error != "" {
			line += " (" + res.Error + ")"
		}
		_, err := fmt.Fprintln(w, out.String(line).Foreground(out.Color("#fb7185")))
		return err
	}

	q := res.Query
	head := fmt.Sprintf("Jugs X=%d Y=%d, target %d: solved in %d moves", q.X, q.Y, q.Z, res.Moves)
	if _, err := fmt.Fprintln(w, out.String(head).Bold()); err != nil {
		return err
	}
	for i, st := range res.Steps {
		state := out.String(fmt.Sprintf("(%d, %d)", st.X, st.Y)).Foreground(out.Color("#818cf8"))
		if _, err := fmt.Fprintf(w, "%3d. %s  %s\n", i, state, st.Explanation); err != nil {
			return err
		}
	}
	return nil
}

// MarkdownSource returns the unrendered markdown document for res.
func MarkdownSource(res Result) string {
	var b strings.Builder
	q := res.Query
	fmt.Fprintf(&b, "# Water jugs %d / %d → %d\n\n", q.X, q.Y, q.Z)
	if !res.Solvable {
		b.WriteString("**" + NoSolution + "**\n")
		if res.Error != "" {
			fmt.Fprintf(&b, "\n`%s`\n", res.Error)
		}
		return b.String()
	}
	fmt.Fprintf(&b, "Solved in **%d** moves.\n\n", res.Moves)
	b.WriteString("| # | X | Y | Action |\n|---|---|---|--------|\n")
	for i, st := range res.Steps {
		fmt.Fprintf(&b, "| %d | %d | %d | %s |\n", i, st.X, st.Y, st.Explanation)
	}
	return b.String()
}

func (r Renderer) writeMarkdown(w io.Writer, res Result) error {
	style := r.GlamourStyle
	if style == "" {
		style = "notty"
	}
	tr, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("render: glamour: %w", err)
	}
	out, err := tr.Render(MarkdownSource(res))
	if err != nil {
		return fmt.Errorf("render: glamour: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

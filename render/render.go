// Package render draws an analyzed schematic for a terminal.
//
// Every cell keeps its character; only styling changes:
//
//   - target-part digits in green, idle digits muted;
//   - gears with exactly two parts in bold orange, with their eight
//     neighbors shaded;
//   - other gear cells and symbols in blue;
//   - empty cells in dark gray.
//
// With color disabled the output is exactly the input grid.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gearscan/classify"
	"github.com/katalvlaran/gearscan/engine"
	"github.com/katalvlaran/gearscan/neighbor"
	"github.com/katalvlaran/gearscan/report"
	"github.com/katalvlaran/gearscan/schematic"
)

var (
	partColor   = lipgloss.Color("#228B22") // Forest green
	idleColor   = lipgloss.Color("#888888") // Medium gray
	gearColor   = lipgloss.Color("#FF8800") // Orange
	symbolColor = lipgloss.Color("#4682B4") // Steel blue
	emptyColor  = lipgloss.Color("#555555") // Dark gray
	haloColor   = lipgloss.Color("#3A2A10") // Dim amber
)

// cell roles, in increasing priority
type role int

const (
	roleEmpty role = iota
	roleIdle
	rolePart
	roleSymbol
	roleGear
)

// Renderer styles analyses. The zero value is not usable; call New.
type Renderer struct {
	lg     *lipgloss.Renderer
	color  bool
	styles map[role]lipgloss.Style
	halo   lipgloss.Style
	label  lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderer sets the lipgloss renderer, which decides the color profile.
func WithRenderer(lg *lipgloss.Renderer) Option {
	return func(r *Renderer) {
		if lg != nil {
			r.lg = lg
		}
	}
}

// WithColor turns styling on or off.
func WithColor(on bool) Option {
	return func(r *Renderer) {
		r.color = on
	}
}

// New returns a Renderer using lipgloss' default renderer with color on.
func New(opts ...Option) *Renderer {
	r := &Renderer{lg: lipgloss.DefaultRenderer(), color: true}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = map[role]lipgloss.Style{
		roleEmpty:  r.lg.NewStyle().Foreground(emptyColor),
		roleIdle:   r.lg.NewStyle().Foreground(idleColor),
		rolePart:   r.lg.NewStyle().Foreground(partColor).Bold(true),
		roleSymbol: r.lg.NewStyle().Foreground(symbolColor),
		roleGear:   r.lg.NewStyle().Foreground(gearColor).Bold(true),
	}
	r.halo = r.lg.NewStyle().Background(haloColor)
	r.label = r.lg.NewStyle().Foreground(symbolColor).Bold(true)

	return r
}

// Schematic renders the grid of a, one line per row, without a trailing newline.
func (r *Renderer) Schematic(a *engine.Analysis) string {
	s := a.Schematic
	if !r.color {
		return s.String()
	}

	roles := make([]role, s.Width()*s.Height())
	halo := make([]bool, len(roles))
	for i := range roles {
		ch, _ := s.At(s.Coordinate(i))
		switch classify.Of(ch) {
		case classify.KindSymbol, classify.KindGear:
			roles[i] = roleSymbol
		}
	}
	for _, t := range a.Result.Idle {
		for _, c := range t.Cells() {
			roles[s.Index(c)] = roleIdle
		}
	}
	for _, t := range a.Result.Parts {
		for _, c := range t.Cells() {
			roles[s.Index(c)] = rolePart
		}
	}
	for _, g := range a.Result.ValidGears() {
		roles[s.Index(g.At)] = roleGear
		for _, c := range neighbor.Around(g.At) {
			if s.InBounds(c) {
				halo[s.Index(c)] = true
			}
		}
	}

	var b strings.Builder
	for row := 0; row < s.Height(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		r.writeRow(&b, s, row, roles, halo)
	}

	return b.String()
}

// writeRow emits one row, grouping consecutive cells that share a style.
func (r *Renderer) writeRow(b *strings.Builder, s *schematic.Schematic, row int, roles []role, halo []bool) {
	cells := s.Row(row)
	start := 0
	for col := 1; col <= len(cells); col++ {
		i, j := s.Index(schematic.Coord{Row: row, Col: start}), s.Index(schematic.Coord{Row: row, Col: col})
		if col < len(cells) && roles[i] == roles[j] && halo[i] == halo[j] {
			continue
		}
		st := r.styles[roles[i]]
		if halo[i] {
			st = st.Inherit(r.halo)
		}
		b.WriteString(st.Render(string(cells[start:col])))
		start = col
	}
}

// Report renders a labelled summary of rep. An empty name omits the label line.
func (r *Renderer) Report(name string, rep report.Report) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(r.paint(r.label, name))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  part sum:       %s  (%d of %d numbers)\n",
		r.paint(r.styles[rolePart], fmt.Sprint(rep.PartSum)), rep.Parts, rep.Tokens)
	fmt.Fprintf(&b, "  gear ratio sum: %s  (%d gears)",
		r.paint(r.styles[roleGear], fmt.Sprint(rep.GearRatioSum)), rep.Gears)

	return b.String()
}

func (r *Renderer) paint(st lipgloss.Style, s string) string {
	if !r.color {
		return s
	}

	return st.Render(s)
}

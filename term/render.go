package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifeterm/model"
)

const (
	clearScreen = "\x1b[2J\x1b[H"

	liveCell = "██"
	deadCell = "  "
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Renderer draws grid frames to a terminal. Each frame is composed into a
// single string and written once, which keeps redraw flicker down.
type Renderer struct {
	out io.Writer
}

// NewRenderer returns a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Frame clears the screen and draws the grid under a generation header.
// It satisfies sim.RenderFunc and never mutates the grid.
func (r *Renderer) Frame(g *model.Grid, generation int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(headerStyle.Render(fmt.Sprintf("Generation %d", generation)))
	b.WriteString(hintStyle.Render("  press Ctrl-C to exit early"))
	b.WriteByte('\n')
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.Get(row, col) {
				b.WriteString(liveCell)
			} else {
				b.WriteString(deadCell)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.out, b.String())
}

// Resize asks an xterm-compatible terminal to grow to fit the board: cells
// render two columns wide, plus headroom for the header and the run summary.
func (r *Renderer) Resize(rows, cols int) {
	fmt.Fprintf(r.out, "\x1b[8;%d;%dt", rows+3, cols*2)
}

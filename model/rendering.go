package model

import (
	"fmt"
	"io"
)

// TerminalRenderer draws grids with absolute cursor addressing: one
// glyph per cell at the 1-based terminal position matching the cell's
// coordinates. After every glyph the cursor is parked just past the
// grid's bottom-right corner, so stray output from other writers
// cannot land inside the draw region.
type TerminalRenderer struct {
	out        io.Writer
	aliveGlyph rune
	deadGlyph  rune
}

// NewTerminalRenderer returns a renderer writing to out.
func NewTerminalRenderer(out io.Writer, aliveGlyph, deadGlyph rune) *TerminalRenderer {
	return &TerminalRenderer{
		out:        out,
		aliveGlyph: aliveGlyph,
		deadGlyph:  deadGlyph,
	}
}

// Render draws the whole grid. A write failure aborts the process;
// there is no state worth preserving past a broken terminal.
func (r *TerminalRenderer) Render(g *Grid) {
	parkRow, parkCol := g.Height()+1, g.Width()+1
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			glyph := r.deadGlyph
			if g.Get(x, y).IsAlive() {
				glyph = r.aliveGlyph
			}
			if _, err := fmt.Fprintf(r.out, "\x1b[%d;%dH%c\x1b[%d;%dH", y+1, x+1, glyph, parkRow, parkCol); err != nil {
				panic(err)
			}
		}
	}
}

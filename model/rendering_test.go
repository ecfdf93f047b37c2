package model

import (
	"bytes"
	"fmt"
	"testing"
)

func TestRenderAddressing(t *testing.T) {
	// 2x2 grid with a single live cell at (1,0). Cells are emitted in
	// row-major order at 1-based terminal positions, each write
	// followed by a park at (height+1, width+1) = (3,3).
	g := NewGrid(2, 2)
	g.Set(1, 0, Alive)

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, '█', ' ')
	r.Render(g)

	want := "" +
		"\x1b[1;1H \x1b[3;3H" +
		"\x1b[1;2H█\x1b[3;3H" +
		"\x1b[2;1H \x1b[3;3H" +
		"\x1b[2;2H \x1b[3;3H"
	if got := buf.String(); got != want {
		t.Errorf("render bytes = %q, want %q", got, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	g := NewGrid(5, 4)
	g.Randomize()

	var first, second bytes.Buffer
	NewTerminalRenderer(&first, '█', ' ').Render(g)
	NewTerminalRenderer(&second, '█', ' ').Render(g)

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("rendering the same grid twice produced different byte sequences")
	}
}

func TestRenderUsesConfiguredGlyphs(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, Alive)

	var buf bytes.Buffer
	NewTerminalRenderer(&buf, '#', '.').Render(g)

	want := fmt.Sprintf("\x1b[1;1H%c\x1b[2;2H", '#')
	if got := buf.String(); got != want {
		t.Errorf("render bytes = %q, want %q", got, want)
	}
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("terminal gone")
}

func TestRenderPanicsOnWriteFailure(t *testing.T) {
	g := NewGrid(2, 2)
	r := NewTerminalRenderer(errWriter{}, '█', ' ')

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when the terminal write fails")
		}
	}()
	r.Render(g)
}

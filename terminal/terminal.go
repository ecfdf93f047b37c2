package terminal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Terminal is the capability boundary to the controlling terminal:
// a dimension query and a byte sink for cursor-addressed output.
type Terminal interface {
	io.Writer
	Size() (width, height int, err error)
}

// Stdout is the real terminal on standard output.
type Stdout struct{}

func (Stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Size queries the current terminal dimensions.
func (Stdout) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "[Size] failed to query terminal size")
	}
	return width, height, nil
}

// RequireSize verifies, once before anything is drawn, that the
// terminal can hold a width x height grid. On failure the returned
// error names the required minimum dimensions.
func RequireSize(t Terminal, width, height int) error {
	w, h, err := t.Size()
	if err != nil {
		return errors.Wrap(err, "[RequireSize] terminal size unavailable")
	}
	if w < width || h < height {
		return errors.Errorf(
			"[RequireSize] terminal size %dx%d too small, resize to at least %dx%d",
			w, h, width, height,
		)
	}
	return nil
}

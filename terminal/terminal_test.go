package terminal

import (
	"fmt"
	"strings"
	"testing"
)

// fakeTerminal reports a fixed size.
type fakeTerminal struct {
	width  int
	height int
	err    error
}

func (f fakeTerminal) Write(p []byte) (int, error) {
	return len(p), nil
}

func (f fakeTerminal) Size() (int, int, error) {
	return f.width, f.height, f.err
}

func TestRequireSize(t *testing.T) {
	tests := []struct {
		name    string
		term    fakeTerminal
		wantErr bool
	}{
		{"Exactly fits", fakeTerminal{width: 130, height: 40}, false},
		{"Larger than needed", fakeTerminal{width: 200, height: 60}, false},
		{"Too narrow", fakeTerminal{width: 129, height: 40}, true},
		{"Too short", fakeTerminal{width: 130, height: 39}, true},
		{"Too small in both dimensions", fakeTerminal{width: 80, height: 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSize(tt.term, 130, 40)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequireSize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireSizeNamesRequiredDimensions(t *testing.T) {
	err := RequireSize(fakeTerminal{width: 80, height: 24}, 130, 40)
	if err == nil {
		t.Fatal("expected an error for an undersized terminal")
	}
	if !strings.Contains(err.Error(), "130x40") {
		t.Errorf("error %q should name the required minimum 130x40", err)
	}
}

func TestRequireSizePropagatesQueryFailure(t *testing.T) {
	queryErr := fmt.Errorf("not a tty")
	err := RequireSize(fakeTerminal{err: queryErr}, 130, 40)
	if err == nil {
		t.Fatal("expected the size query failure to surface")
	}
	if !strings.Contains(err.Error(), "not a tty") {
		t.Errorf("error %q should wrap the underlying query failure", err)
	}
}

// Package terminal checks that the process owns a usable terminal before the
// dashboard takes it over.
package terminal

import (
	"fmt"

	"golang.org/x/term"

	"github.com/yitech/klineterm/layout"
)

// InitError is returned when the terminal cannot host the dashboard.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("terminal init: %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Size is a terminal size in character cells.
type Size struct {
	Width  int
	Height int
}

// Probe verifies that fd is a terminal large enough for the dashboard and
// returns its size.
func Probe(fd int) (Size, error) {
	if !term.IsTerminal(fd) {
		return Size{}, &InitError{Op: "check tty", Err: fmt.Errorf("fd %d is not a terminal", fd)}
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}, &InitError{Op: "get size", Err: err}
	}
	return checkSize(w, h)
}

func checkSize(w, h int) (Size, error) {
	if err := layout.Validate(w, h); err != nil {
		return Size{}, &InitError{Op: "check size", Err: err}
	}
	return Size{Width: w, Height: h}, nil
}

package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 120

// DisplayContext holds display parameters for one output stream.
type DisplayContext struct {
	TermWidth int  // detected or fallback terminal width
	IsTTY     bool // whether the stream is a terminal
}

// NewDisplayContext detects the dimensions of stdout.
func NewDisplayContext() *DisplayContext {
	return DisplayContextFor(os.Stdout)
}

// DisplayContextFor detects the dimensions of f.
func DisplayContextFor(f *os.File) *DisplayContext {
	fd := f.Fd()
	ctx := &DisplayContext{TermWidth: DefaultTermWidth, IsTTY: term.IsTerminal(fd)}
	if ctx.IsTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			ctx.TermWidth = w
		}
	}
	return ctx
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width (for testing).
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{
		TermWidth: width,
		IsTTY:     true,
	}
}

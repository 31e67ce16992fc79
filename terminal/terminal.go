package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a tty
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the dimensions of the terminal behind f, falling back to 80x24
func Size(f *os.File) (width, height int) {
	return getTerminalSize(int(f.Fd()))
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Restore() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios after a raw-mode backend crashed
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}

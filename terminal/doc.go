// @focus: #sys { term }
// Package terminal provides direct ANSI control of a cooked-mode terminal.
//
// Features:
//   - Clear with scrollback purge, hidden cursor, auto-wrap disabled
//   - Absolute cursor positioning for sprite blits
//   - Clean terminal restoration on exit/panic
//
// Input stays line-buffered by the tty driver; this package only writes.
// It bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal

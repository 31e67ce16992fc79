// @lixen: #focus{render[canvas]}
package render

// Canvas is the terminal surface the renderer draws on
// Implementations: terminal.Canvas (ANSI escapes) and screen.Screen (tcell)
type Canvas interface {
	// Clear blanks the screen, hides the cursor and disables line wrapping
	Clear() error

	// DrawText writes s starting at column x, row y (0-indexed)
	DrawText(x, y int, s string) error

	// Flush makes pending output visible
	Flush() error
}

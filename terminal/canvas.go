// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Canvas writes sprites and text to an ANSI terminal at absolute positions
// Writes are buffered; the first write error sticks and is returned by every later call
type Canvas struct {
	mu     sync.Mutex
	writer *bufio.Writer
}

// NewCanvas wraps the terminal output stream
func NewCanvas(w io.Writer) *Canvas {
	return &Canvas{
		writer: bufio.NewWriterSize(w, 16384),
	}
}

// Clear hides the cursor, purges scrollback, clears the screen and disables auto-wrap
func (c *Canvas) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Write(csiCursorHide)
	c.writer.Write(csiPurge)
	c.writer.Write(csiClear)
	c.writer.Write(csiAutoWrapOff)
	return c.flushLocked("clear")
}

// DrawText moves to (x, y) and writes s (0-indexed)
func (c *Canvas) DrawText(x, y int, s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writeCursorPos(c.writer, x, y)
	c.writer.WriteString(s)
	if err := c.writer.Flush(); err != nil {
		return fmt.Errorf("draw at %d,%d: %w", x, y, err)
	}
	return nil
}

// MoveCursor positions the cursor (0-indexed) without writing
func (c *Canvas) MoveCursor(x, y int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writeCursorPos(c.writer, x, y)
	return c.flushLocked("move cursor")
}

// Flush pushes buffered output to the terminal
func (c *Canvas) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushLocked("flush")
}

// Restore shows the cursor, re-enables auto-wrap and resets attributes
func (c *Canvas) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Write(csiCursorShow)
	c.writer.Write(csiAutoWrapOn)
	c.writer.Write(csiSGR0)
	return c.flushLocked("restore")
}

func (c *Canvas) flushLocked(op string) error {
	if err := c.writer.Flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

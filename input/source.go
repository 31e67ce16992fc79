// Package input reads answer lines from the player, racing each read against the session deadline.
package input

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// ErrStopped is returned by a cancellable source when its stop channel closes mid-read
var ErrStopped = errors.New("line read stopped")

// LineSource delivers one newline-terminated line per call
// The trailing newline is kept; a final unterminated line is returned without one.
// Sources that cannot interrupt a blocked read ignore stop.
type LineSource interface {
	ReadLine(stop <-chan struct{}) (string, error)
}

// StreamSource reads lines from any io.Reader
// A blocked read cannot be interrupted: when its caller gives up, the read stays
// pending until a line arrives or the stream closes
type StreamSource struct {
	mu sync.Mutex
	r  *bufio.Reader
}

// NewStreamSource wraps r with line buffering
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: bufio.NewReader(r)}
}

// ReadLine blocks for a full line; stop is ignored
func (s *StreamSource) ReadLine(<-chan struct{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// ErrAborted is returned by interactive sources when the player quits mid-read
var ErrAborted = errors.New("input aborted by player")

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// pollIntervalMs bounds how long a read waits before re-checking stop
const pollIntervalMs = 100

// PollSource reads lines from a file descriptor with poll(2), so a pending read
// returns ErrStopped shortly after stop closes instead of blocking forever
type PollSource struct {
	mu      sync.Mutex
	fd      int
	pending []byte
	eof     bool
}

// NewPollSource reads from f; f must stay open for the source's lifetime
func NewPollSource(f *os.File) *PollSource {
	return &PollSource{fd: int(f.Fd())}
}

// NewStdinSource returns the cancellable stdin source on platforms with poll(2)
func NewStdinSource() LineSource {
	return NewPollSource(os.Stdin)
}

func (s *PollSource) ReadLine(stop <-chan struct{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, 256)

	for {
		if i := bytes.IndexByte(s.pending, '\n'); i >= 0 {
			line := string(s.pending[:i+1])
			s.pending = s.pending[i+1:]
			return line, nil
		}

		if s.eof {
			if len(s.pending) > 0 {
				line := string(s.pending)
				s.pending = nil
				return line, nil
			}
			return "", io.EOF
		}

		select {
		case <-stop:
			return "", ErrStopped
		default:
		}

		fds := []unix.PollFd{
			{Fd: int32(s.fd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, pollIntervalMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return "", fmt.Errorf("poll stdin: %w", err)
		}

		if n == 0 {
			continue // Timeout
		}

		rn, err := unix.Read(s.fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return "", fmt.Errorf("read stdin: %w", err)
		}

		if rn == 0 {
			s.eof = true
			continue
		}

		s.pending = append(s.pending, buf[:rn]...)
	}
}

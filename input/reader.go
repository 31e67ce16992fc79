// @lixen: #focus{io[input,deadline]}
package input

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lixenwraith/dicesum/core"
)

// ErrTimeout is returned when no line arrives before the deadline
var ErrTimeout = errors.New("input deadline elapsed")

type result struct {
	line string
	err  error
}

// worker is one in-flight ReadLine on the source
type worker struct {
	ch      chan result // single-slot handoff
	stop    chan struct{}
	stopped bool
}

func (w *worker) signal() {
	if !w.stopped {
		close(w.stop)
		w.stopped = true
	}
}

// Reader races a line read against a deadline
// At most one worker reads the source at any time: a worker abandoned by a
// timed-out read is kept and adopted by the next read if it is still blocked
type Reader struct {
	src LineSource

	mu      sync.Mutex // Serializes reads
	pending *worker
}

// NewReader creates a reader over src
func NewReader(src LineSource) *Reader {
	return &Reader{src: src}
}

// ReadLine waits for a line with no deadline; ctx cancellation abandons the read
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	return r.read(ctx, nil)
}

// ReadWithDeadline returns the next line if it arrives within remaining, else ErrTimeout
// A non-positive remaining times out immediately without touching the source
func (r *Reader) ReadWithDeadline(ctx context.Context, remaining time.Duration) (string, error) {
	if remaining <= 0 {
		return "", ErrTimeout
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	return r.read(ctx, timer.C)
}

func (r *Reader) read(ctx context.Context, deadline <-chan time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		w := r.handoff()

		select {
		case res := <-w.ch:
			if errors.Is(res.err, ErrStopped) {
				// Adopted worker honoured an earlier stop; start a fresh one
				continue
			}
			return res.line, res.err

		case <-deadline:
			r.abandon(w)
			return "", ErrTimeout

		case <-ctx.Done():
			r.abandon(w)
			return "", ctx.Err()
		}
	}
}

// handoff adopts a still-blocked pending worker or spawns a new one
// A pending worker that already delivered is a late answer and is dropped
func (r *Reader) handoff() *worker {
	if p := r.pending; p != nil {
		r.pending = nil
		select {
		case <-p.ch:
		default:
			return p
		}
	}

	w := &worker{
		ch:   make(chan result, 1),
		stop: make(chan struct{}),
	}
	src := r.src
	core.Go(func() {
		line, err := src.ReadLine(w.stop)
		w.ch <- result{line: line, err: err}
	})
	return w
}

// abandon signals the worker and keeps it for the next read
// Cancellable sources return promptly; stream sources stay blocked until input arrives
func (r *Reader) abandon(w *worker) {
	w.signal()
	r.pending = w
}

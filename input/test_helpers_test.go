package input

import (
	"sync/atomic"
)

// chanSource hands out lines pushed by the test and tracks reader concurrency
type chanSource struct {
	lines     chan string
	honorStop bool

	calls     atomic.Int32
	active    atomic.Int32
	maxActive atomic.Int32
}

func newChanSource(honorStop bool) *chanSource {
	return &chanSource{
		lines:     make(chan string),
		honorStop: honorStop,
	}
}

func (s *chanSource) ReadLine(stop <-chan struct{}) (string, error) {
	s.calls.Add(1)
	n := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		m := s.maxActive.Load()
		if n <= m || s.maxActive.CompareAndSwap(m, n) {
			break
		}
	}

	if !s.honorStop {
		return <-s.lines, nil
	}

	select {
	case line := <-s.lines:
		return line, nil
	case <-stop:
		return "", ErrStopped
	}
}

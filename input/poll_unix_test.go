//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package input

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollSourceSplitsLines(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()

	s := NewPollSource(pr)
	_, err = pw.Write([]byte("12\n34\npartial"))
	require.NoError(t, err)
	pw.Close()

	for _, want := range []string{"12\n", "34\n", "partial"} {
		line, err := s.ReadLine(nil)
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err = s.ReadLine(nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPollSourceStops(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()
	defer pw.Close()

	s := NewPollSource(pr)
	stop := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := s.ReadLine(stop)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	close(stop)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrStopped)
	case <-time.After(time.Second):
		t.Fatal("poll source did not honour stop")
	}
}

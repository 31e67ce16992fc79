package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasClearSequence(t *testing.T) {
	var buf bytes.Buffer
	c := NewCanvas(&buf)

	require.NoError(t, c.Clear())

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25l", "cursor hidden")
	assert.Contains(t, out, "\x1b[3J", "scrollback purged")
	assert.Contains(t, out, "\x1b[2J\x1b[H", "screen cleared")
	assert.True(t, strings.HasSuffix(out, "\x1b[?7l"), "auto-wrap disabled last")
}

func TestCanvasDrawTextPositions(t *testing.T) {
	var buf bytes.Buffer
	c := NewCanvas(&buf)

	require.NoError(t, c.DrawText(0, 0, "a"))
	require.NoError(t, c.DrawText(10, 4, "+-------+"))
	require.NoError(t, c.MoveCursor(1, 22))

	assert.Equal(t, "\x1b[1;1Ha\x1b[5;11H+-------+\x1b[23;2H", buf.String())
}

func TestCanvasRestore(t *testing.T) {
	var buf bytes.Buffer
	c := NewCanvas(&buf)

	require.NoError(t, c.Restore())
	assert.Equal(t, "\x1b[?25h\x1b[?7h\x1b[0m", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestCanvasWriteErrorsSurface(t *testing.T) {
	c := NewCanvas(failingWriter{})

	assert.Error(t, c.Clear())
	assert.Error(t, c.DrawText(1, 1, "x"))
	assert.Error(t, c.Flush())
}

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-5, "0"},
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{999, "999"},
		{1000, "1000"},
		{123456, "123456"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		assert.Equal(t, tt.want, buf.String(), "writeInt(%d)", tt.n)
	}
}

func TestEmergencyResetWritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25h")
	assert.Contains(t, out, "\x1b[?7h")
	assert.Contains(t, out, "\x1bc")
}

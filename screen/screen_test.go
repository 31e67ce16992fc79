package screen

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/input"
	"github.com/lixenwraith/dicesum/render"
	"github.com/lixenwraith/dicesum/round"
	"github.com/lixenwraith/dicesum/vmath"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := New(sim)
	require.NoError(t, s.Init())
	sim.SetSize(80, 26)
	t.Cleanup(s.Fini)
	return s, sim
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func rowText(sim tcell.SimulationScreen, x, y, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = cellAt(sim, x+i, y)
	}
	return string(out)
}

func TestScreenImplementsInterfaces(t *testing.T) {
	var _ render.Canvas = (*Screen)(nil)
	var _ input.LineSource = (*Screen)(nil)
}

func TestScreenRendersRound(t *testing.T) {
	s, sim := newSimScreen(t)
	r := render.NewRenderer(s, vmath.NewFastRand(1))

	rd := round.Round{
		Dice: []round.Die{
			{Value: 5, Pos: core.Point{X: 3, Y: 2}},
			{Value: 1, Pos: core.Point{X: 30, Y: 8}},
		},
		Answer: 6,
	}
	require.NoError(t, r.Draw(rd))

	assert.Equal(t, "+-------+", rowText(sim, 3, 2, constants.DieWidth))
	assert.Equal(t, "|   O   |", rowText(sim, 3, 4, constants.DieWidth))
	assert.Equal(t, "|   O   |", rowText(sim, 30, 10, constants.DieWidth))
	assert.Equal(t, constants.PromptText, rowText(sim, constants.PromptX, constants.PromptY, len(constants.PromptText)))
}

func TestReadLineEditsAndEchoes(t *testing.T) {
	s, sim := newSimScreen(t)
	require.NoError(t, s.DrawText(constants.PromptX, constants.InputY, ""))

	for _, k := range []keyPress{
		{key: tcell.KeyRune, r: '1'},
		{key: tcell.KeyRune, r: '9'},
		{key: tcell.KeyBackspace2},
		{key: tcell.KeyRune, r: '7'},
		{key: tcell.KeyEnter},
	} {
		s.keys <- k
	}

	line, err := s.ReadLine(nil)
	require.NoError(t, err)
	assert.Equal(t, "17\n", line)
	assert.Equal(t, "17", rowText(sim, constants.PromptX, constants.InputY, 2))
}

func TestReadLineAbort(t *testing.T) {
	s, _ := newSimScreen(t)
	s.keys <- keyPress{key: tcell.KeyEscape}

	_, err := s.ReadLine(nil)
	assert.ErrorIs(t, err, input.ErrAborted)
}

func TestReadLineStops(t *testing.T) {
	s, _ := newSimScreen(t)
	stop := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := s.ReadLine(stop)
		done <- err
	}()
	close(stop)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, input.ErrStopped)
	case <-time.After(time.Second):
		t.Fatal("ReadLine ignored stop")
	}
}

func TestTimedReaderOverScreen(t *testing.T) {
	s, _ := newSimScreen(t)
	reader := input.NewReader(s)

	_, err := reader.ReadWithDeadline(t.Context(), 20*time.Millisecond)
	require.ErrorIs(t, err, input.ErrTimeout)

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.keys <- keyPress{key: tcell.KeyRune, r: '8'}
		s.keys <- keyPress{key: tcell.KeyEnter}
	}()

	line, err := reader.ReadWithDeadline(t.Context(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "8\n", line)
}

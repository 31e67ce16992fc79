package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/glyph"
	"github.com/lixenwraith/dicesum/round"
	"github.com/lixenwraith/dicesum/vmath"
)

// gridCanvas records draws into a character grid
type gridCanvas struct {
	grid    [][]rune
	clears  int
	flushes int
	failOn  string
}

func newGridCanvas() *gridCanvas {
	c := &gridCanvas{}
	c.reset()
	return c
}

func (c *gridCanvas) reset() {
	c.grid = make([][]rune, constants.NoticeY+1)
	for y := range c.grid {
		c.grid[y] = []rune(strings.Repeat(" ", constants.CanvasWidth+1))
	}
}

func (c *gridCanvas) Clear() error {
	if c.failOn == "clear" {
		return errors.New("clear failed")
	}
	c.clears++
	c.reset()
	return nil
}

func (c *gridCanvas) DrawText(x, y int, s string) error {
	if c.failOn == "draw" {
		return errors.New("draw failed")
	}
	for i, r := range s {
		c.grid[y][x+i] = r
	}
	return nil
}

func (c *gridCanvas) Flush() error {
	c.flushes++
	return nil
}

func (c *gridCanvas) row(y int) string {
	return strings.TrimRight(string(c.grid[y]), " ")
}

func (c *gridCanvas) count(r rune) int {
	n := 0
	for _, row := range c.grid {
		for _, cell := range row {
			if cell == r {
				n++
			}
		}
	}
	return n
}

func TestDrawBlitsEveryDie(t *testing.T) {
	c := newGridCanvas()
	r := NewRenderer(c, vmath.NewFastRand(1))

	rd := round.Round{
		Dice: []round.Die{
			{Value: 1, Pos: core.Point{X: 1, Y: 1}},
			{Value: 4, Pos: core.Point{X: 20, Y: 10}},
			{Value: 6, Pos: core.Point{X: 60, Y: 15}},
		},
		Answer: 11,
	}

	require.NoError(t, r.Draw(rd))

	assert.Equal(t, 1, c.clears)
	assert.Equal(t, 1, c.flushes)
	assert.Equal(t, rd.Answer, c.count('O'), "pips on screen equal the expected sum")

	// Each die occupies exactly its footprint; corners mark its anchor
	for _, d := range rd.Dice {
		assert.Equal(t, '+', c.grid[d.Pos.Y][d.Pos.X])
		assert.Equal(t, '+', c.grid[d.Pos.Y+constants.DieHeight-1][d.Pos.X+constants.DieWidth-1])
	}
	assert.Equal(t, 4*len(rd.Dice), c.count('+'))

	assert.Equal(t, " "+constants.PromptText[:len(constants.PromptText)-1], c.row(constants.PromptY))
}

func TestDrawRandomRoundsMatchAnswer(t *testing.T) {
	rng := vmath.NewFastRand(77)
	gen := round.NewGenerator(rng)
	c := newGridCanvas()
	r := NewRenderer(c, rng)

	for i := 0; i < 50; i++ {
		rd, err := gen.Next()
		require.NoError(t, err)
		require.NoError(t, r.Draw(rd))
		assert.Equal(t, rd.Answer, c.count('O'), "round %d", i)
	}
}

func TestDrawRejectsUnknownFace(t *testing.T) {
	r := NewRenderer(newGridCanvas(), vmath.NewFastRand(1))
	err := r.Draw(round.Round{Dice: []round.Die{{Value: 9, Pos: core.Point{X: 1, Y: 1}}}})
	assert.ErrorIs(t, err, glyph.ErrUnknownFace)
}

func TestCanvasErrorsPropagate(t *testing.T) {
	for _, op := range []string{"clear", "draw"} {
		c := newGridCanvas()
		c.failOn = op
		r := NewRenderer(c, vmath.NewFastRand(1))

		assert.Error(t, r.Draw(round.Round{Dice: []round.Die{{Value: 2, Pos: core.Point{X: 1, Y: 1}}}}), op)
		assert.Error(t, r.Intro("hello"), op)
	}
}

func TestIntroAndNotice(t *testing.T) {
	c := newGridCanvas()
	r := NewRenderer(c, vmath.NewFastRand(1))

	text := fmt.Sprintf(constants.IntroFormat, 30, constants.Reward, constants.Penalty)
	require.NoError(t, r.Intro(text))

	var shown []string
	for y := constants.IntroY; y < len(c.grid); y++ {
		if row := strings.TrimSpace(c.row(y)); row != "" {
			shown = append(shown, row)
		}
	}
	require.NotEmpty(t, shown)
	assert.Equal(t, constants.StartText, shown[len(shown)-1])
	assert.Equal(t, text, strings.Join(shown[:len(shown)-1], " "))

	require.NoError(t, r.Notice("Incorrect. The answer is 12"))
	assert.Equal(t, " Incorrect. The answer is 12", c.row(constants.NoticeY))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one", 10, []string{"one"}},
		{"aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"aaa bbb ccc", 6, []string{"aaa", "bbb", "ccc"}},
		{"short enormousword x", 5, []string{"short", "enormousword", "x"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.text, tt.width), "wrap %q at %d", tt.text, tt.width)
	}
}

// Package render draws quiz screens: instructions, dice rounds and per-round notices.
package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/glyph"
	"github.com/lixenwraith/dicesum/round"
	"github.com/lixenwraith/dicesum/vmath"
)

// Renderer blits rounds onto a canvas
type Renderer struct {
	canvas Canvas
	rng    vmath.Rand // Glyph variant choice
}

// NewRenderer creates a renderer; rng picks mirrored glyph variants
func NewRenderer(canvas Canvas, rng vmath.Rand) *Renderer {
	return &Renderer{canvas: canvas, rng: rng}
}

// Intro shows the word-wrapped instructions and the start prompt
func (r *Renderer) Intro(text string) error {
	if err := r.canvas.Clear(); err != nil {
		return err
	}

	y := constants.IntroY
	for _, line := range Wrap(text, constants.CanvasWidth-2*constants.PromptX) {
		if err := r.canvas.DrawText(constants.PromptX, y, line); err != nil {
			return err
		}
		y++
	}

	if err := r.canvas.DrawText(constants.PromptX, y+1, constants.StartText); err != nil {
		return err
	}
	// Park the cursor where the start confirmation is typed
	if err := r.canvas.DrawText(constants.PromptX, y+2, ""); err != nil {
		return err
	}
	return r.canvas.Flush()
}

// Draw clears the canvas, blits every die and leaves the cursor at the answer row
func (r *Renderer) Draw(rd round.Round) error {
	if err := r.canvas.Clear(); err != nil {
		return err
	}

	for _, d := range rd.Dice {
		face, err := glyph.Lines(d.Value, r.rng)
		if err != nil {
			return fmt.Errorf("die at %d,%d: %w", d.Pos.X, d.Pos.Y, err)
		}
		for i, line := range face {
			if err := r.canvas.DrawText(d.Pos.X, d.Pos.Y+i, line); err != nil {
				return err
			}
		}
	}

	// Prompt sits outside the canvas so typed input never overwrites dice
	if err := r.canvas.DrawText(constants.PromptX, constants.PromptY, constants.PromptText); err != nil {
		return err
	}
	if err := r.canvas.DrawText(constants.PromptX, constants.InputY, ""); err != nil {
		return err
	}
	return r.canvas.Flush()
}

// Notice prints a one-line message below the answer row
func (r *Renderer) Notice(msg string) error {
	if err := r.canvas.DrawText(constants.PromptX, constants.NoticeY, msg); err != nil {
		return err
	}
	return r.canvas.Flush()
}

// Wrap breaks text into lines of at most width columns on word boundaries
// Words longer than width get a line of their own
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder
	for _, w := range words {
		if b.Len() > 0 && b.Len()+1+len(w) > width {
			lines = append(lines, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	lines = append(lines, b.String())
	return lines
}

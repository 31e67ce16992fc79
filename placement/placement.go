// @lixen: #focus{game[placement,spawn]}
// Package placement lays out fixed-size sprites at random non-overlapping anchors on a bounded grid.
package placement

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/vmath"
)

// Sentinel errors
var (
	ErrInsufficientSpace = errors.New("insufficient space for placement")
	ErrInvalidLayout     = errors.New("invalid placement layout")
)

// Engine places sprites of one footprint on one canvas
type Engine struct {
	Canvas    core.Area // Only Width/Height are used; origin is always (0,0)
	Footprint core.Area // Only Width/Height are used
	Capacity  int       // Maximum sprites per call, 0 means bounded by space only
}

// Standard returns the dice layout: 79x21 canvas, 9x5 footprint, capacity MaxDice
func Standard() *Engine {
	return &Engine{
		Canvas:    core.Area{Width: constants.CanvasWidth, Height: constants.CanvasHeight},
		Footprint: core.Area{Width: constants.DieWidth, Height: constants.DieHeight},
		Capacity:  constants.MaxDice,
	}
}

// Place is a convenience wrapper for a one-off engine without capacity limit
func Place(rng vmath.Rand, canvasW, canvasH, footprintW, footprintH, count int) ([]core.Point, error) {
	e := &Engine{
		Canvas:    core.Area{Width: canvasW, Height: canvasH},
		Footprint: core.Area{Width: footprintW, Height: footprintH},
	}
	return e.Place(rng, count)
}

// Place returns exactly count anchors whose footprints do not overlap,
// each fitting inside the canvas with a 1-cell border, or ErrInsufficientSpace
func (e *Engine) Place(rng vmath.Rand, count int) ([]core.Point, error) {
	if e.Footprint.Width <= 0 || e.Footprint.Height <= 0 || count < 0 {
		return nil, fmt.Errorf("%w: footprint %dx%d, count %d",
			ErrInvalidLayout, e.Footprint.Width, e.Footprint.Height, count)
	}
	if e.Capacity > 0 && count > e.Capacity {
		return nil, fmt.Errorf("%w: %d sprites requested, layout capacity is %d",
			ErrInsufficientSpace, count, e.Capacity)
	}

	cs := e.candidates()
	points := make([]core.Point, 0, count)

	for i := 0; i < count; i++ {
		if cs.len() == 0 {
			return nil, fmt.Errorf("%w: placed %d of %d on %dx%d canvas",
				ErrInsufficientSpace, i, count, e.Canvas.Width, e.Canvas.Height)
		}

		p := cs.take(rng.Intn(cs.len()))
		points = append(points, p)
		e.exclude(cs, p)
	}

	return points, nil
}

// candidates builds every legal anchor: 1 <= x <= W-1-fw, 1 <= y <= H-1-fh
func (e *Engine) candidates() *candidateSet {
	maxX := e.Canvas.Width - 1 - e.Footprint.Width
	maxY := e.Canvas.Height - 1 - e.Footprint.Height

	n := 0
	if maxX >= 1 && maxY >= 1 {
		n = maxX * maxY
	}
	cs := newCandidateSet(n)

	for x := 1; x <= maxX; x++ {
		for y := 1; y <= maxY; y++ {
			cs.add(core.Point{X: x, Y: y})
		}
	}
	return cs
}

// exclude purges every candidate Q with p.X-W < Q.X < p.X+W and p.Y-H < Q.Y < p.Y+H
// Lower bounds clamp at 0
func (e *Engine) exclude(cs *candidateSet, p core.Point) {
	w, h := e.Footprint.Width, e.Footprint.Height

	loX := max(p.X-w+1, 0)
	loY := max(p.Y-h+1, 0)

	for x := loX; x < p.X+w; x++ {
		for y := loY; y < p.Y+h; y++ {
			cs.remove(core.Point{X: x, Y: y})
		}
	}
}

// candidateSet is an unordered point set with O(1) random pick and removal
// Points are kept in a dense slice; index maps packed point -> slot
type candidateSet struct {
	points []core.Point
	index  *intmap.Map[uint64, int]
}

func newCandidateSet(capacity int) *candidateSet {
	return &candidateSet{
		points: make([]core.Point, 0, capacity),
		index:  intmap.New[uint64, int](capacity),
	}
}

// pack requires non-negative coordinates, which all candidates have
func pack(p core.Point) uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}

func (cs *candidateSet) len() int {
	return len(cs.points)
}

func (cs *candidateSet) add(p core.Point) {
	cs.index.Put(pack(p), len(cs.points))
	cs.points = append(cs.points, p)
}

func (cs *candidateSet) contains(p core.Point) bool {
	_, ok := cs.index.Get(pack(p))
	return ok
}

// take removes and returns the point in slot i
func (cs *candidateSet) take(i int) core.Point {
	p := cs.points[i]
	cs.removeAt(i)
	return p
}

func (cs *candidateSet) remove(p core.Point) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	if i, ok := cs.index.Get(pack(p)); ok {
		cs.removeAt(i)
	}
}

// removeAt swap-removes slot i, fixing the moved point's index
func (cs *candidateSet) removeAt(i int) {
	last := len(cs.points) - 1
	p := cs.points[i]

	if i != last {
		moved := cs.points[last]
		cs.points[i] = moved
		cs.index.Put(pack(moved), i)
	}

	cs.points = cs.points[:last]
	cs.index.Del(pack(p))
}

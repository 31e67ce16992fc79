// Package round generates one quiz round: dice values, their layout and the expected sum.
package round

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/placement"
	"github.com/lixenwraith/dicesum/vmath"
)

// Die is one face value at its canvas anchor
type Die struct {
	Value int
	Pos   core.Point
}

// Round is the render plan plus the expected answer
type Round struct {
	Dice   []Die
	Answer int
	Budget time.Duration // Remaining session time granted to this round's answer, set by the loop
}

// Generator produces rounds from a shared random source
type Generator struct {
	rng     vmath.Rand
	engine  *placement.Engine
	minDice int
	maxDice int
}

// NewGenerator creates a generator over the standard dice layout
func NewGenerator(rng vmath.Rand) *Generator {
	return NewGeneratorWithEngine(rng, placement.Standard())
}

// NewGeneratorWithEngine allows a custom layout, used to surface placement failures
func NewGeneratorWithEngine(rng vmath.Rand, engine *placement.Engine) *Generator {
	return &Generator{
		rng:     rng,
		engine:  engine,
		minDice: constants.MinDice,
		maxDice: constants.MaxDice,
	}
}

// Next rolls a die count in [MinDice, MaxDice], a face per die, and lays them out
func (g *Generator) Next() (Round, error) {
	count := vmath.IntRange(g.rng, g.minDice, g.maxDice)

	values := make([]int, count)
	answer := 0
	for i := range values {
		values[i] = vmath.IntRange(g.rng, constants.MinFace, constants.MaxFace)
		answer += values[i]
	}

	points, err := g.engine.Place(g.rng, count)
	if err != nil {
		return Round{}, fmt.Errorf("layout %d dice: %w", count, err)
	}

	dice := make([]Die, count)
	for i := range dice {
		dice[i] = Die{Value: values[i], Pos: points[i]}
	}

	return Round{Dice: dice, Answer: answer}, nil
}

// Package glyph holds the ASCII art for die faces.
package glyph

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dicesum/vmath"
)

// ErrUnknownFace is returned for values outside 1-6
var ErrUnknownFace = errors.New("unknown die face")

// Face is the 5-line art of one die variant
type Face [5]string

var (
	one = Face{
		"+-------+",
		"|       |",
		"|   O   |",
		"|       |",
		"+-------+",
	}
	twoA = Face{
		"+-------+",
		"| O     |",
		"|       |",
		"|     O |",
		"+-------+",
	}
	twoB = Face{
		"+-------+",
		"|     O |",
		"|       |",
		"| O     |",
		"+-------+",
	}
	threeA = Face{
		"+-------+",
		"| O     |",
		"|   O   |",
		"|     O |",
		"+-------+",
	}
	threeB = Face{
		"+-------+",
		"|     O |",
		"|   O   |",
		"| O     |",
		"+-------+",
	}
	four = Face{
		"+-------+",
		"| O   O |",
		"|       |",
		"| O   O |",
		"+-------+",
	}
	five = Face{
		"+-------+",
		"| O   O |",
		"|   O   |",
		"| O   O |",
		"+-------+",
	}
	sixA = Face{
		"+-------+",
		"| O O O |",
		"|       |",
		"| O O O |",
		"+-------+",
	}
	sixB = Face{
		"+-------+",
		"| O   O |",
		"| O   O |",
		"| O   O |",
		"+-------+",
	}
)

// catalog is indexed by face value; 2, 3 and 6 have a mirrored alternative
var catalog = [7][]Face{
	1: {one},
	2: {twoA, twoB},
	3: {threeA, threeB},
	4: {four},
	5: {five},
	6: {sixA, sixB},
}

// Variants returns every art variant for a face value
func Variants(value int) ([]Face, error) {
	if value < 1 || value >= len(catalog) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, value)
	}
	return catalog[value], nil
}

// Lines picks one variant for value, uniformly among its alternatives
func Lines(value int, rng vmath.Rand) (Face, error) {
	variants, err := Variants(value)
	if err != nil {
		return Face{}, err
	}
	if len(variants) == 1 {
		return variants[0], nil
	}
	return variants[rng.Intn(len(variants))], nil
}

// Pips counts the 'O' marks, which equals the face value for every variant
func (f Face) Pips() int {
	n := 0
	for _, line := range f {
		for _, r := range line {
			if r == 'O' {
				n++
			}
		}
	}
	return n
}

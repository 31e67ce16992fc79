// Command layout-benchmark times dice placement and reports how often
// unbounded layouts run out of room as the dice count grows.
package main

import (
	"errors"
	"flag"
	"fmt"
	"testing"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/placement"
	"github.com/lixenwraith/dicesum/vmath"
)

func main() {
	trials := flag.Int("trials", 10000, "Layouts per count for the fill-rate table")
	maxCount := flag.Int("max", 12, "Largest dice count to try in the fill-rate table")
	flag.Parse()

	benchmarks := []struct {
		name string
		rng  func() vmath.Rand
	}{
		{"FastRand", func() vmath.Rand { return vmath.NewFastRand(12345) }},
		{"SystemRand (PCG)", func() vmath.Rand { return vmath.NewSystemRand() }},
	}

	fmt.Printf("Placement on %dx%d canvas, %dx%d footprint\n\n",
		constants.CanvasWidth, constants.CanvasHeight, constants.DieWidth, constants.DieHeight)
	fmt.Printf("%-20s %6s %12s\n", "Source", "Dice", "ns/layout")
	fmt.Println("----------------------------------------")

	for _, bm := range benchmarks {
		for count := constants.MinDice; count <= constants.MaxDice; count++ {
			engine := placement.Standard()
			rng := bm.rng()
			result := testing.Benchmark(func(b *testing.B) {
				for b.Loop() {
					if _, err := engine.Place(rng, count); err != nil {
						b.Fatal(err)
					}
				}
			})
			nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
			fmt.Printf("%-20s %6d %10.1f ns\n", bm.name, count, nsPerOp)
		}
	}

	// Without the capacity cap, count decides success by space alone
	unbounded := &placement.Engine{
		Canvas:    core.Area{Width: constants.CanvasWidth, Height: constants.CanvasHeight},
		Footprint: core.Area{Width: constants.DieWidth, Height: constants.DieHeight},
	}
	rng := vmath.NewFastRand(42)

	fmt.Printf("\nFill rate without capacity cap (%d trials):\n", *trials)
	for count := constants.MinDice; count <= *maxCount; count++ {
		failed := 0
		for i := 0; i < *trials; i++ {
			if _, err := unbounded.Place(rng, count); err != nil {
				if !errors.Is(err, placement.ErrInsufficientSpace) {
					fmt.Printf("  unexpected error: %v\n", err)
					return
				}
				failed++
			}
		}
		fmt.Printf("  %2d dice: %6.2f%% placed\n", count, 100*float64(*trials-failed)/float64(*trials))
	}
}

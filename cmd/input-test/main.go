package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lixenwraith/dicesum/input"
)

// Manual check of the timed line reader: type within the window, or let it lapse
// and type afterwards to see the late line discarded. Enter q to quit.
func main() {
	window := flag.Duration("window", 3*time.Second, "Deadline per read")
	stream := flag.Bool("stream", false, "Use the blocking stream source instead of polling stdin")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := input.NewStdinSource()
	if *stream {
		src = input.NewStreamSource(os.Stdin)
	}
	reader := input.NewReader(src)

	fmt.Printf("Input Test - %s per read, q to quit\n", *window)
	for round := 1; ; round++ {
		fmt.Printf("[%d] > ", round)
		start := time.Now()
		line, err := reader.ReadWithDeadline(ctx, *window)
		elapsed := time.Since(start).Round(time.Millisecond)

		switch {
		case errors.Is(err, input.ErrTimeout):
			fmt.Printf("\n    timeout after %s\n", elapsed)
		case err != nil:
			fmt.Printf("\n    stopped: %v\n", err)
			return
		default:
			fmt.Printf("    %q in %s\n", line, elapsed)
			if strings.TrimSpace(line) == "q" {
				return
			}
		}
	}
}

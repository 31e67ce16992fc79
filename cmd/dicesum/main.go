package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/dicesum/audio"
	"github.com/lixenwraith/dicesum/config"
	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/game"
	"github.com/lixenwraith/dicesum/input"
	"github.com/lixenwraith/dicesum/render"
	"github.com/lixenwraith/dicesum/round"
	"github.com/lixenwraith/dicesum/screen"
	"github.com/lixenwraith/dicesum/terminal"
	"github.com/lixenwraith/dicesum/vmath"
)

// frontend pairs a drawing surface with the line source that belongs to it
type frontend struct {
	canvas render.Canvas
	source input.LineSource
	close  func()
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the quiz crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDICESUM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(flag.NewFlagSet("dicesum", flag.ContinueOnError), args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "dicesum: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.LogDir, cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: backend=%s sound=%t volume=%.2f", cfg.Backend, cfg.Sound, cfg.Volume)

	checkTerminalSize()

	fe, err := newFrontend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashCleanup(fe.close)

	var feedback game.Feedback
	if cfg.Sound {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			feedback = sm
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := vmath.NewSystemRand()
	g := game.New(
		round.NewGenerator(rng),
		render.NewRenderer(fe.canvas, rng),
		input.NewReader(fe.source),
		core.NewSystemClock(),
		feedback,
	)
	g.OnState(func(s game.State) { log.Printf("state: %s", s) })

	session, runErr := g.Run(ctx)

	// Screen must be restored before the report so it lands on a normal terminal
	fe.close()
	core.SetCrashCleanup(nil)

	if session != nil {
		fmt.Println()
		if err := session.WriteReport(os.Stdout); err != nil {
			log.Printf("report: %v", err)
		}
	}

	if runErr != nil {
		log.Printf("session error: %v", runErr)
		fmt.Fprintf(os.Stderr, "dicesum: %v\n", runErr)
		return 1
	}
	return 0
}

// newFrontend builds the canvas and input source for the selected backend
func newFrontend(backend string) (*frontend, error) {
	switch backend {
	case config.BackendTcell:
		scr, err := screen.NewTerminal()
		if err != nil {
			return nil, err
		}
		if err := scr.Init(); err != nil {
			return nil, err
		}
		return &frontend{canvas: scr, source: scr, close: scr.Fini}, nil

	default:
		canvas := terminal.NewCanvas(os.Stdout)
		return &frontend{
			canvas: canvas,
			source: input.NewStdinSource(),
			close:  func() { canvas.Restore() },
		}, nil
	}
}

// checkTerminalSize logs a warning when the window cannot hold the canvas and its prompt rows
func checkTerminalSize() {
	if !terminal.IsTerminal(os.Stdout) {
		log.Printf("stdout is not a terminal")
		return
	}
	w, h := terminal.Size(os.Stdout)
	if w < constants.CanvasWidth || h < constants.NoticeY+1 {
		log.Printf("terminal %dx%d is smaller than %dx%d, layout may wrap",
			w, h, constants.CanvasWidth, constants.NoticeY+1)
	}
}

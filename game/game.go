// @lixen: #focus{game[loop,score]}
// Package game drives the timed quiz: start confirmation, repeated rounds, scoring and the final tally.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/dicesum/constants"
	"github.com/lixenwraith/dicesum/core"
	"github.com/lixenwraith/dicesum/input"
	"github.com/lixenwraith/dicesum/round"
)

// Feedback receives per-round outcomes, e.g. for sound cues
type Feedback interface {
	Correct()
	Incorrect()
	Timeout()
}

// Display is what the loop needs from the renderer
type Display interface {
	Intro(text string) error
	Draw(r round.Round) error
	Notice(msg string) error
}

// Rounds produces the next round
type Rounds interface {
	Next() (round.Round, error)
}

// LineReader is the timed input
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
	ReadWithDeadline(ctx context.Context, remaining time.Duration) (string, error)
}

// Game wires the round loop collaborators
type Game struct {
	rounds   Rounds
	display  Display
	reader   LineReader
	clock    core.Clock
	feedback Feedback

	state     State
	observers []func(State)
}

// New creates a game; feedback may be nil
func New(rounds Rounds, display Display, reader LineReader, clock core.Clock, feedback Feedback) *Game {
	return &Game{
		rounds:   rounds,
		display:  display,
		reader:   reader,
		clock:    clock,
		feedback: feedback,
		state:    StateAwaitingStart,
	}
}

// OnState registers a callback invoked on every state transition
func (g *Game) OnState(fn func(State)) {
	g.observers = append(g.observers, fn)
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.state
}

func (g *Game) transition(s State) {
	g.state = s
	for _, fn := range g.observers {
		fn(s)
	}
}

// Run plays one full session and returns its tally
// The session is returned even on error; ctx cancellation or a player abort
// end the session early without an error
func (g *Game) Run(ctx context.Context) (*Session, error) {
	g.transition(StateAwaitingStart)

	intro := fmt.Sprintf(constants.IntroFormat,
		int(constants.QuizTime.Seconds()), constants.Reward, constants.Penalty)
	if err := g.display.Intro(intro); err != nil {
		return nil, fmt.Errorf("intro: %w", err)
	}

	if err := g.awaitStart(ctx); err != nil {
		if isAbort(ctx, err) {
			g.transition(StateFinished)
			return NewSession(g.clock.Now()), nil
		}
		return nil, err
	}

	session := NewSession(g.clock.Now())
	log.Printf("session started, deadline %s", session.Deadline.Format("15:04:05"))

	err := g.loop(ctx, session)
	g.transition(StateFinished)

	log.Printf("session finished: rounds=%d correct=%d incorrect=%d timeouts=%d score=%d",
		session.Rounds, session.Correct, session.Incorrect, session.Timeouts, session.Score())

	if err != nil && !isAbort(ctx, err) {
		return session, err
	}
	return session, nil
}

// awaitStart accepts any newline-terminated line, reprompting otherwise
func (g *Game) awaitStart(ctx context.Context) error {
	for {
		line, err := g.reader.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("await start: %w", err)
		}
		if strings.HasSuffix(line, "\n") {
			return nil
		}
		if err := g.display.Notice(constants.InvalidStart); err != nil {
			return err
		}
	}
}

func (g *Game) loop(ctx context.Context, session *Session) error {
	for {
		g.transition(StateRunning)
		now := g.clock.Now()
		if session.Expired(now) {
			return nil
		}

		g.transition(StateRoundInProgress)
		rd, err := g.rounds.Next()
		if err != nil {
			return fmt.Errorf("round %d: %w", session.Rounds+1, err)
		}
		if err := g.display.Draw(rd); err != nil {
			return fmt.Errorf("draw round %d: %w", session.Rounds+1, err)
		}

		rd.Budget = session.Remaining(g.clock.Now())
		log.Printf("round %d: dice=%d answer=%d budget=%s", session.Rounds+1, len(rd.Dice), rd.Answer, rd.Budget)

		line, err := g.reader.ReadWithDeadline(ctx, rd.Budget)

		var outcome Outcome
		switch {
		case errors.Is(err, input.ErrTimeout):
			outcome = OutcomeTimeout
		case err != nil:
			return err
		default:
			outcome = Evaluate(line, rd.Answer)
		}

		g.transition(StateRoundScored)
		session.Record(outcome)
		log.Printf("round %d: %s", session.Rounds, outcome)

		if err := g.announce(outcome, rd.Answer); err != nil {
			return err
		}
	}
}

// announce reports the outcome to the player and feedback sink
func (g *Game) announce(o Outcome, answer int) error {
	switch o {
	case OutcomeCorrect:
		if g.feedback != nil {
			g.feedback.Correct()
		}
	case OutcomeTimeout:
		if g.feedback != nil {
			g.feedback.Timeout()
		}
		return g.display.Notice(fmt.Sprintf(constants.TimeoutFormat, answer))
	case OutcomeIncorrect:
		if g.feedback != nil {
			g.feedback.Incorrect()
		}
		if err := g.display.Notice(fmt.Sprintf(constants.IncorrectFormat, answer)); err != nil {
			return err
		}
		g.clock.Sleep(constants.IncorrectPause)
	}
	return nil
}

// isAbort reports a player quit or context cancellation, which end the session cleanly
func isAbort(ctx context.Context, err error) bool {
	return errors.Is(err, input.ErrAborted) || (ctx.Err() != nil && errors.Is(err, ctx.Err()))
}

package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/dicesum/constants"
)

// Outcome is how a round was scored
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Session is the tally of one timed play
// Mutated only by the round loop
type Session struct {
	Correct   int
	Incorrect int
	Timeouts  int
	Rounds    int

	Start    time.Time
	Deadline time.Time
}

// NewSession starts a session with a fixed deadline of start + QuizTime
func NewSession(start time.Time) *Session {
	return &Session{
		Start:    start,
		Deadline: start.Add(constants.QuizTime),
	}
}

// Remaining returns the time left at now, recomputed from the fixed start
func (s *Session) Remaining(now time.Time) time.Duration {
	return constants.QuizTime - now.Sub(s.Start)
}

// Expired reports whether elapsed time has reached QuizTime
func (s *Session) Expired(now time.Time) bool {
	return now.Sub(s.Start) >= constants.QuizTime
}

// Record tallies one scored round; timeouts carry no penalty
func (s *Session) Record(o Outcome) {
	s.Rounds++
	switch o {
	case OutcomeCorrect:
		s.Correct++
	case OutcomeIncorrect:
		s.Incorrect++
	case OutcomeTimeout:
		s.Timeouts++
	}
}

// Score returns the session's signed score
func (s *Session) Score() int {
	return Score(s.Correct, s.Incorrect, constants.Reward, constants.Penalty)
}

// WriteReport prints the final tallies
func (s *Session) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w, constants.ReportFormat, s.Correct, s.Incorrect, s.Score())
	return err
}

// Score is correct*reward - incorrect*penalty; negative totals are allowed
func Score(correct, incorrect, reward, penalty int) int {
	return correct*reward - incorrect*penalty
}

// Evaluate scores an answer line against the expected sum
// Anything that does not parse as an integer is incorrect
func Evaluate(answer string, expected int) Outcome {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n != expected {
		return OutcomeIncorrect
	}
	return OutcomeCorrect
}

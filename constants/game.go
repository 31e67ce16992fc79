package constants

import "time"

// Canvas & Sprite Geometry
const (
	// CanvasWidth is the drawable width in columns
	CanvasWidth = 79

	// CanvasHeight is the drawable height in rows
	CanvasHeight = 21

	// DieWidth is the die footprint width including its border
	DieWidth = 9

	// DieHeight is the die footprint height including its border
	DieHeight = 5
)

// Round Composition
const (
	// MinDice is the fewest dice shown in a round
	MinDice = 2

	// MaxDice is the most dice shown in a round, also the standard layout capacity
	MaxDice = 6

	// MinFace is the lowest die value
	MinFace = 1

	// MaxFace is the highest die value
	MaxFace = 6
)

// Session Timing & Scoring
const (
	// QuizTime is the whole session budget, shared by all rounds
	QuizTime = 30 * time.Second

	// IncorrectPause lets the player read the correct answer after a miss
	IncorrectPause = 2 * time.Second

	// Reward is added per correct answer
	Reward = 4

	// Penalty is subtracted per incorrect answer
	Penalty = 1
)

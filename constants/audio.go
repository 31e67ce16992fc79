package constants

import "time"

// Speaker
const (
	// AudioBufferDuration is the speaker buffer; longer trades latency for fewer underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Correct Cue: two rising notes
const (
	CorrectNote1Duration = 70 * time.Millisecond
	CorrectNote2Duration = 110 * time.Millisecond
	CorrectNote1Freq     = 880.0
	CorrectNote2Freq     = 1320.0
)

// Incorrect Cue
const (
	IncorrectBuzzDuration = 150 * time.Millisecond
	IncorrectBuzzFreq     = 120.0
)

// Timeout Cue
const (
	TimeoutRumbleDuration = 300 * time.Millisecond
)

package constants

// Text Layout (0-indexed columns/rows)
const (
	// PromptX is the column of the answer prompt
	PromptX = 1

	// PromptY places the prompt just below the canvas so dice are never overwritten
	PromptY = CanvasHeight + 1

	// InputY is the row where typed answers are echoed
	InputY = PromptY + 1

	// NoticeY is the row for per-round messages (timeout, incorrect, invalid input)
	NoticeY = InputY + 1

	// IntroY is the first row of the instructions screen
	IntroY = 1
)

// Text Content
const (
	PromptText      = "Enter the sum: "
	StartText       = "Press Enter to begin..."
	InvalidStart    = "Invalid input. Please try again."
	TimeoutFormat   = "You ran out of time! The answer was %d"
	IncorrectFormat = "Incorrect. The answer is %d"
	ReportFormat    = "Correct: %d\nIncorrect: %d\nScore: %d\n"

	// IntroFormat takes quiz seconds, reward, penalty
	IntroFormat = "Add up the sides of all the dice displayed on the screen. " +
		"You have %d seconds to answer as many as possible. " +
		"You get %d points for each correct answer and lose %d point for each incorrect answer."
)

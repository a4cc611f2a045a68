package service

import "errors"

var (
	// ErrInsufficientQuestions means the bank holds fewer questions than
	// the requested mode needs. Starting is rejected rather than degraded.
	ErrInsufficientQuestions = errors.New("not enough questions in the bank")

	// ErrGameFinished means the session already reached a terminal state
	// (or ran out of questions); the client should fetch the result.
	ErrGameFinished = errors.New("game already finished")

	// ErrLifelineUnavailable means lifelines cannot be used in the
	// session's mode.
	ErrLifelineUnavailable = errors.New("lifeline unavailable in this mode")

	// ErrUnknownLifeline means the requested lifeline kind does not exist.
	ErrUnknownLifeline = errors.New("unknown lifeline")

	// ErrInvalidBets means a wager was negative or the wagers exceed the
	// player's current capital.
	ErrInvalidBets = errors.New("invalid bets")

	// ErrBetsRequired means a bet-mode session got a plain answer.
	ErrBetsRequired = errors.New("bet mode expects wagers")

	// ErrBetsNotAllowed means a classic/learning session got wagers.
	ErrBetsNotAllowed = errors.New("this mode expects a plain answer")

	// ErrForbidden means the admin password did not match.
	ErrForbidden = errors.New("forbidden")
)

package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Game flow ─────────────────────────────────────────────────────
	ErrSessionNotFound       ErrCode = "SESSION_NOT_FOUND"
	ErrInsufficientQuestions ErrCode = "INSUFFICIENT_QUESTIONS"
	ErrLifelineUnavailable   ErrCode = "LIFELINE_UNAVAILABLE"
	ErrUnknownLifeline       ErrCode = "UNKNOWN_LIFELINE"
	ErrInvalidBets           ErrCode = "INVALID_BETS"
	ErrGameFinished          ErrCode = "GAME_FINISHED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden ErrCode = "FORBIDDEN"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrSessionNotFound:
		return "No game in progress. Start a new game first."
	case ErrInsufficientQuestions:
		return "The question bank does not hold enough questions for this mode."
	case ErrLifelineUnavailable:
		return "Lifelines are not available in this mode."
	case ErrUnknownLifeline:
		return "Unknown lifeline."
	case ErrGameFinished:
		return "The game is already over."
	case ErrInvalidBets:
		return "Wagers must be non-negative and must not exceed your capital."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrForbidden:
		return "Wrong password."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}

package model

import (
	"time"
)

// GameMode enumerates the playable variants.
type GameMode string

const (
	// ModeClassic climbs the fixed money ladder with lifelines and
	// guaranteed payouts.
	ModeClassic GameMode = "classic"
	// ModeBet starts with the full million and wagers it down per question.
	ModeBet GameMode = "bet"
	// ModeLearning never eliminates on wrong answers and never touches
	// the leaderboard.
	ModeLearning GameMode = "learning"
)

// ParseGameMode maps the wire value to a GameMode, defaulting to classic.
func ParseGameMode(s string) (GameMode, bool) {
	switch GameMode(s) {
	case ModeClassic, ModeBet, ModeLearning:
		return GameMode(s), true
	case "":
		return ModeClassic, true
	}
	return "", false
}

// QuestionCount returns how many questions a session of this mode draws.
func (m GameMode) QuestionCount() int {
	if m == ModeBet {
		return 8
	}
	return 12
}

// Lifeline enumerates the one-shot hints available in classic mode.
// Wire values are the legacy route parameters.
type Lifeline string

const (
	LifelineFiftyFifty Lifeline = "5050"
	LifelinePhone      Lifeline = "phone"
	LifelineAudience   Lifeline = "audience"
)

// ParseLifeline maps the route parameter to a Lifeline.
func ParseLifeline(s string) (Lifeline, bool) {
	switch Lifeline(s) {
	case LifelineFiftyFifty, LifelinePhone, LifelineAudience:
		return Lifeline(s), true
	}
	return "", false
}

// SessionStatus enumerates game session states.
type SessionStatus string

const (
	SessionStatusActive SessionStatus = "active"
	SessionStatusWon    SessionStatus = "won"
	SessionStatusLost   SessionStatus = "lost"
	// SessionStatusFinished terminates a learning-mode run, which is
	// neither won nor lost.
	SessionStatusFinished SessionStatus = "finished"
)

// GameSession is the per-player server-side game state, stored in Redis
// keyed by the opaque player id from the session cookie.
type GameSession struct {
	Nickname      string     `json:"nickname"`
	Mode          GameMode   `json:"mode"`
	Questions     []Question `json:"questions"`
	CurrentIndex  int        `json:"current_index"`
	Money         int        `json:"money"`
	LifelinesUsed []Lifeline `json:"lifelines_used,omitempty"`

	// Shuffle cache for the active question. OptionsIndex records which
	// question the cache belongs to so a page refresh never reshuffles;
	// it is -1 until the first fetch.
	CurrentOptions []string `json:"current_options,omitempty"`
	CorrectAnswer  string   `json:"correct_answer,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	OptionsIndex   int      `json:"options_index"`

	StartedAt    time.Time     `json:"started_at"`
	Status       SessionStatus `json:"status"`
	FinalScore   int           `json:"final_score"`
	EarnedBadges []string      `json:"earned_badges,omitempty"`
}

// Finished reports whether the session reached a terminal state.
func (s *GameSession) Finished() bool {
	return s.Status != SessionStatusActive
}

// LifelineUsed reports whether the given lifeline was already burned.
func (s *GameSession) LifelineUsed(l Lifeline) bool {
	for _, used := range s.LifelinesUsed {
		if used == l {
			return true
		}
	}
	return false
}

// MarkLifelineUsed records a lifeline use. Idempotent.
func (s *GameSession) MarkLifelineUsed(l Lifeline) {
	if !s.LifelineUsed(l) {
		s.LifelinesUsed = append(s.LifelinesUsed, l)
	}
}

// RemainingLifelines returns availability of each lifeline for display.
func (s *GameSession) RemainingLifelines() map[Lifeline]bool {
	return map[Lifeline]bool{
		LifelineFiftyFifty: !s.LifelineUsed(LifelineFiftyFifty),
		LifelinePhone:      !s.LifelineUsed(LifelinePhone),
		LifelineAudience:   !s.LifelineUsed(LifelineAudience),
	}
}

// StartGameRequest is the payload for starting a new game.
type StartGameRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=32"`
	Mode     string `json:"mode" binding:"omitempty,oneof=classic bet learning"`
}

// CheckAnswerRequest is the payload for answering the active question.
// Classic/learning submit Answer; bet mode submits Bets, a mapping from
// option text to the amount wagered on it.
type CheckAnswerRequest struct {
	Answer string         `json:"answer" binding:"omitempty,max=200"`
	Bets   map[string]int `json:"bets" binding:"omitempty"`
}

// ResetScoresRequest is the payload for the admin leaderboard reset.
type ResetScoresRequest struct {
	AdminPass string `json:"admin_pass" binding:"required"`
}

package model

// LeaderboardEntry is one persisted ranking row. The file shape is the
// legacy one ("nick"/"wynik"/"odznaki"/"data") so existing leaderboard
// files keep working.
type LeaderboardEntry struct {
	Nick   string   `json:"nick"`
	Score  int      `json:"wynik"`
	Badges []string `json:"odznaki"`
	Date   string   `json:"data,omitempty"`
}

// Badge display strings, persisted as part of leaderboard entries.
const (
	BadgeChampion    = "🏆 CHAMPION"
	BadgeSpeedRunner = "⚡ SPEED RUNNER"
	BadgeSeniorDev   = "🧠 SENIOR DEV"
	// BadgeStrategist is the fixed badge for finishing a bet-mode run
	// with capital left.
	BadgeStrategist = "💰 STRATEGIST"
)

// LeaderboardDateFormat is the timestamp layout stored in entries.
const LeaderboardDateFormat = "2006-01-02 15:04"

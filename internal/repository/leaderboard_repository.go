package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
)

// MaxLeaderboardEntries caps the persisted ranking.
const MaxLeaderboardEntries = 20

// LeaderboardRepository persists the top-20 ranking as a JSON file.
// Writes are serialized within the process; concurrent writers from other
// processes can still race on the file (known, accepted).
type LeaderboardRepository struct {
	mu   sync.Mutex
	path string
}

// NewLeaderboardRepository creates a LeaderboardRepository over the given file.
func NewLeaderboardRepository(path string) *LeaderboardRepository {
	return &LeaderboardRepository{path: path}
}

// Load returns the persisted entries, best score first.
// A missing file is an empty leaderboard.
func (r *LeaderboardRepository) Load() ([]model.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Append adds an entry, re-sorts by score descending and truncates to the
// top MaxLeaderboardEntries before persisting.
func (r *LeaderboardRepository) Append(entry model.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	sortEntries(entries)
	if len(entries) > MaxLeaderboardEntries {
		entries = entries[:MaxLeaderboardEntries]
	}

	return writeJSONFile(r.path, entries)
}

// Clear wipes the leaderboard.
func (r *LeaderboardRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSONFile(r.path, []model.LeaderboardEntry{})
}

func (r *LeaderboardRepository) load() ([]model.LeaderboardEntry, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.LeaderboardEntry{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	// The file is hand-editable; keep the invariant even if someone
	// scrambled the order.
	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []model.LeaderboardEntry) {
	slices.SortStableFunc(entries, func(a, b model.LeaderboardEntry) int {
		return b.Score - a.Score
	})
}

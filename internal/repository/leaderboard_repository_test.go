package repository_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
)

func newLeaderboard(t *testing.T) (*repository.LeaderboardRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	return repository.NewLeaderboardRepository(path), path
}

func TestLeaderboard_MissingFileIsEmpty(t *testing.T) {
	repo, _ := newLeaderboard(t)

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLeaderboard_AppendKeepsDescendingOrder(t *testing.T) {
	repo, _ := newLeaderboard(t)

	for _, score := range []int{1_000, 500_000, 0, 40_000} {
		err := repo.Append(model.LeaderboardEntry{
			Nick:   fmt.Sprintf("player-%d", score),
			Score:  score,
			Badges: []string{},
		})
		require.NoError(t, err)
	}

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		require.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
	require.Equal(t, "player-500000", entries[0].Nick)
}

func TestLeaderboard_CapsAtTwenty(t *testing.T) {
	repo, _ := newLeaderboard(t)

	for i := 0; i < 25; i++ {
		err := repo.Append(model.LeaderboardEntry{
			Nick:   fmt.Sprintf("player-%d", i),
			Score:  i * 1_000,
			Badges: []string{},
		})
		require.NoError(t, err)
	}

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, repository.MaxLeaderboardEntries)

	// The five weakest scores fell off the bottom.
	require.Equal(t, 24_000, entries[0].Score)
	require.Equal(t, 5_000, entries[len(entries)-1].Score)
}

func TestLeaderboard_TiesKeepInsertionOrder(t *testing.T) {
	repo, _ := newLeaderboard(t)

	require.NoError(t, repo.Append(model.LeaderboardEntry{Nick: "first", Score: 1_000}))
	require.NoError(t, repo.Append(model.LeaderboardEntry{Nick: "second", Score: 1_000}))

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, "first", entries[0].Nick)
	require.Equal(t, "second", entries[1].Nick)
}

func TestLeaderboard_Clear(t *testing.T) {
	repo, path := newLeaderboard(t)

	require.NoError(t, repo.Append(model.LeaderboardEntry{Nick: "player", Score: 1_000}))
	require.NoError(t, repo.Clear())

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Empty(t, entries)

	// A fresh instance over the same file sees the cleared state.
	again := repository.NewLeaderboardRepository(path)
	entries, err = again.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLeaderboard_PersistsAcrossInstances(t *testing.T) {
	repo, path := newLeaderboard(t)

	require.NoError(t, repo.Append(model.LeaderboardEntry{
		Nick:   "player",
		Score:  40_000,
		Badges: []string{model.BadgeSeniorDev},
		Date:   "2026-09-01 12:00",
	}))

	again := repository.NewLeaderboardRepository(path)
	entries, err := again.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "player", entries[0].Nick)
	require.Equal(t, []string{model.BadgeSeniorDev}, entries[0].Badges)
	require.Equal(t, "2026-09-01 12:00", entries[0].Date)
}

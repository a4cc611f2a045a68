package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
	"github.com/milionerzyweb/milionerzy-backend/internal/service"
)

func newLeaderboardService(t *testing.T) (*service.LeaderboardService, *repository.LeaderboardRepository) {
	t.Helper()
	repo := repository.NewLeaderboardRepository(filepath.Join(t.TempDir(), "leaderboard.json"))
	return service.NewLeaderboardService(repo, "secret", zerolog.Nop()), repo
}

func TestLeaderboardService_SubmitStampsDate(t *testing.T) {
	svc, repo := newLeaderboardService(t)

	svc.Submit("tester", 40_000, []string{model.BadgeSeniorDev}, model.ModeClassic)

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "tester", entries[0].Nick)
	require.Equal(t, 40_000, entries[0].Score)
	require.NotEmpty(t, entries[0].Date)

	_, err = time.Parse(model.LeaderboardDateFormat, entries[0].Date)
	require.NoError(t, err, "date %q must match the ranking format", entries[0].Date)
}

func TestLeaderboardService_SubmitSkipsLearningMode(t *testing.T) {
	svc, repo := newLeaderboardService(t)

	svc.Submit("student", 500, nil, model.ModeLearning)

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLeaderboardService_SubmitNormalizesNilBadges(t *testing.T) {
	svc, repo := newLeaderboardService(t)

	svc.Submit("tester", 0, nil, model.ModeBet)

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Badges)
	require.Empty(t, entries[0].Badges)
}

func TestLeaderboardService_ResetRequiresAdminPass(t *testing.T) {
	svc, repo := newLeaderboardService(t)
	svc.Submit("tester", 1_000, nil, model.ModeClassic)

	require.ErrorIs(t, svc.Reset("wrong"), service.ErrForbidden)

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1, "a rejected reset must not clear anything")

	require.NoError(t, svc.Reset("secret"))

	entries, err = repo.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLeaderboardService_TopReturnsBestFirst(t *testing.T) {
	svc, _ := newLeaderboardService(t)

	svc.Submit("low", 1_000, nil, model.ModeClassic)
	svc.Submit("high", 125_000, nil, model.ModeClassic)

	entries, err := svc.Top()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "high", entries[0].Nick)
}

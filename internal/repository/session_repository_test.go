package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
)

func newSessionRepo(t *testing.T, ttl time.Duration) (*repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	rs := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: rs.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return repository.NewSessionRepository(rdb, ttl), rs
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSessionRepo(t, time.Hour)

	sess := &model.GameSession{
		Nickname:     "tester",
		Mode:         model.ModeClassic,
		CurrentIndex: 3,
		Money:        2_000,
		OptionsIndex: -1,
		StartedAt:    time.Now().Truncate(time.Second),
		Status:       model.SessionStatusActive,
		LifelinesUsed: []model.Lifeline{
			model.LifelineFiftyFifty,
		},
	}
	require.NoError(t, repo.Save(ctx, "player-1", sess))

	got, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	require.Equal(t, sess.Nickname, got.Nickname)
	require.Equal(t, sess.Mode, got.Mode)
	require.Equal(t, sess.CurrentIndex, got.CurrentIndex)
	require.Equal(t, sess.Money, got.Money)
	require.Equal(t, sess.LifelinesUsed, got.LifelinesUsed)
	require.True(t, got.LifelineUsed(model.LifelineFiftyFifty))
	require.False(t, got.LifelineUsed(model.LifelinePhone))
}

func TestSessionRepository_MissingSession(t *testing.T) {
	repo, _ := newSessionRepo(t, time.Hour)

	_, err := repo.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_SaveSetsTTL(t *testing.T) {
	ctx := context.Background()
	repo, rs := newSessionRepo(t, 30*time.Minute)

	require.NoError(t, repo.Save(ctx, "player-1", &model.GameSession{Nickname: "tester"}))
	require.Equal(t, 30*time.Minute, rs.TTL("game:session:player-1"))
}

func TestSessionRepository_SessionExpires(t *testing.T) {
	ctx := context.Background()
	repo, rs := newSessionRepo(t, time.Minute)

	require.NoError(t, repo.Save(ctx, "player-1", &model.GameSession{Nickname: "tester"}))

	rs.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "player-1")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSessionRepo(t, time.Hour)

	require.NoError(t, repo.Save(ctx, "player-1", &model.GameSession{Nickname: "tester"}))
	require.NoError(t, repo.Delete(ctx, "player-1"))

	_, err := repo.Get(ctx, "player-1")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Deleting an absent session is not an error.
	require.NoError(t, repo.Delete(ctx, "player-1"))
}

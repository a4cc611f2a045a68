package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
)

// ErrSessionNotFound is returned when no game session exists for a player id.
var ErrSessionNotFound = errors.New("game session not found")

const sessionKeyPrefix = "game:session:"

// SessionRepository stores game sessions in Redis as JSON documents with a
// TTL. An abandoned game simply expires; there is no explicit cleanup.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessionRepository creates a SessionRepository with the given session TTL.
func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

// Get loads the session for a player id.
func (r *SessionRepository) Get(ctx context.Context, playerID string) (*model.GameSession, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess model.GameSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Save persists the session and refreshes its TTL.
func (r *SessionRepository) Save(ctx context.Context, playerID string, sess *model.GameSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.rdb.Set(ctx, sessionKey(playerID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes the session, if any.
func (r *SessionRepository) Delete(ctx context.Context, playerID string) error {
	if err := r.rdb.Del(ctx, sessionKey(playerID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionKey(playerID string) string {
	return sessionKeyPrefix + playerID
}

package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
)

// LeaderboardService submits terminal scores and serves the ranking.
type LeaderboardService struct {
	repo      *repository.LeaderboardRepository
	adminPass string
	log       zerolog.Logger
}

// NewLeaderboardService creates a LeaderboardService.
func NewLeaderboardService(repo *repository.LeaderboardRepository, adminPass string, log zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{
		repo:      repo,
		adminPass: adminPass,
		log:       log.With().Str("component", "leaderboard_service").Logger(),
	}
}

// Submit records a terminal score. Learning-mode sessions are never
// recorded. A persistence failure is logged and swallowed; it must not
// abort the game that produced the score.
func (s *LeaderboardService) Submit(nickname string, score int, badges []string, mode model.GameMode) {
	if mode == model.ModeLearning {
		return
	}

	if badges == nil {
		badges = []string{}
	}

	entry := model.LeaderboardEntry{
		Nick:   nickname,
		Score:  score,
		Badges: badges,
		Date:   time.Now().Format(model.LeaderboardDateFormat),
	}

	if err := s.repo.Append(entry); err != nil {
		s.log.Error().Err(err).
			Str("nick", nickname).
			Int("score", score).
			Msg("Leaderboard write failed, score lost")
	}
}

// Top returns the persisted ranking, best score first.
func (s *LeaderboardService) Top() ([]model.LeaderboardEntry, error) {
	return s.repo.Load()
}

// Reset clears the leaderboard when the admin password matches.
func (s *LeaderboardService) Reset(pass string) error {
	if subtle.ConstantTimeCompare([]byte(pass), []byte(s.adminPass)) != 1 {
		return ErrForbidden
	}

	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}

	s.log.Info().Msg("Leaderboard cleared by admin")
	return nil
}

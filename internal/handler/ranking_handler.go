package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/response"
	"github.com/milionerzyweb/milionerzy-backend/internal/service"
	"github.com/milionerzyweb/milionerzy-backend/internal/validator"
)

// RankingHandler serves the leaderboard and its admin reset.
type RankingHandler struct {
	leaderboard *service.LeaderboardService
	log         zerolog.Logger
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(leaderboard *service.LeaderboardService, log zerolog.Logger) *RankingHandler {
	return &RankingHandler{
		leaderboard: leaderboard,
		log:         log.With().Str("component", "ranking_handler").Logger(),
	}
}

// GetRanking godoc
// GET /api/v1/ranking
// Returns the top-20 leaderboard, best score first.
func (h *RankingHandler) GetRanking(c *gin.Context) {
	scores, err := h.leaderboard.Top()
	if err != nil {
		h.log.Error().Err(err).Msg("Load leaderboard failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"scores": scores})
}

// ResetScores godoc
// POST /api/v1/reset_scores
// Clears the leaderboard when the admin password matches.
func (h *RankingHandler) ResetScores(c *gin.Context) {
	var req model.ResetScoresRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.leaderboard.Reset(req.AdminPass); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		h.log.Error().Err(err).Msg("Reset leaderboard failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

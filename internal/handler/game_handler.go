package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/middleware"
	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
	"github.com/milionerzyweb/milionerzy-backend/internal/response"
	"github.com/milionerzyweb/milionerzy-backend/internal/service"
	"github.com/milionerzyweb/milionerzy-backend/internal/validator"
)

// GameHandler handles the player-facing game flow.
type GameHandler struct {
	gameService *service.GameService
	log         zerolog.Logger
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService *service.GameService, log zerolog.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		log:         log.With().Str("component", "game_handler").Logger(),
	}
}

// StartGame godoc
// POST /api/v1/start
// Begins a new game session for the cookie-identified player.
func (h *GameHandler) StartGame(c *gin.Context) {
	var req model.StartGameRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	mode, ok := model.ParseGameMode(req.Mode)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	err := h.gameService.Start(c.Request.Context(), middleware.GetPlayerID(c), req.Nickname, mode)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientQuestions) {
			response.Fail(c, http.StatusConflict, response.ErrInsufficientQuestions)
			return
		}
		h.log.Error().Err(err).Msg("Start game failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"redirect": "/game"})
}

// GetGame godoc
// GET /api/v1/game
// Returns the active question view, or a redirect to the result once the
// session is over.
func (h *GameHandler) GetGame(c *gin.Context) {
	view, err := h.gameService.CurrentQuestion(c.Request.Context(), middleware.GetPlayerID(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		case errors.Is(err, service.ErrGameFinished):
			response.Success(c, http.StatusOK, gin.H{"status": "finished", "redirect": "/result"})
		default:
			h.log.Error().Err(err).Msg("Get question failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, view)
}

// CheckAnswer godoc
// POST /api/v1/check
// Evaluates the player's submission: {answer} for classic/learning,
// {bets} for bet mode. Unexpected faults degrade to a graceful "fail"
// outcome instead of aborting the game.
func (h *GameHandler) CheckAnswer(c *gin.Context) {
	var req model.CheckAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	playerID := middleware.GetPlayerID(c)
	ctx := c.Request.Context()

	var (
		res *service.AnswerResult
		err error
	)
	if req.Bets != nil {
		res, err = h.gameService.PlaceBets(ctx, playerID, req.Bets)
	} else {
		res, err = h.gameService.Answer(ctx, playerID, req.Answer)
	}

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		case errors.Is(err, service.ErrGameFinished):
			response.Success(c, http.StatusOK, gin.H{"status": "finished", "redirect": "/result"})
		case errors.Is(err, service.ErrInvalidBets):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidBets)
		case errors.Is(err, service.ErrBetsRequired), errors.Is(err, service.ErrBetsNotAllowed):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		default:
			// Whatever broke, the player gets a graceful outcome and a
			// path to the result screen, never a dead game.
			h.log.Error().Err(err).Msg("Answer evaluation failed")
			response.Success(c, http.StatusOK, gin.H{
				"status":   "fail",
				"info":     "A server error occurred, but your game has been saved.",
				"redirect": "/result",
			})
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// UseLifeline godoc
// GET /api/v1/lifeline/:kind
// Resolves a lifeline request; a repeat use answers "used" without
// side effects.
func (h *GameHandler) UseLifeline(c *gin.Context) {
	kind, ok := model.ParseLifeline(c.Param("kind"))
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrUnknownLifeline)
		return
	}

	res, err := h.gameService.Lifeline(c.Request.Context(), middleware.GetPlayerID(c), kind)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		case errors.Is(err, service.ErrGameFinished):
			response.Fail(c, http.StatusConflict, response.ErrGameFinished)
		case errors.Is(err, service.ErrLifelineUnavailable):
			response.Fail(c, http.StatusBadRequest, response.ErrLifelineUnavailable)
		default:
			h.log.Error().Err(err).Str("kind", string(kind)).Msg("Lifeline failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetResult godoc
// GET /api/v1/result
// Returns the session's final standing.
func (h *GameHandler) GetResult(c *gin.Context) {
	res, err := h.gameService.Result(c.Request.Context(), middleware.GetPlayerID(c))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Get result failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, res)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/response"
	"github.com/milionerzyweb/milionerzy-backend/internal/service"
	"github.com/milionerzyweb/milionerzy-backend/internal/validator"
)

// QuestionHandler handles question proposal submissions.
type QuestionHandler struct {
	questionService *service.QuestionService
	log             zerolog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		log:             log.With().Str("component", "question_handler").Logger(),
	}
}

// AddQuestion godoc
// POST /api/v1/add_question
// Stores a candidate question in the pending-review file.
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var req model.AddQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.questionService.Propose(req); err != nil {
		h.log.Error().Err(err).Msg("Store proposal failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"success": true})
}

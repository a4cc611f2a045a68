package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
)

// QuestionService handles question proposal intake. Submitted questions go
// to the pending-review file, never straight into the live bank.
type QuestionService struct {
	proposals *repository.ProposalRepository
	log       zerolog.Logger
}

// NewQuestionService creates a QuestionService.
func NewQuestionService(proposals *repository.ProposalRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		proposals: proposals,
		log:       log.With().Str("component", "question_service").Logger(),
	}
}

// Propose stores a candidate question for review.
func (s *QuestionService) Propose(req model.AddQuestionRequest) error {
	if err := s.proposals.Append(req.ToQuestion()); err != nil {
		return fmt.Errorf("store proposal: %w", err)
	}

	s.log.Info().Str("question", req.Question).Msg("Question proposal received")
	return nil
}

package repository

import (
	"sync"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
)

// ProposalRepository appends submitted questions to the pending-review
// file. Proposals share the bank entry shape but are kept out of the live
// bank until a human promotes them.
type ProposalRepository struct {
	mu   sync.Mutex
	path string
}

// NewProposalRepository creates a ProposalRepository over the given file.
func NewProposalRepository(path string) *ProposalRepository {
	return &ProposalRepository{path: path}
}

// Append adds a proposal to the end of the pending file.
func (r *ProposalRepository) Append(q model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	proposals, err := readQuestionFile(r.path)
	if err != nil {
		return err
	}

	proposals = append(proposals, q)
	return writeJSONFile(r.path, proposals)
}

// LoadAll returns every pending proposal.
func (r *ProposalRepository) LoadAll() ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readQuestionFile(r.path)
}

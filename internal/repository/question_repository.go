package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
)

// QuestionRepository reads the live question bank from a JSON file.
// The file is re-read on every call so hand edits are picked up without
// a restart; a missing file is an empty bank, not an error.
type QuestionRepository struct {
	path string
}

// NewQuestionRepository creates a QuestionRepository over the given file.
func NewQuestionRepository(path string) *QuestionRepository {
	return &QuestionRepository{path: path}
}

// LoadAll returns every question in the bank.
func (r *QuestionRepository) LoadAll() ([]model.Question, error) {
	return readQuestionFile(r.path)
}

// Count returns the number of questions in the bank.
func (r *QuestionRepository) Count() (int, error) {
	qs, err := r.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(qs), nil
}

func readQuestionFile(path string) ([]model.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Question{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var qs []model.Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return qs, nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
)

const bankJSON = `[
    {
        "p": "Which data structure uses FIFO ordering?",
        "odp": ["Queue", "Stack", "Binary tree", "Hash map"],
        "ok": "Queue",
        "info": "A queue serves elements first-in, first-out."
    },
    {
        "p": "What does a 404 HTTP status code mean?",
        "odp": ["Resource not found", "Server error", "Unauthorized", "Request timeout"],
        "ok": "Resource not found",
        "info": ""
    }
]`

func TestQuestionRepository_LoadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(bankJSON), 0o644))

	repo := repository.NewQuestionRepository(path)
	qs, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, qs, 2)

	require.Equal(t, "Which data structure uses FIFO ordering?", qs[0].Text)
	require.Equal(t, []string{"Queue", "Stack", "Binary tree", "Hash map"}, qs[0].Options)
	require.Equal(t, "Queue", qs[0].CorrectOption())

	n, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestQuestionRepository_MissingFileIsEmptyBank(t *testing.T) {
	repo := repository.NewQuestionRepository(filepath.Join(t.TempDir(), "questions.json"))

	qs, err := repo.LoadAll()
	require.NoError(t, err)
	require.Empty(t, qs)
}

func TestQuestionRepository_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repository.NewQuestionRepository(path).LoadAll()
	require.Error(t, err)
}

func TestQuestionRepository_PicksUpHandEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(bankJSON), 0o644))

	repo := repository.NewQuestionRepository(path)
	n, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// The file is re-read on every call, so an edit shows up immediately.
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	n, err = repo.Count()
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestProposalRepository_AppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proposals.json")
	repo := repository.NewProposalRepository(path)

	first := model.AddQuestionRequest{
		Question:   "What does DNS resolve?",
		GoodAnswer: "Names to addresses",
		Bad1:       "Addresses to routes",
		Bad2:       "Ports to services",
		Bad3:       "Certificates to keys",
		Info:       "DNS maps hostnames to IP addresses.",
	}
	require.NoError(t, repo.Append(first.ToQuestion()))
	require.NoError(t, repo.Append(model.Question{
		Text:    "Second proposal",
		Options: []string{"a", "b", "c", "d"},
		Correct: "a",
	}))

	proposals, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	require.Equal(t, "What does DNS resolve?", proposals[0].Text)
	require.Equal(t, "Names to addresses", proposals[0].Options[0])
	require.Equal(t, "Second proposal", proposals[1].Text)

	// Proposals survive a process restart.
	again, err := repository.NewProposalRepository(path).LoadAll()
	require.NoError(t, err)
	require.Len(t, again, 2)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
)

func TestComputeBadges(t *testing.T) {
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		won     bool
		index   int
		money   int
		elapsed time.Duration
		want    []string
	}{
		"fast million win earns all three": {
			won:     true,
			index:   12,
			money:   1_000_000,
			elapsed: 60 * time.Second,
			want:    []string{model.BadgeChampion, model.BadgeSpeedRunner, model.BadgeSeniorDev},
		},
		"slow win skips the speed badge": {
			won:     true,
			index:   12,
			money:   1_000_000,
			elapsed: 10 * time.Minute,
			want:    []string{model.BadgeChampion, model.BadgeSeniorDev},
		},
		"fast loss at the payout threshold": {
			won:     false,
			index:   7,
			money:   40_000,
			elapsed: 30 * time.Second,
			want:    []string{model.BadgeSpeedRunner, model.BadgeSeniorDev},
		},
		"early slow loss earns nothing": {
			won:     false,
			index:   2,
			money:   0,
			elapsed: 5 * time.Minute,
			want:    []string{},
		},
		"instant loss on the first question still gets the speed badge": {
			won:     false,
			index:   0,
			money:   0,
			elapsed: 3 * time.Second,
			want:    []string{model.BadgeSpeedRunner},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sess := &model.GameSession{
				CurrentIndex: tt.index,
				Money:        tt.money,
				StartedAt:    start,
			}
			got := computeBadges(sess, tt.won, start.Add(tt.elapsed))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGuaranteedPayout(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{index: 0, want: 0},
		{index: 1, want: 0},
		{index: 2, want: 1_000},
		{index: 6, want: 1_000},
		{index: 7, want: 40_000},
		{index: 11, want: 40_000},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, guaranteedPayout(tt.index), "index %d", tt.index)
	}
}

func TestSampleQuestions(t *testing.T) {
	bank := make([]model.Question, 30)
	for i := range bank {
		bank[i] = model.Question{Text: string(rune('A' + i))}
	}

	drawn := sampleQuestions(bank, 12)
	require.Len(t, drawn, 12)

	seen := map[string]bool{}
	for _, q := range drawn {
		require.False(t, seen[q.Text])
		seen[q.Text] = true
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/civic-vote/models"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		votes int
		total int
		want  int
	}{
		{"no votes at all", 0, 0, 0},
		{"zero of some", 0, 5, 0},
		{"all", 5, 5, 100},
		{"three quarters", 3, 4, 75},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"exact half rounds up", 1, 8, 13},
		{"half a percent rounds up", 1, 200, 1},
		{"one in a thousand", 1, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.votes, tt.total))
		})
	}
}

func TestTallyEmptyPoll(t *testing.T) {
	poll := models.Poll{
		ID:       "p1",
		Question: "Q?",
		Options: []models.PollOption{
			{ID: "a", Text: "A"},
			{ID: "b", Text: "B"},
		},
	}

	results := Tally(poll)
	assert.Equal(t, "p1", results.PollID)
	assert.Equal(t, 0, results.TotalVotes)
	for _, o := range results.Options {
		assert.Equal(t, 0, o.Percentage)
	}
}

func TestTallyPreservesOptionOrder(t *testing.T) {
	poll := models.Poll{
		ID:         "p1",
		TotalVotes: 10,
		Options: []models.PollOption{
			{ID: "z", Text: "Z", Votes: 1},
			{ID: "a", Text: "A", Votes: 9},
		},
	}

	results := Tally(poll)
	assert.Equal(t, "z", results.Options[0].OptionID)
	assert.Equal(t, 10, results.Options[0].Percentage)
	assert.Equal(t, "a", results.Options[1].OptionID)
	assert.Equal(t, 90, results.Options[1].Percentage)
}

func TestResultsUnknownPoll(t *testing.T) {
	_, err := New().Results("missing")
	var nf *models.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import "github.com/danielhkuo/civic-vote/models"

// Percentage returns votes as a whole percentage of total, rounded half up.
// A zero total yields 0.
func Percentage(votes, total int) int {
	if total <= 0 || votes <= 0 {
		return 0
	}
	// round(votes/total*100) without floating point: (200v + t) / 2t
	return (200*votes + total) / (2 * total)
}

// Tally derives per-option results from a poll snapshot. Nothing here is
// stored; call it on every read.
func Tally(poll models.Poll) models.PollResults {
	results := models.PollResults{
		PollID:     poll.ID,
		Question:   poll.Question,
		TotalVotes: poll.TotalVotes,
		Options:    make([]models.OptionResult, len(poll.Options)),
	}
	for i, opt := range poll.Options {
		results.Options[i] = models.OptionResult{
			OptionID:   opt.ID,
			Text:       opt.Text,
			Votes:      opt.Votes,
			Percentage: Percentage(opt.Votes, poll.TotalVotes),
		}
	}
	return results
}

// Results tallies the current snapshot of pollID
func (s *Store) Results(pollID string) (models.PollResults, error) {
	poll, err := s.Poll(pollID)
	if err != nil {
		return models.PollResults{}, err
	}
	return Tally(poll), nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/civic-vote/auth"
	"github.com/danielhkuo/civic-vote/metrics"
	"github.com/danielhkuo/civic-vote/models"
)

// MinOptions is the smallest number of distinct options a poll may have
const MinOptions = 2

// Store owns every poll. Stored polls are immutable snapshots: a vote
// replaces the affected poll rather than mutating it.
type Store struct {
	mu      sync.RWMutex
	polls   []models.Poll // most recent first
	newID   auth.IDFunc
	metrics *metrics.Metrics
}

// Option configures a Store built by New
type Option func(*Store)

// WithIDFunc overrides the id generator used for polls and options
func WithIDFunc(fn auth.IDFunc) Option {
	return func(s *Store) { s.newID = fn }
}

// WithMetrics attaches counters for created polls and recorded votes
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New returns an empty store. Ids default to random UUIDs.
func New(opts ...Option) *Store {
	s := &Store{newID: auth.NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePoll validates and prepends a new poll with zero votes
func (s *Store) CreatePoll(question string, options []models.OptionInput) (models.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Poll{}, &models.ValidationError{Field: "question", Message: "please enter a question"}
	}

	cleaned := cleanOptions(options)
	if len(cleaned) < MinOptions {
		return models.Poll{}, &models.ValidationError{Field: "options", Message: "please enter at least two options"}
	}

	poll := models.Poll{
		ID:       s.newID(),
		Question: question,
		Options:  make([]models.PollOption, len(cleaned)),
	}
	for i, in := range cleaned {
		poll.Options[i] = models.PollOption{
			ID:    s.newID(),
			Text:  in.Text,
			Image: in.Image,
		}
	}

	s.mu.Lock()
	next := make([]models.Poll, 0, len(s.polls)+1)
	next = append(next, poll)
	next = append(next, s.polls...)
	s.polls = next
	s.mu.Unlock()

	s.metrics.PollCreated()
	slog.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options))

	return poll.Clone(), nil
}

// cleanOptions trims option texts, drops blanks and drops repeated texts
// keeping the first occurrence
func cleanOptions(options []models.OptionInput) []models.OptionInput {
	seen := make(map[string]bool, len(options))
	cleaned := make([]models.OptionInput, 0, len(options))
	for _, opt := range options {
		text := strings.TrimSpace(opt.Text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true

		var image *string
		if opt.Image != nil {
			if img := strings.TrimSpace(*opt.Image); img != "" {
				image = &img
			}
		}
		cleaned = append(cleaned, models.OptionInput{Text: text, Image: image})
	}
	return cleaned
}

// RecordVote adds exactly one vote to optionID in pollID and returns the
// new snapshot of that poll
func (s *Store) RecordVote(pollID, optionID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.indexOf(pollID)
	if pi < 0 {
		return models.Poll{}, &models.NotFoundError{Kind: "poll", ID: pollID}
	}
	old := s.polls[pi]

	oi := -1
	for i, opt := range old.Options {
		if opt.ID == optionID {
			oi = i
			break
		}
	}
	if oi < 0 {
		return models.Poll{}, &models.NotFoundError{Kind: "option", ID: optionID}
	}

	updated := old
	updated.Options = make([]models.PollOption, len(old.Options))
	copy(updated.Options, old.Options)
	updated.Options[oi].Votes++
	updated.TotalVotes++

	next := make([]models.Poll, len(s.polls))
	copy(next, s.polls)
	next[pi] = updated
	s.polls = next

	s.metrics.VoteRecorded()
	slog.Debug("vote recorded", "poll_id", pollID, "option_id", optionID, "total_votes", updated.TotalVotes)

	return updated.Clone(), nil
}

// Polls returns copies of every poll, most recent first
func (s *Store) Polls() []models.Poll {
	s.mu.RLock()
	snapshot := s.polls
	s.mu.RUnlock()

	out := make([]models.Poll, len(snapshot))
	for i, p := range snapshot {
		out[i] = p.Clone()
	}
	return out
}

// Poll returns a copy of a single poll
func (s *Store) Poll(id string) (models.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Poll{}, &models.NotFoundError{Kind: "poll", ID: id}
	}
	return s.polls[i].Clone(), nil
}

// Summary totals polls and votes for the admin dashboard
func (s *Store) Summary() models.StoreSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := models.StoreSummary{PollCount: len(s.polls)}
	for _, p := range s.polls {
		summary.TotalVotes += p.TotalVotes
	}
	return summary
}

// indexOf must be called with mu held
func (s *Store) indexOf(id string) int {
	for i, p := range s.polls {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pollstore holds polls and records votes against them.

# Creating Polls

	store := pollstore.New(pollstore.WithMetrics(m))
	poll, err := store.CreatePoll("Best color?", []models.OptionInput{
		{Text: "Red"}, {Text: "Blue"},
	})

The question is trimmed and must not be blank. Option texts are trimmed,
blanks and repeats are dropped, and at least two must remain; otherwise a
*models.ValidationError is returned and nothing is stored. New polls are
prepended, so Polls lists the most recent first.

# Voting

	poll, err := store.RecordVote(pollID, optionID)

Unknown poll or option ids return *models.NotFoundError and leave the store
untouched. A vote produces a new snapshot of the poll; readers holding an
earlier copy never see a half-applied vote. Votes are serialised, so
concurrent callers never lose an increment.

# Results

Percentages are derived on every read and never stored:

	results := pollstore.Tally(poll)
	pct := pollstore.Percentage(3, 4) // 75

A poll with no votes reports 0% for every option.
*/
package pollstore

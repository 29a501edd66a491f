// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package elections is the static election catalog and the featured
// election ballot.
package elections

import (
	"time"

	"github.com/danielhkuo/civic-vote/models"
)

// FeaturedElectionID is the election the featured poll belongs to
const FeaturedElectionID = "election-1"

var catalog = []models.Election{
	{
		ID:        "election-1",
		Title:     "2024 Community Leadership Election",
		Type:      "Local Leadership",
		StartDate: date(2024, time.November, 1),
		EndDate:   date(2024, time.November, 5),
		Location:  "District 5",
		Status:    models.ElectionActive,
	},
	{
		ID:        "election-2",
		Title:     "City Budget Referendum",
		Type:      "Referendum",
		StartDate: date(2024, time.November, 15),
		EndDate:   date(2024, time.December, 1),
		Location:  "Citywide",
		Status:    models.ElectionUpcoming,
	},
	{
		ID:        "election-3",
		Title:     "School Board Special Election",
		Type:      "Board Election",
		StartDate: date(2024, time.December, 10),
		EndDate:   date(2024, time.December, 15),
		Location:  "District 5",
		Status:    models.ElectionUpcoming,
	},
	{
		ID:        "past-election-1",
		Title:     "2023 City Council Election",
		Type:      "Local Government",
		StartDate: date(2023, time.June, 5),
		EndDate:   date(2023, time.June, 10),
		Location:  "District 5",
		Status:    models.ElectionPast,
	},
	{
		ID:        "past-election-2",
		Title:     "Community Center Funding Initiative",
		Type:      "Referendum",
		StartDate: date(2023, time.October, 1),
		EndDate:   date(2023, time.October, 15),
		Location:  "Citywide",
		Status:    models.ElectionPast,
	},
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// All returns a copy of the catalog
func All() []models.Election {
	out := make([]models.Election, len(catalog))
	copy(out, catalog)
	return out
}

// Name resolves an election id to its title
func Name(id string) (string, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e.Title, true
		}
	}
	return "", false
}

// NameOr resolves id, falling back to the id itself for unknown elections
func NameOr(id string) string {
	if name, ok := Name(id); ok {
		return name
	}
	return id
}

// FeaturedBallot returns the question and candidate options of the
// featured election, ready for pollstore.Store.CreatePoll
func FeaturedBallot() (string, []models.OptionInput) {
	photo := func(s string) *string { return &s }
	return "Student Council President", []models.OptionInput{
		{Text: "Jane Doe", Image: photo("https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=800&h=800&fit=crop")},
		{Text: "John Smith", Image: photo("https://images.unsplash.com/photo-1581092795360-fd1ca04f0952?w=800&h=800&fit=crop")},
		{Text: "Maria Rodriguez", Image: photo("https://images.unsplash.com/photo-1506863530036-1efeddceb993?w=800&h=800&fit=crop")},
		{Text: "Michael Chen", Image: photo("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=800&fit=crop")},
	}
}

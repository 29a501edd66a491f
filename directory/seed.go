// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/civic-vote/models"
)

// DemoEmail is the profile assigned by provider logins
const DemoEmail = "jane@example.com"

// DemoUsers returns the two accounts the demo ships with
func DemoUsers() []models.UserProfile {
	return []models.UserProfile{
		{
			ID:                 "1",
			FullName:           "Jane Smith",
			Email:              DemoEmail,
			Phone:              "555-123-4567",
			Address:            "123 Main St, Anytown, AN 12345",
			District:           "District 5",
			VerificationStatus: models.StatusVerified,
			RegistrationDate:   time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			VotingHistory: []models.VotingRecord{
				{
					ElectionID:     "past-election-1",
					ElectionName:   "2023 City Council Election",
					Date:           time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC),
					CandidateVoted: "candidate-2",
				},
			},
		},
		{
			ID:                 "2",
			FullName:           "John Doe",
			Email:              "john@example.com",
			Phone:              "555-987-6543",
			Address:            "456 Oak Ave, Othertown, OT 67890",
			District:           "District 3",
			VerificationStatus: models.StatusVerified,
			RegistrationDate:   time.Date(2023, time.March, 20, 0, 0, 0, 0, time.UTC),
			VotingHistory:      []models.VotingRecord{},
		},
	}
}

// SeedDemoUsers inserts the demo accounts, skipping any that exist
func (d *Directory) SeedDemoUsers(ctx context.Context) error {
	for _, u := range DemoUsers() {
		err := d.Insert(ctx, u)
		if errors.Is(err, ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			return err
		}
		slog.Info("demo user seeded", "user_id", u.ID, "email", u.Email)
	}
	return nil
}

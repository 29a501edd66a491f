// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/civic-vote/auth"
	"github.com/danielhkuo/civic-vote/models"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Directory is the set of all known users, stored in SQL
type Directory struct {
	db *sql.DB
}

func New(db *sql.DB) *Directory {
	return &Directory{db: db}
}

const selectUser = `
	SELECT id, email, full_name, phone, address, district,
	       verification_status, id_document, registration_date, voting_history
	FROM app_user
`

// FindByEmail looks a user up case-insensitively
func (d *Directory) FindByEmail(ctx context.Context, email string) (models.UserProfile, error) {
	row := d.db.QueryRowContext(ctx, selectUser+`WHERE email = $1`, auth.NormalizeEmail(email))
	return scanUser(row)
}

// FindByID looks a user up by id
func (d *Directory) FindByID(ctx context.Context, id string) (models.UserProfile, error) {
	row := d.db.QueryRowContext(ctx, selectUser+`WHERE id = $1`, id)
	return scanUser(row)
}

// Insert adds a new user. A taken email returns ErrDuplicateEmail.
func (d *Directory) Insert(ctx context.Context, u models.UserProfile) error {
	history, err := encodeHistory(u.VotingHistory)
	if err != nil {
		return err
	}

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO app_user (id, email, full_name, phone, address, district,
		                      verification_status, id_document, registration_date, voting_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, u.ID, auth.NormalizeEmail(u.Email), u.FullName, u.Phone, u.Address, u.District,
		string(u.VerificationStatus), u.IDDocument, formatTime(u.RegistrationDate), history)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Update replaces every mutable column of an existing user
func (d *Directory) Update(ctx context.Context, u models.UserProfile) error {
	history, err := encodeHistory(u.VotingHistory)
	if err != nil {
		return err
	}

	res, err := d.db.ExecContext(ctx, `
		UPDATE app_user
		SET email = $2, full_name = $3, phone = $4, address = $5, district = $6,
		    verification_status = $7, id_document = $8, voting_history = $9
		WHERE id = $1
	`, u.ID, auth.NormalizeEmail(u.Email), u.FullName, u.Phone, u.Address, u.District,
		string(u.VerificationStatus), u.IDDocument, history)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user. Used to undo a registration that could not be
// persisted to the session slot.
func (d *Directory) Delete(ctx context.Context, id string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (models.UserProfile, error) {
	var u models.UserProfile
	var status, registered, history string
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Address, &u.District,
		&status, &u.IDDocument, &registered, &history)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.VerificationStatus = models.VerificationStatus(status)
	u.RegistrationDate, err = time.Parse(time.RFC3339Nano, registered)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("bad registration_date for user %s: %w", u.ID, err)
	}
	if err := json.Unmarshal([]byte(history), &u.VotingHistory); err != nil {
		return models.UserProfile{}, fmt.Errorf("bad voting_history for user %s: %w", u.ID, err)
	}
	if u.VotingHistory == nil {
		u.VotingHistory = []models.VotingRecord{}
	}
	return u, nil
}

func encodeHistory(history []models.VotingRecord) (string, error) {
	if history == nil {
		history = []models.VotingRecord{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("failed to encode voting history: %w", err)
	}
	return string(b), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

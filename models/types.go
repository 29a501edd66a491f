// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"io"
	"time"
)

// VerificationStatus is the identity-verification state of a user
type VerificationStatus string

// Verification status constants
const (
	StatusUnverified VerificationStatus = "unverified"
	StatusPending    VerificationStatus = "pending"
	StatusVerified   VerificationStatus = "verified"
)

// Valid reports whether s is one of the three known states
func (s VerificationStatus) Valid() bool {
	switch s {
	case StatusUnverified, StatusPending, StatusVerified:
		return true
	default:
		return false
	}
}

// Login provider constants
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// Request types

// OptionInput is the single shape accepted for new poll options
type OptionInput struct {
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
}

type CreatePollRequest struct {
	Question string        `json:"question"`
	Options  []OptionInput `json:"options"`
}

type RecordVoteRequest struct {
	OptionID string `json:"option_id"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	District string `json:"district,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries a shallow merge: nil fields are left untouched
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	District *string `json:"district,omitempty"`
}

type ConfirmVoteRequest struct {
	ElectionID  string `json:"election_id"`
	CandidateID string `json:"candidate_id"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

// Document is an uploaded identity document
type Document struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Response types

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ListPollsResponse struct {
	Polls []Poll `json:"polls"`
}

type ListElectionsResponse struct {
	Elections []Election `json:"elections"`
}

// Domain types

type Poll struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Options    []PollOption `json:"options"`
	TotalVotes int          `json:"total_votes"`
}

type PollOption struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
	Votes int     `json:"votes"`
}

// Clone returns a deep copy so callers can never alias store state
func (p Poll) Clone() Poll {
	c := p
	c.Options = make([]PollOption, len(p.Options))
	for i, opt := range p.Options {
		c.Options[i] = opt
		if opt.Image != nil {
			img := *opt.Image
			c.Options[i].Image = &img
		}
	}
	return c
}

// Tally types

type OptionResult struct {
	OptionID   string `json:"option_id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type PollResults struct {
	PollID     string         `json:"poll_id"`
	Question   string         `json:"question"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
}

type StoreSummary struct {
	PollCount  int `json:"poll_count"`
	TotalVotes int `json:"total_votes"`
}

// Account types

type UserProfile struct {
	ID                 string             `json:"id"`
	FullName           string             `json:"full_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone,omitempty"`
	Address            string             `json:"address,omitempty"`
	District           string             `json:"district,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	IDDocument         string             `json:"id_document,omitempty"`
	RegistrationDate   time.Time          `json:"registration_date"`
	VotingHistory      []VotingRecord     `json:"voting_history"`
}

// Clone returns a copy with its own voting history slice
func (u UserProfile) Clone() UserProfile {
	c := u
	c.VotingHistory = make([]VotingRecord, len(u.VotingHistory))
	copy(c.VotingHistory, u.VotingHistory)
	return c
}

type VotingRecord struct {
	ElectionID     string    `json:"election_id"`
	ElectionName   string    `json:"election_name"`
	Date           time.Time `json:"date"`
	CandidateVoted string    `json:"candidate_voted,omitempty"`
}

type Election struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
}

// Election status constants
const (
	ElectionUpcoming = "upcoming"
	ElectionActive   = "active"
	ElectionPast     = "past"
)

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

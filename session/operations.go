// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/danielhkuo/civic-vote/auth"
	"github.com/danielhkuo/civic-vote/directory"
	"github.com/danielhkuo/civic-vote/models"
)

// Register creates an unverified profile and makes it the current session
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	var out models.UserProfile
	err := s.run(ctx, OpRegister, func() error {
		fullName := strings.TrimSpace(req.FullName)
		if fullName == "" {
			return &models.ValidationError{Field: "full_name", Message: "full name is required"}
		}
		email, err := validEmail(req.Email)
		if err != nil {
			return err
		}

		_, err = s.cfg.Directory.FindByEmail(ctx, email)
		if err == nil {
			return &models.ConflictError{Field: "email", Value: email}
		}
		if !errors.Is(err, directory.ErrNotFound) {
			return err
		}

		profile := models.UserProfile{
			ID:                 s.cfg.NewID(),
			FullName:           fullName,
			Email:              email,
			Phone:              strings.TrimSpace(req.Phone),
			Address:            strings.TrimSpace(req.Address),
			District:           strings.TrimSpace(req.District),
			VerificationStatus: models.StatusUnverified,
			RegistrationDate:   s.cfg.Now().UTC(),
			VotingHistory:      []models.VotingRecord{},
		}

		err = s.cfg.Directory.Insert(ctx, profile)
		if errors.Is(err, directory.ErrDuplicateEmail) {
			return &models.ConflictError{Field: "email", Value: email}
		}
		if err != nil {
			return err
		}

		if err := s.activate(ctx, profile); err != nil {
			if derr := s.cfg.Directory.Delete(context.WithoutCancel(ctx), profile.ID); derr != nil {
				slog.Error("failed to undo registration", "user_id", profile.ID, "error", derr)
			}
			return err
		}

		slog.Info("user registered", "user_id", profile.ID)
		out = profile.Clone()
		return nil
	})
	return out, err
}

// Login looks the user up by email. The credential is not checked.
func (s *Session) Login(ctx context.Context, email, credential string) (models.UserProfile, error) {
	var out models.UserProfile
	err := s.run(ctx, OpLogin, func() error {
		profile, err := s.cfg.Directory.FindByEmail(ctx, email)
		if errors.Is(err, directory.ErrNotFound) {
			return models.ErrBadCredentials
		}
		if err != nil {
			return err
		}
		if err := s.activate(ctx, profile); err != nil {
			return err
		}

		slog.Info("user logged in", "user_id", profile.ID)
		out = profile.Clone()
		return nil
	})
	return out, err
}

// LoginWithProvider signs in through an external provider, which always
// resolves to the demo profile
func (s *Session) LoginWithProvider(ctx context.Context, provider string) (models.UserProfile, error) {
	var out models.UserProfile
	err := s.run(ctx, OpLoginProvider, func() error {
		if !auth.ValidProvider(provider) {
			return &models.ValidationError{Field: "provider", Message: "provider must be one of: google, facebook"}
		}

		profile, err := s.cfg.Directory.FindByEmail(ctx, s.cfg.DemoEmail)
		if errors.Is(err, directory.ErrNotFound) {
			return &models.AuthError{Reason: provider + " login failed"}
		}
		if err != nil {
			return err
		}
		if err := s.activate(ctx, profile); err != nil {
			return err
		}

		slog.Info("user logged in", "user_id", profile.ID, "provider", provider)
		out = profile.Clone()
		return nil
	})
	return out, err
}

// Logout drops the current session immediately and removes its stored copy.
// It does not fail when nobody is logged in.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Swap(nil)
	err := s.clearSlot(ctx)

	// the session is already gone; the delay only shapes timing
	_ = s.cfg.Latency.wait(ctx, OpLogout)

	s.cfg.Metrics.SessionOp(string(OpLogout), err)
	if err != nil {
		return err
	}
	if prev != nil {
		slog.Info("user logged out", "user_id", prev.ID)
	}
	return nil
}

// clearSlot removes the stored session. If the delete fails the slot is
// overwritten with a payload restore discards, so a restart never brings
// the old profile back.
func (s *Session) clearSlot(ctx context.Context) error {
	err := s.cfg.Slot.Clear(ctx)
	if err == nil {
		return nil
	}
	slog.Warn("failed to clear stored session, overwriting it", "error", err)

	if serr := s.cfg.Slot.Save(context.WithoutCancel(ctx), []byte(loggedOutPayload)); serr != nil {
		slog.Error("failed to overwrite stored session", "clear_error", err, "save_error", serr)
		return fmt.Errorf("failed to clear stored session: %w", errors.Join(err, serr))
	}
	return nil
}

// SubmitIdentityVerification stores the document and moves the profile to
// pending. A verified profile keeps its status.
func (s *Session) SubmitIdentityVerification(ctx context.Context, doc models.Document) (models.UserProfile, error) {
	var out models.UserProfile
	err := s.run(ctx, OpVerify, func() error {
		cur, err := s.requireCurrent()
		if err != nil {
			return err
		}

		ref, err := s.cfg.Documents.Put(ctx, doc)
		if err != nil {
			return err
		}

		next := cur.Clone()
		next.IDDocument = ref
		if next.VerificationStatus != models.StatusVerified {
			next.VerificationStatus = models.StatusPending
		}
		if err := s.commit(ctx, cur, next); err != nil {
			return err
		}

		slog.Info("identity verification submitted", "user_id", next.ID, "status", next.VerificationStatus)
		out = next.Clone()
		return nil
	})
	return out, err
}

// UpdateProfile shallow-merges the provided fields into the current profile
func (s *Session) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.UserProfile, error) {
	var out models.UserProfile
	err := s.run(ctx, OpUpdateProfile, func() error {
		cur, err := s.requireCurrent()
		if err != nil {
			return err
		}

		next := cur.Clone()
		if upd.FullName != nil {
			name := strings.TrimSpace(*upd.FullName)
			if name == "" {
				return &models.ValidationError{Field: "full_name", Message: "full name cannot be blank"}
			}
			next.FullName = name
		}
		if upd.Email != nil {
			email, err := validEmail(*upd.Email)
			if err != nil {
				return err
			}
			next.Email = email
		}
		if upd.Phone != nil {
			next.Phone = strings.TrimSpace(*upd.Phone)
		}
		if upd.Address != nil {
			next.Address = strings.TrimSpace(*upd.Address)
		}
		if upd.District != nil {
			next.District = strings.TrimSpace(*upd.District)
		}

		if err := s.commit(ctx, cur, next); err != nil {
			return err
		}

		slog.Info("profile updated", "user_id", next.ID)
		out = next.Clone()
		return nil
	})
	return out, err
}

// ConfirmVote appends a record of a vote to the current user's history
func (s *Session) ConfirmVote(ctx context.Context, electionID, candidateID string) (models.UserProfile, error) {
	var out models.UserProfile
	err := s.run(ctx, OpConfirmVote, func() error {
		cur, err := s.requireCurrent()
		if err != nil {
			return err
		}

		electionID = strings.TrimSpace(electionID)
		if electionID == "" {
			return &models.ValidationError{Field: "election_id", Message: "election id is required"}
		}

		next := cur.Clone()
		next.VotingHistory = append(next.VotingHistory, models.VotingRecord{
			ElectionID:     electionID,
			ElectionName:   s.cfg.ElectionName(electionID),
			Date:           s.cfg.Now().UTC(),
			CandidateVoted: strings.TrimSpace(candidateID),
		})
		if err := s.commit(ctx, cur, next); err != nil {
			return err
		}

		slog.Info("vote confirmed", "user_id", next.ID, "election_id", electionID)
		out = next.Clone()
		return nil
	})
	return out, err
}

// RequestPasswordReset checks that email belongs to a known user. Sending
// the reset message is left to the caller.
func (s *Session) RequestPasswordReset(ctx context.Context, email string) error {
	return s.run(ctx, OpPasswordReset, func() error {
		profile, err := s.cfg.Directory.FindByEmail(ctx, email)
		if errors.Is(err, directory.ErrNotFound) {
			return &models.NotFoundError{Kind: "user", ID: auth.NormalizeEmail(email)}
		}
		if err != nil {
			return err
		}
		slog.Info("password reset requested", "user_id", profile.ID)
		return nil
	})
}

func validEmail(raw string) (string, error) {
	email := auth.NormalizeEmail(raw)
	if email == "" {
		return "", &models.ValidationError{Field: "email", Message: "email is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", &models.ValidationError{Field: "email", Message: "email is not valid"}
	}
	return email, nil
}

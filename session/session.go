// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/civic-vote/auth"
	"github.com/danielhkuo/civic-vote/directory"
	"github.com/danielhkuo/civic-vote/elections"
	"github.com/danielhkuo/civic-vote/kv"
	"github.com/danielhkuo/civic-vote/metrics"
	"github.com/danielhkuo/civic-vote/models"
)

// loggedOutPayload is written to the slot when it cannot be cleared.
// It has no id, so restore ignores it.
const loggedOutPayload = `{}`

// Directory is the store of all known users
type Directory interface {
	FindByEmail(ctx context.Context, email string) (models.UserProfile, error)
	Insert(ctx context.Context, u models.UserProfile) error
	Update(ctx context.Context, u models.UserProfile) error
	Delete(ctx context.Context, id string) error
}

// Slot is the durable home of the serialized current session
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, value []byte) error
	Clear(ctx context.Context) error
}

// DocumentStore accepts uploaded identity documents
type DocumentStore interface {
	Put(ctx context.Context, doc models.Document) (string, error)
}

type Config struct {
	Directory Directory
	Slot      Slot
	Documents DocumentStore

	// Latency delays each operation before it takes effect. Nil means no delay.
	Latency Latency
	// DemoEmail is the profile provider logins resolve to
	DemoEmail string

	Now          func() time.Time
	NewID        auth.IDFunc
	ElectionName func(electionID string) string
	Metrics      *metrics.Metrics
}

// Session owns the single current-user record. Operations are serialised;
// Current may be called concurrently with any of them.
type Session struct {
	cfg     Config
	mu      sync.Mutex
	current atomic.Pointer[models.UserProfile]
}

// New builds a session and restores any persisted profile from the slot
func New(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Directory == nil || cfg.Slot == nil || cfg.Documents == nil {
		return nil, errors.New("session: directory, slot and documents are required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = auth.PrefixedIDs("user")
	}
	if cfg.ElectionName == nil {
		cfg.ElectionName = elections.NameOr
	}
	if cfg.DemoEmail == "" {
		cfg.DemoEmail = directory.DemoEmail
	}

	s := &Session{cfg: cfg}
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) restore(ctx context.Context) error {
	data, err := s.cfg.Slot.Load(ctx)
	if errors.Is(err, kv.ErrEmpty) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil || profile.ID == "" || !profile.VerificationStatus.Valid() {
		slog.Warn("discarding unreadable stored session", "error", err)
		return nil
	}
	if profile.VotingHistory == nil {
		profile.VotingHistory = []models.VotingRecord{}
	}
	s.current.Store(&profile)
	slog.Info("session restored", "user_id", profile.ID)
	return nil
}

// Current returns a copy of the active profile
func (s *Session) Current() (models.UserProfile, bool) {
	p := s.current.Load()
	if p == nil {
		return models.UserProfile{}, false
	}
	return p.Clone(), true
}

// run serialises an operation, applies its latency and records the outcome
func (s *Session) run(ctx context.Context, op Op, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cfg.Latency.wait(ctx, op)
	if err == nil {
		err = fn()
	}

	s.cfg.Metrics.SessionOp(string(op), err)
	if err != nil {
		slog.Warn("session operation failed", "op", op, "error", err)
	}
	return err
}

// persist writes a profile to the slot
func (s *Session) persist(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.cfg.Slot.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// commit persists next to the slot and mirrors it into the directory,
// restoring prev in the slot if the mirror fails. next becomes current
// only once both writes succeed. A user missing from the directory ends
// the session.
func (s *Session) commit(ctx context.Context, prev, next models.UserProfile) error {
	if err := s.persist(ctx, next); err != nil {
		return err
	}

	if err := s.cfg.Directory.Update(ctx, next); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			// the directory no longer knows this user; end the session
			s.current.Store(nil)
			if cerr := s.clearSlot(ctx); cerr != nil {
				slog.Error("failed to drop orphaned session", "user_id", prev.ID, "error", cerr)
			}
			slog.Warn("session user no longer exists, logged out", "user_id", prev.ID)
			return &models.AuthError{Reason: "session user no longer exists"}
		}

		if rerr := s.persist(context.WithoutCancel(ctx), prev); rerr != nil {
			slog.Error("failed to roll back session slot", "user_id", prev.ID, "error", rerr)
		}
		if errors.Is(err, directory.ErrDuplicateEmail) {
			return &models.ConflictError{Field: "email", Value: next.Email}
		}
		return err
	}

	s.current.Store(&next)
	return nil
}

// activate makes profile the current session
func (s *Session) activate(ctx context.Context, profile models.UserProfile) error {
	if err := s.persist(ctx, profile); err != nil {
		return err
	}
	s.current.Store(&profile)
	return nil
}

// requireCurrent returns a private copy of the active profile or AuthError
func (s *Session) requireCurrent() (models.UserProfile, error) {
	p := s.current.Load()
	if p == nil {
		return models.UserProfile{}, models.ErrNotAuthenticated
	}
	return p.Clone(), nil
}

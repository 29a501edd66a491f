// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import "context"

// SessionKey is the well-known key of the current-session slot
const SessionKey = "session/currentUser"

// Slot is a single durable value under a fixed key
type Slot struct {
	store *Store
	key   []byte
}

func (s *Store) Slot(key string) *Slot {
	return &Slot{store: s, key: []byte(key)}
}

// Load returns the stored value, or ErrEmpty when nothing is stored
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Get(s.key)
}

func (s *Slot) Save(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.Set(Pair{Key: s.key, Value: value})
}

// Clear removes the stored value. It ignores ctx so that clearing a slot
// can never be skipped.
func (s *Slot) Clear(_ context.Context) error {
	return s.store.Delete(s.key)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/danielhkuo/civic-vote/auth"
	"github.com/danielhkuo/civic-vote/directory"
	"github.com/danielhkuo/civic-vote/kv"
	"github.com/danielhkuo/civic-vote/models"
)

type memSlot struct {
	mu      sync.Mutex
	data     []byte
	saveErr  error
	clearErr error
	saves    int
}

func (s *memSlot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, kv.ErrEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *memSlot) Save(ctx context.Context, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.data = append([]byte(nil), value...)
	return nil
}

func (s *memSlot) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearErr != nil {
		return s.clearErr
	}
	s.data = nil
	return nil
}

func (s *memSlot) stored() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

type memDirectory struct {
	mu        sync.Mutex
	users     map[string]models.UserProfile
	updateErr error
}

func newMemDirectory(users ...models.UserProfile) *memDirectory {
	d := &memDirectory{users: map[string]models.UserProfile{}}
	for _, u := range users {
		u.Email = auth.NormalizeEmail(u.Email)
		d.users[u.ID] = u.Clone()
	}
	return d
}

func (d *memDirectory) FindByEmail(ctx context.Context, email string) (models.UserProfile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	email = auth.NormalizeEmail(email)
	for _, u := range d.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return models.UserProfile{}, directory.ErrNotFound
}

func (d *memDirectory) Insert(ctx context.Context, u models.UserProfile) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.users {
		if existing.Email == auth.NormalizeEmail(u.Email) {
			return directory.ErrDuplicateEmail
		}
	}
	d.users[u.ID] = u.Clone()
	return nil
}

func (d *memDirectory) Update(ctx context.Context, u models.UserProfile) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.updateErr != nil {
		return d.updateErr
	}
	if _, ok := d.users[u.ID]; !ok {
		return directory.ErrNotFound
	}
	for id, existing := range d.users {
		if id != u.ID && existing.Email == auth.NormalizeEmail(u.Email) {
			return directory.ErrDuplicateEmail
		}
	}
	d.users[u.ID] = u.Clone()
	return nil
}

func (d *memDirectory) Delete(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.users, id)
	return nil
}

func (d *memDirectory) get(id string) (models.UserProfile, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[id]
	return u, ok
}

func (d *memDirectory) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.users)
}

type memDocs struct {
	mu   sync.Mutex
	n    int
	docs map[string][]byte
	err  error
}

func (m *memDocs) Put(ctx context.Context, doc models.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	body, err := io.ReadAll(doc.Body)
	if err != nil {
		return "", err
	}
	m.n++
	ref := fmt.Sprintf("doc/%d", m.n)
	if m.docs == nil {
		m.docs = map[string][]byte{}
	}
	m.docs[ref] = body
	return ref, nil
}

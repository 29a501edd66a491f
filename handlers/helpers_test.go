// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/civic-vote/directory"
	"github.com/danielhkuo/civic-vote/kv"
	"github.com/danielhkuo/civic-vote/models"
	"github.com/danielhkuo/civic-vote/pollstore"
	"github.com/danielhkuo/civic-vote/session"
	"github.com/danielhkuo/civic-vote/testutil"
)

// setupSession builds a session over sqlite and in-memory badger with the
// demo users seeded
func setupSession(t *testing.T) (*session.Session, *kv.Store) {
	t.Helper()

	dir := directory.New(testutil.SetupTestDB(t))
	if err := dir.SeedDemoUsers(context.Background()); err != nil {
		t.Fatalf("Failed to seed demo users: %v", err)
	}
	store := testutil.SetupTestKV(t)

	sess, err := session.New(context.Background(), session.Config{
		Directory: dir,
		Slot:      store.Slot(kv.SessionKey),
		Documents: store.Documents(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return sess, store
}

// createTestPoll adds a poll directly to the store
func createTestPoll(t *testing.T, store *pollstore.Store, question string, options ...string) models.Poll {
	t.Helper()

	inputs := make([]models.OptionInput, len(options))
	for i, text := range options {
		inputs[i] = models.OptionInput{Text: text}
	}
	poll, err := store.CreatePoll(question, inputs)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// optionID finds an option by its text
func optionID(t *testing.T, poll models.Poll, text string) string {
	t.Helper()
	for _, opt := range poll.Options {
		if opt.Text == text {
			return opt.ID
		}
	}
	t.Fatalf("Option %q not found in poll %s", text, poll.ID)
	return ""
}

// multipartRequest builds a POST with a single file field
func multipartRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

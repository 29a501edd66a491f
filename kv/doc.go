// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kv provides durable key-value storage on BadgerDB.

	store, err := kv.Open(".civicvote", slog.Default())
	defer store.Close()

An empty data directory opens an in-memory store, which is what tests use.

# Session Slot

The current session lives in one slot under a fixed key:

	slot := store.Slot(kv.SessionKey)
	data, err := slot.Load(ctx) // kv.ErrEmpty when logged out
	err = slot.Save(ctx, data)
	err = slot.Clear(ctx)

Clear ignores context cancellation.

# Documents

Identity documents are stored with their metadata in one transaction:

	ref, err := store.Documents().Put(ctx, models.Document{...})
	info, body, err := store.Documents().Get(ctx, ref)

Refs look like "doc/<uuid>". Empty or oversized uploads return
*models.ValidationError.
*/
package kv

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/danielhkuo/civic-vote/auth"
	"github.com/danielhkuo/civic-vote/models"
)

const (
	docPrefix     = "doc/"
	docMetaPrefix = "docmeta/"

	// DefaultMaxDocumentSize caps identity uploads at 10 MiB
	DefaultMaxDocumentSize = 10 << 20
)

// DocumentInfo is the metadata kept alongside an uploaded document
type DocumentInfo struct {
	Ref         string    `json:"ref"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Documents stores uploaded identity documents and hands back opaque refs
type Documents struct {
	store   *Store
	newID   auth.IDFunc
	maxSize int
	now     func() time.Time
}

func (s *Store) Documents() *Documents {
	return &Documents{
		store:   s,
		newID:   auth.NewID,
		maxSize: DefaultMaxDocumentSize,
		now:     time.Now,
	}
}

// Put stores the document body and metadata atomically and returns its ref
func (d *Documents) Put(ctx context.Context, doc models.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc.Body == nil {
		return "", &models.ValidationError{Field: "document", Message: "document is required"}
	}

	body, err := io.ReadAll(io.LimitReader(doc.Body, int64(d.maxSize)+1))
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if len(body) == 0 {
		return "", &models.ValidationError{Field: "document", Message: "document is empty"}
	}
	if len(body) > d.maxSize {
		return "", &models.ValidationError{Field: "document", Message: "document is too large"}
	}

	ref := docPrefix + d.newID()
	info := DocumentInfo{
		Ref:         ref,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Size:        len(body),
		UploadedAt:  d.now().UTC(),
	}
	meta, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("failed to encode document metadata: %w", err)
	}

	err = d.store.Set(
		Pair{Key: []byte(ref), Value: body},
		Pair{Key: metaKey(ref), Value: meta},
	)
	if err != nil {
		return "", fmt.Errorf("failed to store document: %w", err)
	}
	return ref, nil
}

// Get returns the metadata and body for ref
func (d *Documents) Get(ctx context.Context, ref string) (DocumentInfo, []byte, error) {
	if err := ctx.Err(); err != nil {
		return DocumentInfo{}, nil, err
	}
	if !strings.HasPrefix(ref, docPrefix) {
		return DocumentInfo{}, nil, &models.NotFoundError{Kind: "document", ID: ref}
	}

	meta, err := d.store.Get(metaKey(ref))
	if errors.Is(err, ErrEmpty) {
		return DocumentInfo{}, nil, &models.NotFoundError{Kind: "document", ID: ref}
	}
	if err != nil {
		return DocumentInfo{}, nil, err
	}
	var info DocumentInfo
	if err := json.Unmarshal(meta, &info); err != nil {
		return DocumentInfo{}, nil, fmt.Errorf("failed to decode document metadata: %w", err)
	}

	body, err := d.store.Get([]byte(ref))
	if err != nil {
		return DocumentInfo{}, nil, fmt.Errorf("failed to read document body: %w", err)
	}
	return info, body, nil
}

func metaKey(ref string) []byte {
	return []byte(docMetaPrefix + strings.TrimPrefix(ref, docPrefix))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/civic-vote/models"
)

// IDFunc generates globally-unique opaque identifiers
type IDFunc func() string

// NewID returns a random UUIDv4 string
func NewID() string {
	return uuid.NewString()
}

// PrefixedIDs returns an IDFunc whose ids carry the given prefix
// e.g. "user-6f1c..."
func PrefixedIDs(prefix string) IDFunc {
	return func() string {
		return prefix + "-" + uuid.NewString()
	}
}

// NormalizeEmail lowercases and trims an email so lookups are
// case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidProvider reports whether name is a supported external login provider
func ValidProvider(name string) bool {
	switch name {
	case models.ProviderGoogle, models.ProviderFacebook:
		return true
	default:
		return false
	}
}

package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used for the public identifiers of donors, pledges, payments, etc.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewClientUUID returns an RFC 4122 v4 UUID string. The server falls back
// to this when a client omits its own idempotency token.
func NewClientUUID() string { return uuid.NewString() }

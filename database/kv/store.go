// Package kv provides the durable key-value layer backing session records,
// the lawyer application ledger, onboarding flags, and bookmark sets.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the minimal contract the session and ledger layers persist through.
// Callers treat read failures as "no data" and write failures as best effort.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// SetWithTTL stores the value under key with an expiry.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

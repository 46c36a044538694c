// Package store persists the favorites document and server identity behind
// a small injectable key/value backend.
package store

import "errors"

// ErrKeyNotFound is returned by Backend.Get when no value exists for a key.
var ErrKeyNotFound = errors.New("store: key not found")

// Backend is the minimal persistence interface the store needs. Production
// uses Badger; tests use the in-memory implementation. Values are opaque
// byte blobs written whole on every mutation.
type Backend interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the value for key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Close releases backend resources.
	Close() error
}

package state

import "errors"

// Common store errors.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("key cannot be empty")
)

// KeyValueStore is a flat string-keyed byte store.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Location describes where values live, for display.
	Location() string
}

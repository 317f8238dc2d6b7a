// Package kvstore provides the key-value byte store backing the admin panel.
// Values are opaque blobs keyed by fixed strings, mirroring the browser
// local-storage model the panel was designed around.
package kvstore

import "errors"

// ErrKeyNotFound is returned by Get when the key has never been set
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal key-value byte store
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value
	Set(key string, value []byte) error

	// Delete removes key; removing an absent key is not an error
	Delete(key string) error
}

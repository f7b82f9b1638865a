// Package metadata stores small key/value records of the client in the local
// SQLite database. The sqlite token store keeps the auth token here.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

package tokenstore

import "context"

// TokenStore reads, writes and removes the persisted auth token.
type TokenStore interface {
	// Get returns the stored token. ok is false when no token is stored;
	// that is not an error.
	Get(ctx context.Context) (token string, ok bool, err error)

	// Set persists token, replacing any previous value.
	Set(ctx context.Context, token string) error

	// Remove deletes the stored token. Removing an absent token succeeds.
	Remove(ctx context.Context) error
}

// Package credstore abstracts where the anti-forgery token lives between
// requests. The HTTP layer reads the token fresh per request and writes back
// whatever the API hands out; the concrete transport — process memory or a
// sqlite file that survives restarts — is an implementation choice, not part
// of the contract.
package credstore

import "context"

// Store holds the current anti-forgery token.
type Store interface {
	// Token returns the saved token, or "" when none is saved.
	Token(ctx context.Context) (string, error)

	// SetToken replaces the saved token.
	SetToken(ctx context.Context, token string) error

	// Clear forgets the saved token.
	Clear(ctx context.Context) error
}

package session

import "errors"

var (
	// ErrIncompleteResponse means the API answered 2xx but the body was
	// missing the user or the account record.
	ErrIncompleteResponse = errors.New("response missing user or account")

	// ErrNoUser means an identity update was requested with no user loaded.
	ErrNoUser = errors.New("no user loaded")
)

// Package session maps opaque client-held tokens to authenticated user ids.
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a token does not resolve to a session
var ErrNoSession = errors.New("no active session")

// Store is the session-token to user-id mapping. The token is the only
// thing the client holds; the store is the authority on who it belongs to.
type Store interface {
	// Get resolves a token to a user id, or ErrNoSession
	Get(ctx context.Context, token string) (uint, error)
	// Set binds a token to a user id
	Set(ctx context.Context, token string, userID uint) error
	// Clear removes the binding for a token. Clearing an unknown token
	// is not an error.
	Clear(ctx context.Context, token string) error
}

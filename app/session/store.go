// Package session tracks authenticated browser sessions. The cookie holds a
// signed token wrapping an opaque session id; the id resolves to a user id
// through a server-side store, so deleting the store entry revokes the
// session no matter what the client still presents.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Save(ctx context.Context, id string, userID uint, ttl time.Duration) error
	// Lookup returns ErrNotFound for unknown or expired ids.
	Lookup(ctx context.Context, id string) (uint, error)
	Delete(ctx context.Context, id string) error
}

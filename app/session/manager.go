package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Manager binds the signed cookie to the server-side store and owns the
// cookie policy. Handlers never touch the cookie or the store directly.
type Manager struct {
	Store      Store
	Signer     *Signer
	CookieName string
	TTL        time.Duration
}

func NewManager(store Store, signer *Signer, cookieName string, ttl time.Duration) *Manager {
	return &Manager{Store: store, Signer: signer, CookieName: cookieName, TTL: ttl}
}

// Establish creates a fresh session for userID and sets the cookie on w.
func (m *Manager) Establish(ctx context.Context, w http.ResponseWriter, userID uint) error {
	id := uuid.NewString()
	if err := m.Store.Save(ctx, id, userID, m.TTL); err != nil {
		return err
	}
	token, err := m.Signer.Sign(id)
	if err != nil {
		_ = m.Store.Delete(ctx, id)
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve returns the user id behind the request's session cookie.
// Missing, tampered, expired, and revoked cookies all come back ErrNotFound.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (uint, error) {
	c, err := r.Cookie(m.CookieName)
	if err != nil {
		return 0, ErrNotFound
	}
	id, err := m.Signer.Parse(c.Value)
	if err != nil {
		return 0, ErrNotFound
	}
	return m.Store.Lookup(ctx, id)
}

// Destroy revokes the request's session and expires the cookie. Returns
// ErrNotFound when there was nothing to destroy.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	c, err := r.Cookie(m.CookieName)
	if err != nil {
		return ErrNotFound
	}
	id, err := m.Signer.Parse(c.Value)
	if err != nil {
		return ErrNotFound
	}
	if _, err := m.Store.Lookup(ctx, id); err != nil {
		return err
	}
	if err := m.Store.Delete(ctx, id); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

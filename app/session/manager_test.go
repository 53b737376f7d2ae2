package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	signer := &Signer{Secret: []byte("test-secret"), Issuer: "recipe-shelf", TTL: time.Hour}
	return NewManager(NewMemoryStore(), signer, "recipe_shelf_session", time.Hour)
}

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestEstablishResolve(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(ctx, rec, 42))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "recipe_shelf_session", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)

	userID, err := m.Resolve(ctx, requestWithCookies(t, rec))
	require.NoError(t, err)
	require.EqualValues(t, 42, userID)
}

func TestResolveWithoutCookie(t *testing.T) {
	m := testManager(t)
	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	_, err := m.Resolve(context.Background(), req)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolveTamperedToken(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(ctx, rec, 42))

	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	c := rec.Result().Cookies()[0]
	c.Value += "tampered"
	req.AddCookie(c)

	_, err := m.Resolve(ctx, req)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolveForeignSignature(t *testing.T) {
	m := testManager(t)
	other := &Signer{Secret: []byte("other-secret"), Issuer: "recipe-shelf", TTL: time.Hour}
	token, err := other.Sign("some-session-id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	req.AddCookie(&http.Cookie{Name: "recipe_shelf_session", Value: token})

	_, err = m.Resolve(context.Background(), req)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDestroyRevokes(t *testing.T) {
	m := testManager(t)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(ctx, rec, 42))
	req := requestWithCookies(t, rec)

	out := httptest.NewRecorder()
	require.NoError(t, m.Destroy(ctx, out, req))

	// expired cookie written back
	cleared := out.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Negative(t, cleared[0].MaxAge)

	// a replayed original cookie is dead even though the token still verifies
	_, err := m.Resolve(ctx, req)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, m.Destroy(ctx, httptest.NewRecorder(), req), ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "id", 7, time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err := s.Lookup(ctx, "id")
	require.ErrorIs(t, err, ErrNotFound)
}

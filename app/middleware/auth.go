package middleware

import (
	"context"
	"net/http"

	"recipe-shelf/app/session"
)

type ctxKey int

const UserIDKey ctxKey = 1

type Auth struct{ Sessions *session.Manager }

// RequireSession resolves the session cookie and stashes the user id in the
// request context; requests without a live session get 401 with the fixed
// body the API contract promises.
func (a *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.Sessions.Resolve(r.Context(), r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized."}`))
			return
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

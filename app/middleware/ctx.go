package middleware

import "context"

// UserID returns the session user id placed by RequireSession, or 0 when
// the request carried no authenticated session.
func UserID(ctx context.Context) uint {
	if v := ctx.Value(UserIDKey); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/nlog"
	"github.com/Zitteraal/chesskeep/internal/session"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// UserIDFrom extracts the authenticated user id set by AuthMiddleware.
func UserIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok && v != ""
}

// UsernameFrom extracts the authenticated username set by AuthMiddleware.
func UsernameFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usernameKey).(string)
	return v, ok && v != ""
}

// AuthMiddleware validates the session cookie and injects the bound identity
// into the request context. A missing, expired or corrupt session yields 401;
// it is never treated as a server fault.
func AuthMiddleware(store sessions.Store, logger nlog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Get(r, session.CookieName)
			if err != nil || sess.IsNew {
				writeError(w, logger, common.ErrUnauthenticated, "invalid_input")
				return
			}

			userID, ok1 := sess.Values[session.KeyUserID].(string)
			username, ok2 := sess.Values[session.KeyUsername].(string)
			if !ok1 || !ok2 || userID == "" {
				writeError(w, logger, common.ErrUnauthenticated, "invalid_input")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Package session implements cookie-backed server-side sessions as
// gorilla/sessions stores: a durable gorm-backed store and an in-memory
// store for non-persistent deployments.
//
// The cookie only ever carries an opaque token, signed with securecookie;
// identity lives server-side against the token.
package session

import (
	"encoding/base32"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// CookieName is the session cookie written to clients.
const CookieName = "chesskeep_session"

// TTLSeconds is the fixed session lifetime: 24 hours from issue, no sliding
// renewal.
const TTLSeconds = 24 * 60 * 60

// Keys used in sessions.Session.Values for the bound identity.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
)

// Destroyer is implemented by stores that can invalidate a server-side
// session by token. Destroying an unknown token is not an error.
type Destroyer interface {
	Destroy(token string) error
}

// Bind rebinds sess to a freshly generated token carrying the given identity.
// Whatever token the client presented is destroyed first and never reused, so
// an attacker-chosen identifier can never become an authenticated one.
func Bind(r *http.Request, w http.ResponseWriter, store sessions.Store, sess *sessions.Session, userID, username string) error {
	if sess.ID != "" {
		if d, ok := store.(Destroyer); ok {
			if err := d.Destroy(sess.ID); err != nil {
				return err
			}
		}
		sess.ID = ""
	}
	sess.Values[KeyUserID] = userID
	sess.Values[KeyUsername] = username
	return sess.Save(r, w)
}

// newToken returns an unpredictable session identifier.
func newToken() string {
	return strings.TrimRight(
		base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}

func defaultOptions(secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   TTLSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

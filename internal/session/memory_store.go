package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

type memorySession struct {
	userID    string
	username  string
	expiresAt time.Time
}

// MemoryStore keeps sessions in a process-local map. Every session is lost
// on restart and nothing is shared across processes; use it only for
// development or tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession

	Codecs  []securecookie.Codec
	Options *sessions.Options
}

// NewMemoryStore builds a volatile store signing cookies with keyPairs.
func NewMemoryStore(secure bool, keyPairs ...[]byte) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		Codecs:   securecookie.CodecsFromPairs(keyPairs...),
		Options:  defaultOptions(secure),
	}
}

// Get returns the session from the registry, caching it per request.
func (s *MemoryStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie; missing, corrupt or
// expired state yields a fresh anonymous session.
func (s *MemoryStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	opts := *s.Options
	sess.Options = &opts
	sess.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}
	var token string
	if err := securecookie.DecodeMulti(name, c.Value, &token, s.Codecs...); err != nil {
		return sess, nil
	}

	s.mu.RLock()
	stored, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return sess, nil
	}
	if time.Now().After(stored.expiresAt) {
		_ = s.Destroy(token)
		return sess, nil
	}

	sess.ID = token
	sess.IsNew = false
	sess.Values[KeyUserID] = stored.userID
	sess.Values[KeyUsername] = stored.username
	return sess, nil
}

// Save persists the session and writes the cookie; a negative MaxAge
// destroys it.
func (s *MemoryStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			_ = s.Destroy(sess.ID)
			sess.ID = ""
		}
		http.SetCookie(w, sessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = newToken()
	}

	userID, _ := sess.Values[KeyUserID].(string)
	username, _ := sess.Values[KeyUsername].(string)

	s.mu.Lock()
	s.sessions[sess.ID] = memorySession{
		userID:    userID,
		username:  username,
		expiresAt: time.Now().Add(time.Duration(sess.Options.MaxAge) * time.Second),
	}
	s.mu.Unlock()

	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

// Destroy forgets the token. Idempotent.
func (s *MemoryStore) Destroy(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

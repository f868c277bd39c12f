package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zitteraal/chesskeep/internal/entity"
)

// GormStore keeps session state in the sessions table, so sessions survive
// process restarts and are shared by every process on the same database.
type GormStore struct {
	db      *gorm.DB
	Codecs  []securecookie.Codec
	Options *sessions.Options
}

// NewGormStore builds a durable store signing cookies with keyPairs.
func NewGormStore(db *gorm.DB, secure bool, keyPairs ...[]byte) *GormStore {
	return &GormStore{
		db:      db,
		Codecs:  securecookie.CodecsFromPairs(keyPairs...),
		Options: defaultOptions(secure),
	}
}

// Get returns the session from the registry, caching it per request.
func (s *GormStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, corrupt or
// expired session comes back as a fresh anonymous one, never as an error.
func (s *GormStore) New(r *http.Request, name string) (*sessions.Session, error) {
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

	var row entity.Session
	if err := s.db.Where("token = ?", token).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sess, nil
		}
		return sess, err
	}
	if time.Now().After(row.ExpiresAt) {
		_ = s.Destroy(token)
		return sess, nil
	}

	sess.ID = token
	sess.IsNew = false
	sess.Values[KeyUserID] = row.UserID
	sess.Values[KeyUsername] = row.Username
	return sess, nil
}

// Save persists the session and writes the cookie. A negative MaxAge
// destroys the session. A session with no ID gets a fresh token; expiry is
// fixed at save time and not renewed afterwards.
func (s *GormStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.Destroy(sess.ID); err != nil {
				return err
			}
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
	now := time.Now()
	row := entity.Session{
		Token:     sess.ID,
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(sess.Options.MaxAge) * time.Second),
	}
	// Upsert: a regenerated session inserts, a re-save of an existing token
	// overwrites its row.
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

// Destroy drops the session row. Idempotent.
func (s *GormStore) Destroy(token string) error {
	return s.db.Delete(&entity.Session{}, "token = ?", token).Error
}

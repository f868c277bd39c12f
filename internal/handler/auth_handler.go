package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/nlog"
	"github.com/Zitteraal/chesskeep/internal/service"
	"github.com/Zitteraal/chesskeep/internal/session"
)

type authReqFields struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type identityResponse struct {
	Username string `json:"username"`
}

// AuthHandler manages user registration, authentication and session teardown.
type AuthHandler struct {
	authService service.AuthService
	store       sessions.Store
	logger      nlog.Logger
}

func NewAuthHandler(authService service.AuthService, store sessions.Store, logger nlog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		logger:      logger,
	}
}

// Register creates the account and then binds a session. The session token
// is regenerated even if the client already presented one.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request authReqFields
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, h.logger, common.ErrInvalidInput, "invalid_input")
		return
	}

	user, err := h.authService.Register(request.Username, request.Password)
	if err != nil {
		writeError(w, h.logger, err, "invalid_input")
		return
	}

	sess, _ := h.store.Get(r, session.CookieName)
	if err := session.Bind(r, w, h.store, sess, user.ID, user.Username); err != nil {
		writeError(w, h.logger, err, "invalid_input")
		return
	}

	writeJSON(w, http.StatusCreated, identityResponse{Username: user.Username})
}

// Login verifies the credentials and then binds a session under a fresh
// token, exactly as Register does.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request authReqFields
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, h.logger, common.ErrInvalidInput, "invalid_input")
		return
	}
	if request.Username == "" || request.Password == "" {
		writeError(w, h.logger, common.ErrInvalidInput, "invalid_input")
		return
	}

	user, err := h.authService.Login(request.Username, request.Password)
	if err != nil {
		writeError(w, h.logger, err, "invalid_input")
		return
	}

	sess, _ := h.store.Get(r, session.CookieName)
	if err := session.Bind(r, w, h.store, sess, user.ID, user.Username); err != nil {
		writeError(w, h.logger, err, "invalid_input")
		return
	}

	writeJSON(w, http.StatusOK, identityResponse{Username: user.Username})
}

// Logout destroys the session. Clearing an already-invalid token succeeds
// the same way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.store.Get(r, session.CookieName)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		writeError(w, h.logger, err, "invalid_input")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports the authenticated identity. The auth middleware has already
// validated the session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := UsernameFrom(r.Context())
	if !ok {
		writeError(w, h.logger, common.ErrUnauthenticated, "invalid_input")
		return
	}
	writeJSON(w, http.StatusOK, identityResponse{Username: username})
}

package handler

import (
	"io"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/Zitteraal/chesskeep/internal/nlog"
)

// RouterConfig carries everything the routing layer needs; it is built once
// at boot and never mutated afterwards.
type RouterConfig struct {
	Status *StatusHandler
	Auth   *AuthHandler
	Games  *GameHandler

	Store      sessions.Store
	Logger     nlog.Logger
	CORSOrigin string    // empty disables CORS headers
	AccessLog  io.Writer // nil disables access logging
}

// NewRouter assembles the HTTP surface. Authenticated routes sit behind the
// session-validating middleware; everything else is open.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", cfg.Status.Status).Methods("GET")
	api.HandleFunc("/register", cfg.Auth.Register).Methods("POST")
	api.HandleFunc("/login", cfg.Auth.Login).Methods("POST")
	api.HandleFunc("/logout", cfg.Auth.Logout).Methods("POST")

	authed := api.PathPrefix("").Subrouter()
	authed.Use(AuthMiddleware(cfg.Store, cfg.Logger))
	authed.HandleFunc("/me", cfg.Auth.Me).Methods("GET")
	authed.HandleFunc("/import", cfg.Games.Import).Methods("POST")
	authed.HandleFunc("/games", cfg.Games.List).Methods("GET")

	var h http.Handler = r
	if cfg.AccessLog != nil {
		h = ghandlers.LoggingHandler(cfg.AccessLog, h)
	}
	if cfg.CORSOrigin != "" {
		h = ghandlers.CORS(
			ghandlers.AllowedOrigins([]string{cfg.CORSOrigin}),
			ghandlers.AllowedMethods([]string{"GET", "POST"}),
			ghandlers.AllowedHeaders([]string{"Content-Type"}),
			ghandlers.AllowCredentials(),
		)(h)
	}
	return h
}

// Package handler exposes the HTTP JSON surface and maps service errors onto
// stable machine-readable codes. Raw error detail never reaches the client;
// unexpected failures are logged server-side and surfaced as "internal".
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/nlog"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError converts err into the JSON error body for its taxonomy entry.
// invalidCode lets the import path report invalid_payload where the auth
// paths report invalid_input.
func writeError(w http.ResponseWriter, logger nlog.Logger, err error, invalidCode string) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody{invalidCode})
	case errors.Is(err, common.ErrDuplicateUsername):
		writeJSON(w, http.StatusConflict, errorBody{"username_taken"})
	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{"invalid_credentials"})
	case errors.Is(err, common.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody{"not_authenticated"})
	case errors.Is(err, common.ErrUnavailable):
		logger.Logf("storage unavailable: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{"unavailable"})
	default:
		logger.Logf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{"internal"})
	}
}

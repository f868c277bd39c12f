package handler

import "net/http"

type statusResponse struct {
	OK   bool   `json:"ok"`
	Mode string `json:"mode"`
}

// StatusHandler reports liveness and the configured storage mode.
type StatusHandler struct {
	mode string
}

func NewStatusHandler(mode string) *StatusHandler {
	return &StatusHandler{mode: mode}
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{OK: true, Mode: h.mode})
}

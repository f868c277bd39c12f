package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Zitteraal/chesskeep/internal/common"
	"github.com/Zitteraal/chesskeep/internal/entity"
	"github.com/Zitteraal/chesskeep/internal/nlog"
	"github.com/Zitteraal/chesskeep/internal/service"
)

type importedGame struct {
	PGN  string     `json:"pgn"`
	FENs any        `json:"fens"`
	Date *time.Time `json:"date"`
}

type importRequest struct {
	Games []importedGame `json:"games"`
}

// GameHandler manages bulk import and retrieval of the caller's games.
type GameHandler struct {
	gameService service.GameService
	logger      nlog.Logger
}

func NewGameHandler(gameService service.GameService, logger nlog.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logger,
	}
}

// Import inserts every record of the payload in one transaction. A payload
// whose games field is missing or not an array fails with invalid_payload
// and inserts nothing.
func (h *GameHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, h.logger, common.ErrUnauthenticated, "invalid_payload")
		return
	}

	var request importRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Games == nil {
		writeError(w, h.logger, common.ErrInvalidInput, "invalid_payload")
		return
	}

	imports := make([]entity.GameImport, 0, len(request.Games))
	for _, g := range request.Games {
		in := entity.GameImport{
			PGN:       g.PGN,
			Positions: g.FENs,
		}
		if g.Date != nil {
			in.CreatedAt = *g.Date
		}
		imports = append(imports, in)
	}

	count, err := h.gameService.Import(userID, imports)
	if err != nil {
		writeError(w, h.logger, err, "invalid_payload")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}

// List returns the caller's games, newest first.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeError(w, h.logger, common.ErrUnauthenticated, "invalid_payload")
		return
	}

	games, err := h.gameService.List(userID)
	if err != nil {
		writeError(w, h.logger, err, "invalid_payload")
		return
	}
	if games == nil {
		games = []entity.Game{}
	}

	writeJSON(w, http.StatusOK, map[string][]entity.Game{"games": games})
}

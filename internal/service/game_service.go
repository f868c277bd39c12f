package service

import (
	"github.com/Zitteraal/chesskeep/internal/entity"
	"github.com/Zitteraal/chesskeep/internal/nlog"
	"github.com/Zitteraal/chesskeep/internal/repository"
)

// Service used for bulk import and retrieval of game records.
type GameService interface {
	Import(ownerID string, imports []entity.GameImport) (int, error) // All-or-nothing bulk insert
	List(ownerID string) ([]entity.Game, error)                      // Newest first
}

type gameService struct {
	games  repository.GameRepository
	logger nlog.Logger
}

func NewGameService(games repository.GameRepository, logger nlog.Logger) GameService {
	return &gameService{
		games:  games,
		logger: logger,
	}
}

func (g *gameService) Import(ownerID string, imports []entity.GameImport) (int, error) {
	count, err := g.games.CreateBatch(ownerID, imports)
	if err != nil {
		return 0, err
	}
	g.logger.Logf("imported %d games for user %s", count, ownerID)
	return count, nil
}

func (g *gameService) List(ownerID string) ([]entity.Game, error) {
	return g.games.ListByOwner(ownerID)
}

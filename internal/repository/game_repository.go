package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zitteraal/chesskeep/internal/entity"
)

// GameRepository persists imported game records. Batches are all-or-nothing:
// a partial import is never observable, whatever fails mid-way.
type GameRepository interface {
	CreateBatch(ownerID string, imports []entity.GameImport) (int, error) // Inserts every record in one transaction, returns the count
	ListByOwner(ownerID string) ([]entity.Game, error)                    // Newest first
}

// Implementation of the repository on a gorm database handle.
type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) GameRepository {
	return &GormGameRepository{db}
}

// CreateBatch normalizes and inserts every record inside a single
// transaction. Normalization runs per record inside the transaction so that
// one bad record rolls the whole batch back.
//
// The transaction deliberately ignores request cancellation: once started it
// either commits fully or rolls back fully.
func (r *GormGameRepository) CreateBatch(ownerID string, imports []entity.GameImport) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range imports {
			fens, err := entity.NormalizePositions(in.Positions)
			if err != nil {
				return err
			}
			game := entity.Game{
				ID:        uuid.New().String(),
				OwnerID:   ownerID,
				PGN:       in.PGN,
				FENs:      fens,
				CreatedAt: in.CreatedAt,
			}
			if game.CreatedAt.IsZero() {
				game.CreatedAt = time.Now()
			}
			if err := tx.Omit(clause.Associations).Create(&game).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, translate(err)
	}
	return len(imports), nil
}

func (r *GormGameRepository) ListByOwner(ownerID string) ([]entity.Game, error) {
	var games []entity.Game
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}

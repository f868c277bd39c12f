package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Game is one imported game record: a PGN transcript plus the JSON-encoded
// sequence of FEN position snapshots. Records are write-once; they are only
// ever created through a bulk import and read back afterwards.
type Game struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	OwnerID   string         `gorm:"not null;index" json:"-"`
	PGN       string         `json:"pgn"`
	FENs      datatypes.JSON `gorm:"not null" json:"fens"`
	CreatedAt time.Time      `gorm:"not null;index" json:"date"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// GameImport is one record of a bulk import before normalization. Positions
// holds whatever the caller sent for the fens field; NormalizePositions turns
// it into the canonical stored encoding. A zero CreatedAt means "now",
// a non-zero one preserves a historical import date.
type GameImport struct {
	PGN       string
	Positions any
	CreatedAt time.Time
}

package entity

import "time"

// Session is one server-side authenticated session. The token is the opaque
// identifier carried by the client cookie; identity is denormalized onto the
// row so validation is a single lookup.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;index"`
	Username  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

package entity

import "time"

// User is a registered account. The password hash never leaves the server,
// so it is excluded from every JSON encoding.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`
}

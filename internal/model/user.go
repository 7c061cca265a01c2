package model

import (
	"strings"
	"time"
)

// User stores Telegram user metadata and the incoming message counter.
// Profile fields are written once on first contact and never refreshed.
type User struct {
	ID            uint  `gorm:"primaryKey"`
	TelegramID    int64 `gorm:"uniqueIndex"`
	Username      string
	FirstName     string
	LastName      string
	MessagesCount int `gorm:"default:0"`
	CreatedAt     time.Time
}

// DisplayName joins first and last name, skipping an empty last name.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

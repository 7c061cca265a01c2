package model

import "time"

// Message directions.
const (
	DirectionIncoming = "incoming" // user → admin
	DirectionOutgoing = "outgoing" // admin → user
)

// Message is one relayed message. Rows are append-only: the bot never
// updates or deletes history.
type Message struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	User      User `gorm:"foreignKey:UserID"`
	Text      string
	Direction string `gorm:"index"`
	CreatedAt time.Time
}

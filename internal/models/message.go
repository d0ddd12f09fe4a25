package models

import (
	"time"
)

// MaxMessageLen is the upper bound on message text length.
const MaxMessageLen = 140

// Message is a short text post owned by exactly one user.
// Messages are immutable after creation; there is no edit operation.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:varchar(140);not null" json:"text"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Liked indicates whether the current requesting user liked this message (computed)
	Liked bool `gorm:"->;-:migration" json:"liked"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
}

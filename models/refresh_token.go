package models

import "time"

// RefreshToken rows are removed together with their user (ON DELETE CASCADE).
type RefreshToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

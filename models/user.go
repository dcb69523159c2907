package models

import (
	"time"
)

type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleUser  UserRole = "user"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Role      UserRole  `json:"role" gorm:"default:'user'"`
	CreatedAt time.Time `json:"created_at"`
	Disabled  bool      `json:"disabled" gorm:"default:false"`

	Articles      []Article      `json:"-" gorm:"foreignKey:AuthorID"`
	Comments      []Comment      `json:"-" gorm:"foreignKey:UserID"`
	Likes         []Like         `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

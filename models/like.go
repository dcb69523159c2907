package models

import "time"

// Like carries a composite unique index: at most one row per
// (article_id, user_id) pair. Toggling is implemented on top of it.
type Like struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_user"`
	CreatedAt time.Time `json:"created_at"`

	Article *Article `json:"-" gorm:"foreignKey:ArticleID"`
	User    *User    `json:"-" gorm:"foreignKey:UserID"`
}

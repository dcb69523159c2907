package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id"`
	UserID    uint      `json:"user_id"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	Article *Article `json:"-" gorm:"foreignKey:ArticleID"`
	User    *User    `json:"-" gorm:"foreignKey:UserID"`
}

package models

import "time"

type Article struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	ImageURL    string    `json:"image_url" gorm:"size:9999"`
	Text        string    `json:"text" gorm:"type:text"`
	CategoryID  uint      `json:"category_id"`
	AuthorID    uint      `json:"author_id"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Views       int       `json:"views" gorm:"default:0"`
	ReadTime    int       `json:"read_time"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Author   *User     `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:ArticleID"`
	Likes    []Like    `json:"-" gorm:"foreignKey:ArticleID"`
}

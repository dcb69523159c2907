package models

import "time"

// Draft is an unpublished working copy. The table exists in the schema but
// no endpoint serves it yet.
type Draft struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"size:255"`
	ImageURL   string    `json:"image_url" gorm:"size:255"`
	Text       string    `json:"text" gorm:"type:text"`
	CategoryID uint      `json:"category_id"`
	AuthorID   uint      `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

package models

import "time"

// Analytics is a denormalized per-article rollup. No write path populates
// it yet; the table is kept for reporting jobs to fill in.
type Analytics struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	ArticleID     uint      `json:"article_id"`
	Views         int       `json:"views" gorm:"default:0"`
	Likes         int       `json:"likes" gorm:"default:0"`
	CommentsCount int       `json:"comments_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
}

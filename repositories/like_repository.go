package repositories

import (
	"errors"
	"time"

	"github.com/aledanee/blotch/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Toggle(articleID, userID uint) (*models.Like, bool, error)
	GetByArticle(articleID uint) ([]models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle runs the check-then-act sequence in a single transaction with a
// row lock, so two concurrent toggles for the same (article, user) pair
// serialize instead of both inserting. The composite unique index on likes
// remains the authoritative guard; a duplicate-key error on the insert
// branch means we lost a race and is reported to the caller as a conflict.
func (r *likeRepository) Toggle(articleID, userID uint) (*models.Like, bool, error) {
	var like models.Like
	var removed bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("article_id = ? AND user_id = ?", articleID, userID).
			First(&like).Error

		if err == nil {
			removed = true
			return tx.Delete(&models.Like{}, like.ID).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like = models.Like{
			ArticleID: articleID,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		return tx.Create(&like).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &like, removed, nil
}

func (r *likeRepository) GetByArticle(articleID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("article_id = ?", articleID).Find(&likes).Error
	return likes, err
}

package services

import (
	"errors"
	"time"

	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(articleID uint, req models.CreateCommentRequest, user *models.User) (*models.Comment, error)
	GetComments(articleID uint) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

func (s *commentService) CreateComment(articleID uint, req models.CreateCommentRequest, user *models.User) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ValidationError("Article does not exist")
		}
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    user.ID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetComments(articleID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByArticle(articleID)
}

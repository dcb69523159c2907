package services

import (
	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/repositories"
)

type LikeService interface {
	ToggleLike(articleID uint, user *models.User) (*models.LikeToggleResponse, error)
	GetLikes(articleID uint) ([]models.Like, error)
}

type likeService struct {
	likeRepo repositories.LikeRepository
}

func NewLikeService(likeRepo repositories.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// ToggleLike alternates between creating and removing the caller's like on
// an article. The response echoes the affected row; the removal branch
// additionally carries a message.
func (s *likeService) ToggleLike(articleID uint, user *models.User) (*models.LikeToggleResponse, error) {
	like, removed, err := s.likeRepo.Toggle(articleID, user.ID)
	if err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, models.ConflictError("Like already exists")
		}
		return nil, err
	}

	resp := &models.LikeToggleResponse{
		ID:        like.ID,
		ArticleID: like.ArticleID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}
	if removed {
		resp.Message = "Like removed"
	}

	return resp, nil
}

func (s *likeService) GetLikes(articleID uint) ([]models.Like, error) {
	return s.likeRepo.GetByArticle(articleID)
}

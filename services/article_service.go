package services

import (
	"errors"
	"time"

	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, author *models.User) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, error)
	SearchArticles(title string) ([]models.Article, error)
	GetArticlePage(skip, limit int) ([]models.Article, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, actor *models.User) (*models.Article, error)
	DeleteArticle(id uint, actor *models.User) error
	MostLikedArticle() (*models.Article, error)
	LatestArticles(limit int) ([]models.Article, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
	}
}

// isOwner is the authorization predicate gating every article mutation.
func isOwner(article *models.Article, actor *models.User) bool {
	return article.AuthorID == actor.ID
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, author *models.User) (*models.Article, error) {
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ValidationError("Category not found")
		}
		return nil, err
	}

	now := time.Now().UTC()
	article := &models.Article{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Text:        req.Text,
		CategoryID:  req.CategoryID,
		AuthorID:    author.ID,
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
		ReadTime:    req.ReadTime,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("Article not found")
		}
		return nil, err
	}
	return article, nil
}

// GetArticles applies the conjunctive filters and returns an empty slice
// when nothing matches; the handler decides whether that is a 404.
func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, error) {
	return s.articleRepo.GetList(params)
}

func (s *articleService) SearchArticles(title string) ([]models.Article, error) {
	return s.articleRepo.Search(title)
}

func (s *articleService) GetArticlePage(skip, limit int) ([]models.Article, error) {
	return s.articleRepo.GetPage(skip, limit)
}

func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, actor *models.User) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("Article not found")
		}
		return nil, err
	}

	if !isOwner(article, actor) {
		return nil, models.ForbiddenError("Not authorized to update this article")
	}

	// Full-replace semantics: every field overwrites.
	article.Title = req.Title
	article.ImageURL = req.ImageURL
	article.Text = req.Text
	article.CategoryID = req.CategoryID
	article.IsPublished = req.IsPublished
	article.ReadTime = req.ReadTime
	article.UpdatedAt = time.Now().UTC()

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) DeleteArticle(id uint, actor *models.User) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFoundError("Article not found")
		}
		return err
	}

	if !isOwner(article, actor) {
		return models.ForbiddenError("Not authorized to delete this article")
	}

	return s.articleRepo.Delete(id)
}

func (s *articleService) MostLikedArticle() (*models.Article, error) {
	article, err := s.articleRepo.MostLiked()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("No articles found")
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) LatestArticles(limit int) ([]models.Article, error) {
	return s.articleRepo.Latest(limit)
}

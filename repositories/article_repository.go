package repositories

import (
	"github.com/aledanee/blotch/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, error)
	Search(title string) ([]models.Article, error)
	GetPage(skip, limit int) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	MostLiked() (*models.Article, error)
	Latest(limit int) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{})

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}
	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}
	if params.IsPublished != nil {
		query = query.Where("is_published = ?", *params.IsPublished)
	}

	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Search(title string) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{})
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}

	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetPage(skip, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Offset(skip).Limit(limit).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// MostLiked returns the article with the highest like count. Ties break on
// the lowest article id so the result is deterministic.
func (r *articleRepository) MostLiked() (*models.Article, error) {
	var article models.Article
	err := r.db.Model(&models.Article{}).
		Joins("JOIN likes ON likes.article_id = articles.id").
		Group("articles.id").
		Order("COUNT(likes.id) DESC, articles.id ASC").
		First(&article).Error
	return &article, err
}

func (r *articleRepository) Latest(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at desc").Limit(limit).Find(&articles).Error
	return articles, err
}

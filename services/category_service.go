package services

import (
	"errors"
	"time"

	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	if _, err := s.categoryRepo.GetByName(req.Name); err == nil {
		return nil, models.ConflictError("Category already exists")
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, models.ConflictError("Category already exists")
		}
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("Category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("Category not found")
		}
		return nil, err
	}

	if req.Name != category.Name {
		existing, err := s.categoryRepo.GetByName(req.Name)
		if err == nil && existing.ID != category.ID {
			return nil, models.ConflictError("Category name already exists")
		}
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(category); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, models.ConflictError("Category name already exists")
		}
		return nil, err
	}

	return category, nil
}

// DeleteCategory applies a restrict policy: a category still referenced by
// articles cannot be deleted.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFoundError("Category not found")
		}
		return err
	}

	count, err := s.categoryRepo.CountArticles(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ConflictError("Category is referenced by existing articles")
	}

	return s.categoryRepo.Delete(id)
}

package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CategoryService handles business logic for categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// CreateCategory validates and persists a new category.
func (s *CategoryService) CreateCategory(name, description string) (*models.Category, error) {
	category, err := models.NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a single category by its ID.
func (s *CategoryService) GetCategory(id models.CategoryID) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// UpdateCategory renames a category and replaces its description.
func (s *CategoryService) UpdateCategory(id models.CategoryID, name, description string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(name); err != nil {
		return nil, err
	}
	category.Description = description
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Referencing products are left with
// their stale category ID; there is no cascade and no orphan cleanup.
func (s *CategoryService) DeleteCategory(id models.CategoryID) error {
	return s.repo.Delete(id)
}

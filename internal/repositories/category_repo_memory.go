package repositories

import (
	"sync"

	"catalog/internal/models"
)

// MemoryCategoryRepository is an in-memory implementation of
// CategoryRepository backed by a mutex-guarded map. Each instance owns its
// own map; construct one per process or per test rather than sharing a
// hidden global.
type MemoryCategoryRepository struct {
	categories map[models.CategoryID]models.Category
	mu         sync.RWMutex
}

// NewMemoryCategoryRepository creates a new instance of
// MemoryCategoryRepository.
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{
		categories: make(map[models.CategoryID]models.Category),
	}
}

// Create adds a new category.
func (r *MemoryCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = models.NewCategoryID()
	}
	r.categories[category.ID] = *category
	return nil
}

// GetByID returns a category by its ID.
func (r *MemoryCategoryRepository) GetByID(id models.CategoryID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, &models.NotFoundError{Resource: "category", ID: id.String()}
	}
	return &category, nil
}

// GetAll returns all categories.
func (r *MemoryCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categoryList = append(categoryList, c)
	}
	return categoryList, nil
}

// Update modifies an existing category.
func (r *MemoryCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return &models.NotFoundError{Resource: "category", ID: category.ID.String()}
	}
	r.categories[category.ID] = *category
	return nil
}

// Delete removes a category by its ID. Products referencing it are not
// touched.
func (r *MemoryCategoryRepository) Delete(id models.CategoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return &models.NotFoundError{Resource: "category", ID: id.String()}
	}
	delete(r.categories, id)
	return nil
}

package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the persistence port for categories.
// Implementations must not cascade deletion to referencing products;
// products keep their stale category reference.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id models.CategoryID) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id models.CategoryID) error
}

// PartnerRepository defines the persistence port for partners.
type PartnerRepository interface {
	Create(partner *models.Partner) error
	GetByID(id models.PartnerID) (*models.Partner, error)
	GetByCode(code string) (*models.Partner, error)
	GetAll() ([]models.Partner, error)
	Update(partner *models.Partner) error
	Delete(id models.PartnerID) error
}

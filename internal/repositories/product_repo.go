package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the persistence port for the product aggregate.
// GetByID and GetAll load the full aggregate, variants and stock records
// included.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id models.ProductID) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Update(product *models.Product) error
	// Delete removes the product together with its price table, stock
	// records and variants in one transaction. A failure anywhere in the
	// cascade rolls the whole deletion back.
	Delete(id models.ProductID) error
}

// VariantRepository defines the persistence port for product variants.
type VariantRepository interface {
	Create(variant *models.ProductVariant) error
	GetByID(id models.VariantID) (*models.ProductVariant, error)
	GetByProductID(productID models.ProductID) ([]models.ProductVariant, error)
	Update(variant *models.ProductVariant) error
	// Delete removes the variant and its stock records in one transaction.
	Delete(id models.VariantID) error
}

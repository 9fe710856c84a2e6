package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create persists a new product together with any variants and stock
// records already attached to the aggregate.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID loads the full aggregate: the product, its variants and their
// stock records.
func (r *GORMProductRepository) GetByID(id models.ProductID) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variants.StockRecords").Preload("Variants").First(&product, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "product", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetBySKU looks a product up by its catalog-unique SKU. Used for the
// uniqueness check at creation time.
func (r *GORMProductRepository) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "sku_id = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "product", ID: sku}
		}
		return nil, fmt.Errorf("failed to get product by SKU %s: %w", sku, err)
	}
	return &product, nil
}

// GetAll retrieves all products with their variants and stock records.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Variants.StockRecords").Preload("Variants").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Update saves the aggregate, upserting its variants and stock records.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row, so we
		// check RowsAffected.
		return &models.NotFoundError{Resource: "product", ID: product.ID.String()}
	}
	return nil
}

// Delete removes the product and everything hanging off it: price table,
// stock records, variants, then the product row itself. The cascade runs in
// a single transaction; any failure rolls all of it back, leaving the
// original rows intact.
func (r *GORMProductRepository) Delete(id models.ProductID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PriceTable{}, "product_id = ?", id.String()).Error; err != nil {
			return fmt.Errorf("failed to delete price table for product %s: %w", id, err)
		}
		if err := tx.Delete(&models.Stock{}, "product_id = ?", id.String()).Error; err != nil {
			return fmt.Errorf("failed to delete stock ledger for product %s: %w", id, err)
		}
		if err := tx.Delete(&models.StockRecord{}, "product_id = ?", id.String()).Error; err != nil {
			return fmt.Errorf("failed to delete stock records for product %s: %w", id, err)
		}
		if err := tx.Delete(&models.ProductVariant{}, "product_id = ?", id.String()).Error; err != nil {
			return fmt.Errorf("failed to delete variants for product %s: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id.String())
		if res.Error != nil {
			return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			// Returning an error here aborts the transaction, so the child
			// deletions above are rolled back as well.
			return &models.NotFoundError{Resource: "product", ID: id.String()}
		}
		return nil
	})
}

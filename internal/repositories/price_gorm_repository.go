package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMPriceRepository is a GORM implementation of PriceRepository.
type GORMPriceRepository struct {
	db *gorm.DB
}

// NewGORMPriceRepository creates a new instance of GORMPriceRepository.
func NewGORMPriceRepository(db *gorm.DB) *GORMPriceRepository {
	return &GORMPriceRepository{
		db: db,
	}
}

// Create persists a new price table.
func (r *GORMPriceRepository) Create(price *models.PriceTable) error {
	if err := r.db.Create(price).Error; err != nil {
		return fmt.Errorf("failed to create price table: %w", err)
	}
	return nil
}

// GetByProductID retrieves the price table attached to one product.
func (r *GORMPriceRepository) GetByProductID(productID models.ProductID) (*models.PriceTable, error) {
	var price models.PriceTable
	err := r.db.First(&price, "product_id = ?", productID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "price table for product", ID: productID.String()}
		}
		return nil, fmt.Errorf("failed to get price table for product %s: %w", productID, err)
	}
	return &price, nil
}

// Update saves an existing price table.
func (r *GORMPriceRepository) Update(price *models.PriceTable) error {
	res := r.db.Save(price)
	if res.Error != nil {
		return fmt.Errorf("failed to update price table: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "price table", ID: price.ID}
	}
	return nil
}

// Delete removes the price table attached to one product.
func (r *GORMPriceRepository) Delete(productID models.ProductID) error {
	res := r.db.Delete(&models.PriceTable{}, "product_id = ?", productID.String())
	if res.Error != nil {
		return fmt.Errorf("failed to delete price table for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "price table for product", ID: productID.String()}
	}
	return nil
}

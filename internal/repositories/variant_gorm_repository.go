package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMVariantRepository is a GORM implementation of VariantRepository.
type GORMVariantRepository struct {
	db *gorm.DB
}

// NewGORMVariantRepository creates a new instance of GORMVariantRepository.
func NewGORMVariantRepository(db *gorm.DB) *GORMVariantRepository {
	return &GORMVariantRepository{
		db: db,
	}
}

// Create persists a new variant together with any stock records attached
// to it.
func (r *GORMVariantRepository) Create(variant *models.ProductVariant) error {
	if err := r.db.Create(variant).Error; err != nil {
		return fmt.Errorf("failed to create variant: %w", err)
	}
	return nil
}

// GetByID loads a variant with its stock records.
func (r *GORMVariantRepository) GetByID(id models.VariantID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.Preload("StockRecords").First(&variant, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "variant", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get variant by ID %s: %w", id, err)
	}
	return &variant, nil
}

// GetByProductID loads all variants of one product with their stock
// records.
func (r *GORMVariantRepository) GetByProductID(productID models.ProductID) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("StockRecords").Find(&variants, "product_id = ?", productID.String()).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get variants for product %s: %w", productID, err)
	}
	return variants, nil
}

// Update saves the variant, upserting its stock records.
func (r *GORMVariantRepository) Update(variant *models.ProductVariant) error {
	res := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(variant)
	if res.Error != nil {
		return fmt.Errorf("failed to update variant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "variant", ID: variant.ID.String()}
	}
	return nil
}

// Delete removes the variant and its stock records in one transaction, so
// no orphan stock rows can survive the variant.
func (r *GORMVariantRepository) Delete(id models.VariantID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.StockRecord{}, "variant_id = ?", id.String()).Error; err != nil {
			return fmt.Errorf("failed to delete stock records for variant %s: %w", id, err)
		}
		res := tx.Delete(&models.ProductVariant{}, "id = ?", id.String())
		if res.Error != nil {
			return fmt.Errorf("failed to delete variant %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return &models.NotFoundError{Resource: "variant", ID: id.String()}
		}
		return nil
	})
}

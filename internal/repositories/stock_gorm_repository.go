package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{
		db: db,
	}
}

// Create persists a new stock record.
func (r *GORMStockRepository) Create(record *models.StockRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create stock record: %w", err)
	}
	return nil
}

// GetByVariantID retrieves all stock records of one variant.
func (r *GORMStockRepository) GetByVariantID(variantID models.VariantID) ([]models.StockRecord, error) {
	var records []models.StockRecord
	err := r.db.Find(&records, "variant_id = ?", variantID.String()).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stock records for variant %s: %w", variantID, err)
	}
	return records, nil
}

// GetByVariantAndPartner retrieves the single record a partner holds for a
// variant.
func (r *GORMStockRepository) GetByVariantAndPartner(variantID models.VariantID, partnerID models.PartnerID) (*models.StockRecord, error) {
	var record models.StockRecord
	err := r.db.First(&record, "variant_id = ? AND partner_id = ?", variantID.String(), partnerID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "stock record for partner", ID: partnerID.String()}
		}
		return nil, fmt.Errorf("failed to get stock record for variant %s, partner %s: %w", variantID, partnerID, err)
	}
	return &record, nil
}

// Update saves an existing stock record.
func (r *GORMStockRepository) Update(record *models.StockRecord) error {
	res := r.db.Save(record)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "stock record", ID: record.ID}
	}
	return nil
}

// Delete removes a stock record by its ID.
func (r *GORMStockRepository) Delete(id string) error {
	res := r.db.Delete(&models.StockRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete stock record %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "stock record", ID: id}
	}
	return nil
}

// GORMProductStockRepository is a GORM implementation of
// ProductStockRepository.
type GORMProductStockRepository struct {
	db *gorm.DB
}

// NewGORMProductStockRepository creates a new instance of
// GORMProductStockRepository.
func NewGORMProductStockRepository(db *gorm.DB) *GORMProductStockRepository {
	return &GORMProductStockRepository{
		db: db,
	}
}

// Create persists a new product-level stock ledger row.
func (r *GORMProductStockRepository) Create(stock *models.Stock) error {
	if err := r.db.Create(stock).Error; err != nil {
		return fmt.Errorf("failed to create stock ledger: %w", err)
	}
	return nil
}

// GetByProductID retrieves the ledger row of one product.
func (r *GORMProductStockRepository) GetByProductID(productID models.ProductID) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.First(&stock, "product_id = ?", productID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "stock ledger for product", ID: productID.String()}
		}
		return nil, fmt.Errorf("failed to get stock ledger for product %s: %w", productID, err)
	}
	return &stock, nil
}

// Update saves an existing ledger row.
func (r *GORMProductStockRepository) Update(stock *models.Stock) error {
	res := r.db.Save(stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock ledger: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "stock ledger", ID: stock.ID}
	}
	return nil
}

package repositories

import (
	"catalog/internal/models"
)

// StockRepository defines the persistence port for per-partner stock
// records.
type StockRepository interface {
	Create(record *models.StockRecord) error
	GetByVariantID(variantID models.VariantID) ([]models.StockRecord, error)
	GetByVariantAndPartner(variantID models.VariantID, partnerID models.PartnerID) (*models.StockRecord, error)
	Update(record *models.StockRecord) error
	Delete(id string) error
}

// ProductStockRepository defines the persistence port for the simple
// product-level stock ledger.
type ProductStockRepository interface {
	Create(stock *models.Stock) error
	GetByProductID(productID models.ProductID) (*models.Stock, error)
	Update(stock *models.Stock) error
}

// PriceRepository defines the persistence port for product price tables.
type PriceRepository interface {
	Create(price *models.PriceTable) error
	GetByProductID(productID models.ProductID) (*models.PriceTable, error)
	Update(price *models.PriceTable) error
	Delete(productID models.ProductID) error
}

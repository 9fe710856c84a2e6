package services

import (
	"errors"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockService handles inventory movements: per-partner stock records on
// variants and the simple product-level stock ledger.
type StockService struct {
	variantRepo      repositories.VariantRepository
	stockRepo        repositories.StockRepository
	partnerRepo      repositories.PartnerRepository
	productStockRepo repositories.ProductStockRepository
}

// NewStockService creates a new StockService. The partner repository may be
// nil, in which case partner existence is not checked on stock creation.
func NewStockService(
	variantRepo repositories.VariantRepository,
	stockRepo repositories.StockRepository,
	partnerRepo repositories.PartnerRepository,
	productStockRepo repositories.ProductStockRepository,
) *StockService {
	return &StockService{
		variantRepo:      variantRepo,
		stockRepo:        stockRepo,
		partnerRepo:      partnerRepo,
		productStockRepo: productStockRepo,
	}
}

// AddStockInput carries the attributes of a new per-partner stock record.
type AddStockInput struct {
	AvailableQuantity int
	RetailPrice       decimal.Decimal
	WholesalePrice    decimal.Decimal
	Currency          string
	PartnerSKU        string
}

// AddStock creates a stock record for a (variant, partner) pair. The
// variant and partner must resolve; a pair that already holds a record is
// rejected with DuplicatePartnerError, leaving the existing record
// unchanged.
func (s *StockService) AddStock(variantID models.VariantID, partnerID models.PartnerID, input AddStockInput) (*models.StockRecord, error) {
	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if s.partnerRepo != nil {
		if _, err := s.partnerRepo.GetByID(partnerID); err != nil {
			return nil, err
		}
	}

	record, err := variant.AddStockRecord(partnerID, input.AvailableQuantity, input.RetailPrice, input.WholesalePrice, input.Currency)
	if err != nil {
		return nil, err
	}
	record.PartnerSKU = input.PartnerSKU

	if err := s.stockRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateStock applies a partial update to the stock record a partner holds
// for a variant. Absent records yield NotFoundError.
func (s *StockService) UpdateStock(variantID models.VariantID, partnerID models.PartnerID, update models.StockRecordUpdate) (*models.StockRecord, error) {
	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}

	record, err := variant.UpdateStockRecord(partnerID, update)
	if err != nil {
		return nil, err
	}

	if err := s.stockRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

// AddOrUpdateStock creates the partner's stock record when none exists, and
// otherwise applies the input as a partial update to the existing record.
func (s *StockService) AddOrUpdateStock(variantID models.VariantID, partnerID models.PartnerID, input AddStockInput) (*models.StockRecord, error) {
	record, err := s.AddStock(variantID, partnerID, input)
	if err == nil {
		return record, nil
	}
	var duplicate *models.DuplicatePartnerError
	if !errors.As(err, &duplicate) {
		return nil, err
	}
	return s.UpdateStock(variantID, partnerID, models.StockRecordUpdate{
		QuantityAvailable: &input.AvailableQuantity,
		RetailPrice:       &input.RetailPrice,
		WholesalePrice:    &input.WholesalePrice,
		Currency:          &input.Currency,
		PartnerSKU:        &input.PartnerSKU,
	})
}

// GetStockForVariant returns all stock records of one variant.
func (s *StockService) GetStockForVariant(variantID models.VariantID) ([]models.StockRecord, error) {
	if _, err := s.variantRepo.GetByID(variantID); err != nil {
		return nil, err
	}
	return s.stockRepo.GetByVariantID(variantID)
}

// DeleteStock removes a single stock record by its ID.
func (s *StockService) DeleteStock(id string) error {
	return s.stockRepo.Delete(id)
}

// ProductStockInput carries the attributes of the product-level ledger.
type ProductStockInput struct {
	CurrentStock      int
	ReservedStock     int
	ReorderLevel      int
	MaxStockLevel     int
	UnitOfMeasure     string
	WarehouseLocation string
	BatchNumber       string
	UpdatedBy         string
}

// CreateProductStock creates the product-level stock ledger row. The
// available figure is derived from current - reserved at write time.
func (s *StockService) CreateProductStock(productID models.ProductID, input ProductStockInput) (*models.Stock, error) {
	if input.CurrentStock < 0 || input.ReservedStock < 0 {
		return nil, &models.ValidationError{Field: "stock", Message: "stock quantities cannot be negative"}
	}
	stock := &models.Stock{
		ID:                uuid.New().String(),
		ProductID:         productID,
		CurrentStock:      input.CurrentStock,
		ReservedStock:     input.ReservedStock,
		ReorderLevel:      input.ReorderLevel,
		MaxStockLevel:     input.MaxStockLevel,
		UnitOfMeasure:     input.UnitOfMeasure,
		WarehouseLocation: input.WarehouseLocation,
		BatchNumber:       input.BatchNumber,
		UpdatedBy:         input.UpdatedBy,
	}
	stock.Recompute()
	if err := s.productStockRepo.Create(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// ProductStockUpdate carries the optional fields of a partial ledger
// update.
type ProductStockUpdate struct {
	CurrentStock      *int
	ReservedStock     *int
	ReorderLevel      *int
	MaxStockLevel     *int
	UnitOfMeasure     *string
	WarehouseLocation *string
	BatchNumber       *string
	UpdatedBy         string
}

// UpdateProductStock applies a partial update to the product-level ledger
// and recomputes the derived available figure.
func (s *StockService) UpdateProductStock(productID models.ProductID, update ProductStockUpdate) (*models.Stock, error) {
	stock, err := s.productStockRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}

	if update.CurrentStock != nil && *update.CurrentStock < 0 {
		return nil, &models.ValidationError{Field: "current_stock", Message: "stock quantities cannot be negative"}
	}
	if update.ReservedStock != nil && *update.ReservedStock < 0 {
		return nil, &models.ValidationError{Field: "reserved_stock", Message: "stock quantities cannot be negative"}
	}

	if update.CurrentStock != nil {
		stock.CurrentStock = *update.CurrentStock
	}
	if update.ReservedStock != nil {
		stock.ReservedStock = *update.ReservedStock
	}
	if update.ReorderLevel != nil {
		stock.ReorderLevel = *update.ReorderLevel
	}
	if update.MaxStockLevel != nil {
		stock.MaxStockLevel = *update.MaxStockLevel
	}
	if update.UnitOfMeasure != nil {
		stock.UnitOfMeasure = *update.UnitOfMeasure
	}
	if update.WarehouseLocation != nil {
		stock.WarehouseLocation = *update.WarehouseLocation
	}
	if update.BatchNumber != nil {
		stock.BatchNumber = *update.BatchNumber
	}
	stock.UpdatedBy = update.UpdatedBy
	stock.Recompute()

	if err := s.productStockRepo.Update(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// GetProductStock returns the product-level ledger row.
func (s *StockService) GetProductStock(productID models.ProductID) (*models.Stock, error) {
	return s.productStockRepo.GetByProductID(productID)
}

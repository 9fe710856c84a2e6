package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord is one partner's inventory ledger line for a product variant.
// At most one record may exist per (variant, partner) pair; the unique index
// backs up the check performed in ProductVariant.AddStockRecord.
type StockRecord struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID         ProductID       `json:"product_id" gorm:"type:varchar(36);index"`
	VariantID         VariantID       `json:"variant_id" gorm:"type:varchar(36);uniqueIndex:idx_variant_partner"`
	PartnerID         PartnerID       `json:"partner_id" gorm:"type:varchar(36);uniqueIndex:idx_variant_partner"`
	PartnerSKU        string          `json:"partner_sku" gorm:"type:varchar(100)"`
	QuantityAvailable int             `json:"quantity_available" gorm:"not null;default:0"`
	QuantityReserved  int             `json:"quantity_reserved" gorm:"not null;default:0"`
	ReorderLevel      int             `json:"reorder_level" gorm:"not null;default:10"`
	ReorderQuantity   int             `json:"reorder_quantity" gorm:"not null;default:0"`
	RetailPrice       decimal.Decimal `json:"retail_price" gorm:"type:decimal(10,2)"`
	WholesalePrice    decimal.Decimal `json:"wholesale_price" gorm:"type:decimal(10,2)"`
	Currency          string          `json:"currency" gorm:"type:varchar(3);default:'INR'"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TotalStock is the derived quantity: available + reserved. It is always
// recomputed from its inputs, never stored.
func (s *StockRecord) TotalStock() int {
	return s.QuantityAvailable + s.QuantityReserved
}

// RetailMoney returns the record's retail price as a Money value.
func (s *StockRecord) RetailMoney() Money {
	return Money{Amount: s.RetailPrice, Currency: s.Currency}
}

// WholesaleMoney returns the record's wholesale price as a Money value.
func (s *StockRecord) WholesaleMoney() Money {
	return Money{Amount: s.WholesalePrice, Currency: s.Currency}
}

// UpdateQuantities sets the available quantity and, when reserved is
// non-nil, the reserved quantity. Negative quantities are rejected before
// anything is applied.
func (s *StockRecord) UpdateQuantities(available int, reserved *int) error {
	if available < 0 {
		return &ValidationError{Field: "quantity_available", Message: "quantity cannot be negative"}
	}
	if reserved != nil && *reserved < 0 {
		return &ValidationError{Field: "quantity_reserved", Message: "quantity cannot be negative"}
	}
	s.QuantityAvailable = available
	if reserved != nil {
		s.QuantityReserved = *reserved
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdatePricing replaces both prices. The two Money values must share a
// currency; whether retail exceeds wholesale is deliberately not checked.
func (s *StockRecord) UpdatePricing(wholesale, retail Money) error {
	if wholesale.Currency != retail.Currency {
		return &ValidationError{Field: "currency", Message: "wholesale and retail currency must match"}
	}
	s.WholesalePrice = wholesale.Amount
	s.RetailPrice = retail.Amount
	s.Currency = wholesale.Currency
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Stock is the simple product-level inventory ledger, kept separately from
// the per-partner stock records. AvailableStock is derived from
// current - reserved and recomputed on every write.
type Stock struct {
	ID                string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID         ProductID  `json:"product_id" gorm:"type:varchar(36);uniqueIndex"`
	CurrentStock      int        `json:"current_stock" gorm:"not null;default:0"`
	ReservedStock     int        `json:"reserved_stock" gorm:"not null;default:0"`
	AvailableStock    int        `json:"available_stock" gorm:"not null;default:0"`
	ReorderLevel      int        `json:"reorder_level" gorm:"not null;default:0"`
	MaxStockLevel     int        `json:"max_stock_level" gorm:"not null;default:0"`
	UnitOfMeasure     string     `json:"unit_of_measure" gorm:"type:varchar(50)"`
	WarehouseLocation string     `json:"warehouse_location" gorm:"type:varchar(255)"`
	BatchNumber       string     `json:"batch_number" gorm:"type:varchar(100)"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	LastUpdated       time.Time  `json:"last_updated"`
	UpdatedBy         string     `json:"updated_by" gorm:"type:varchar(255)"`
}

// Recompute refreshes the derived available figure and the update stamp.
// Callers must invoke it after every mutation of current or reserved stock.
func (s *Stock) Recompute() {
	s.AvailableStock = s.CurrentStock - s.ReservedStock
	s.LastUpdated = time.Now().UTC()
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceTable is the product-level reference (MSRP-like) price, attached 1:1
// to a product and separate from partner-level stock pricing. Every update
// increments Version by exactly one; concurrent updates are last-write-wins,
// the version is an audit counter rather than an optimistic-locking token.
type PriceTable struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID      ProductID       `json:"product_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	WholesalePrice decimal.Decimal `json:"wholesale_price" gorm:"type:decimal(10,2)"`
	RetailPrice    decimal.Decimal `json:"retail_price" gorm:"type:decimal(10,2)"`
	Currency       string          `json:"currency" gorm:"type:varchar(3)"`
	Version        int             `json:"version" gorm:"not null;default:1"`
	CreatedBy      string          `json:"created_by" gorm:"type:varchar(255)"`
	CreatedTime    time.Time       `json:"created_time"`
	ModifiedBy     *string         `json:"modified_by"`
	ModifiedTime   *time.Time      `json:"modified_time"`
}

// NewPriceTable validates and constructs a price table at version 1.
func NewPriceTable(productID ProductID, wholesale, retail decimal.Decimal, currency, createdBy string) (*PriceTable, error) {
	wholesaleMoney, err := NewMoney(wholesale, currency)
	if err != nil {
		return nil, err
	}
	retailMoney, err := NewMoney(retail, currency)
	if err != nil {
		return nil, err
	}
	if createdBy == "" {
		createdBy = "system"
	}
	return &PriceTable{
		ID:             uuid.New().String(),
		ProductID:      productID,
		WholesalePrice: wholesaleMoney.Amount,
		RetailPrice:    retailMoney.Amount,
		Currency:       retailMoney.Currency,
		Version:        1,
		CreatedBy:      createdBy,
		CreatedTime:    time.Now().UTC(),
	}, nil
}

// PriceTableUpdate carries the optional fields of a partial price update.
type PriceTableUpdate struct {
	WholesalePrice *decimal.Decimal
	RetailPrice    *decimal.Decimal
	Currency       *string
}

// ApplyUpdate applies the supplied fields, bumps the version by one and
// stamps the modifier. CreatedTime is never touched. Validation runs before
// anything is applied.
func (p *PriceTable) ApplyUpdate(update PriceTableUpdate, modifiedBy string) error {
	if update.WholesalePrice != nil && update.WholesalePrice.IsNegative() {
		return &ValidationError{Field: "wholesale_price", Message: "price cannot be negative"}
	}
	if update.RetailPrice != nil && update.RetailPrice.IsNegative() {
		return &ValidationError{Field: "retail_price", Message: "price cannot be negative"}
	}
	if update.Currency != nil {
		if _, err := NewMoney(decimal.Zero, *update.Currency); err != nil {
			return err
		}
	}

	if update.WholesalePrice != nil {
		p.WholesalePrice = *update.WholesalePrice
	}
	if update.RetailPrice != nil {
		p.RetailPrice = *update.RetailPrice
	}
	if update.Currency != nil {
		p.Currency = *update.Currency
	}
	now := time.Now().UTC()
	p.Version++
	p.ModifiedBy = &modifiedBy
	p.ModifiedTime = &now
	return nil
}

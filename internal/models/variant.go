package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant is a specific color/style instance of a product. A variant
// owns its stock records, one per partner.
type ProductVariant struct {
	ID               VariantID         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID        ProductID         `json:"product_id" gorm:"type:varchar(36);index"`
	VariantName      string            `json:"variant_name" gorm:"type:varchar(255);not null"`
	ColorName        string            `json:"color_name" gorm:"type:varchar(100);not null"`
	ColorCode        string            `json:"color_code" gorm:"type:varchar(7);not null"`
	SKUSuffix        string            `json:"sku_suffix" gorm:"column:sku_suffix;type:varchar(50)"`
	RangeDetails     map[string]string `json:"range_details" gorm:"serializer:json"`
	AdditionalImages map[string]string `json:"additional_images" gorm:"serializer:json"`
	IsActive         bool              `json:"is_active" gorm:"not null;default:true"`
	CreatedBy        string            `json:"created_by" gorm:"type:varchar(255)"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	StockRecords     []StockRecord     `json:"stock_records" gorm:"foreignKey:VariantID"`
}

// NewProductVariant validates and constructs a variant attached to the
// given product. The color code must be '#' followed by 6 hex digits.
func NewProductVariant(productID ProductID, variantName, colorName, colorCode, skuSuffix, createdBy string) (*ProductVariant, error) {
	code, err := NewColorCode(colorCode)
	if err != nil {
		return nil, err
	}
	if variantName == "" {
		return nil, &ValidationError{Field: "variant_name", Message: "variant name cannot be empty"}
	}
	if createdBy == "" {
		createdBy = "system"
	}
	now := time.Now().UTC()
	return &ProductVariant{
		ID:               NewVariantID(),
		ProductID:        productID,
		VariantName:      variantName,
		ColorName:        colorName,
		ColorCode:        code,
		SKUSuffix:        skuSuffix,
		RangeDetails:     map[string]string{},
		AdditionalImages: map[string]string{},
		IsActive:         true,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// AddStockRecord appends a new stock record for a partner. A second record
// for a partner that already holds one is rejected with
// DuplicatePartnerError, leaving the existing record untouched.
func (v *ProductVariant) AddStockRecord(partnerID PartnerID, availableQty int, retailPrice, wholesalePrice decimal.Decimal, currency string) (*StockRecord, error) {
	if v.GetStockForPartner(partnerID) != nil {
		return nil, &DuplicatePartnerError{VariantID: v.ID.String(), PartnerID: partnerID.String()}
	}
	if availableQty < 0 {
		return nil, &ValidationError{Field: "available_quantity", Message: "quantity cannot be negative"}
	}
	retail, err := NewMoney(retailPrice, currency)
	if err != nil {
		return nil, err
	}
	wholesale, err := NewMoney(wholesalePrice, currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := StockRecord{
		ID:                string(NewVariantID()),
		ProductID:         v.ProductID,
		VariantID:         v.ID,
		PartnerID:         partnerID,
		QuantityAvailable: availableQty,
		ReorderLevel:      10,
		RetailPrice:       retail.Amount,
		WholesalePrice:    wholesale.Amount,
		Currency:          retail.Currency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	v.StockRecords = append(v.StockRecords, record)
	v.UpdatedAt = now
	return &v.StockRecords[len(v.StockRecords)-1], nil
}

// StockRecordUpdate carries the optional fields of a partial stock record
// update; nil fields are left unchanged.
type StockRecordUpdate struct {
	QuantityAvailable *int
	QuantityReserved  *int
	ReorderLevel      *int
	ReorderQuantity   *int
	RetailPrice       *decimal.Decimal
	WholesalePrice    *decimal.Decimal
	Currency          *string
	PartnerSKU        *string
}

// UpdateStockRecord locates the partner's record and applies the partial
// update. Validation runs before anything is applied, so a rejected update
// leaves the record exactly as it was.
func (v *ProductVariant) UpdateStockRecord(partnerID PartnerID, update StockRecordUpdate) (*StockRecord, error) {
	record := v.GetStockForPartner(partnerID)
	if record == nil {
		return nil, &NotFoundError{Resource: "stock record for partner", ID: partnerID.String()}
	}

	if update.QuantityAvailable != nil && *update.QuantityAvailable < 0 {
		return nil, &ValidationError{Field: "quantity_available", Message: "quantity cannot be negative"}
	}
	if update.QuantityReserved != nil && *update.QuantityReserved < 0 {
		return nil, &ValidationError{Field: "quantity_reserved", Message: "quantity cannot be negative"}
	}
	if update.ReorderLevel != nil && *update.ReorderLevel < 0 {
		return nil, &ValidationError{Field: "reorder_level", Message: "reorder level cannot be negative"}
	}
	if update.RetailPrice != nil && update.RetailPrice.IsNegative() {
		return nil, &ValidationError{Field: "retail_price", Message: "price cannot be negative"}
	}
	if update.WholesalePrice != nil && update.WholesalePrice.IsNegative() {
		return nil, &ValidationError{Field: "wholesale_price", Message: "price cannot be negative"}
	}
	if update.Currency != nil {
		if _, err := NewMoney(decimal.Zero, *update.Currency); err != nil {
			return nil, err
		}
	}

	if update.QuantityAvailable != nil {
		record.QuantityAvailable = *update.QuantityAvailable
	}
	if update.QuantityReserved != nil {
		record.QuantityReserved = *update.QuantityReserved
	}
	if update.ReorderLevel != nil {
		record.ReorderLevel = *update.ReorderLevel
	}
	if update.ReorderQuantity != nil {
		record.ReorderQuantity = *update.ReorderQuantity
	}
	if update.RetailPrice != nil {
		record.RetailPrice = *update.RetailPrice
	}
	if update.WholesalePrice != nil {
		record.WholesalePrice = *update.WholesalePrice
	}
	if update.Currency != nil {
		record.Currency = *update.Currency
	}
	if update.PartnerSKU != nil {
		record.PartnerSKU = *update.PartnerSKU
	}

	now := time.Now().UTC()
	record.UpdatedAt = now
	v.UpdatedAt = now
	return record, nil
}

// GetStockForPartner returns the partner's stock record, or nil when the
// partner holds none. Absence is not an error.
func (v *ProductVariant) GetStockForPartner(partnerID PartnerID) *StockRecord {
	for i := range v.StockRecords {
		if v.StockRecords[i].PartnerID == partnerID {
			return &v.StockRecords[i]
		}
	}
	return nil
}

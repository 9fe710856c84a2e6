package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is an immutable amount/currency pair. Arithmetic produces a new
// Money value, never mutates in place. Two Money values with equal amount
// and currency are interchangeable.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney validates and constructs a Money value. The amount must be
// non-negative and the currency a 3-letter code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, &ValidationError{Field: "amount", Message: "amount cannot be negative"}
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, &ValidationError{Field: "currency", Message: "currency must be a 3-letter code"}
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Equal reports whether two Money values carry the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// ProductID identifies a product. Equality is by underlying value, so IDs
// can be used directly as map keys.
type ProductID string

// NewProductID generates a random product ID.
func NewProductID() ProductID {
	return ProductID(uuid.New().String())
}

// ParseProductID wraps a non-empty string as a ProductID.
func ParseProductID(value string) (ProductID, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Field: "product_id", Message: "product ID cannot be empty"}
	}
	return ProductID(value), nil
}

func (id ProductID) String() string { return string(id) }

// PartnerID identifies a partner.
type PartnerID string

// NewPartnerID generates a random partner ID.
func NewPartnerID() PartnerID {
	return PartnerID(uuid.New().String())
}

// ParsePartnerID wraps a non-empty string as a PartnerID.
func ParsePartnerID(value string) (PartnerID, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Field: "partner_id", Message: "partner ID cannot be empty"}
	}
	return PartnerID(value), nil
}

func (id PartnerID) String() string { return string(id) }

// VariantID identifies a product variant.
type VariantID string

// NewVariantID generates a random variant ID.
func NewVariantID() VariantID {
	return VariantID(uuid.New().String())
}

// ParseVariantID wraps a non-empty string as a VariantID.
func ParseVariantID(value string) (VariantID, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Field: "variant_id", Message: "variant ID cannot be empty"}
	}
	return VariantID(value), nil
}

func (id VariantID) String() string { return string(id) }

// CategoryID identifies a category.
type CategoryID string

// NewCategoryID generates a random category ID.
func NewCategoryID() CategoryID {
	return CategoryID(uuid.New().String())
}

// ParseCategoryID wraps a non-empty string as a CategoryID.
func ParseCategoryID(value string) (CategoryID, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Field: "category_id", Message: "category ID cannot be empty"}
	}
	return CategoryID(value), nil
}

func (id CategoryID) String() string { return string(id) }

// NewSKU normalizes a stock-keeping unit code. SKUs are stored uppercased
// and must be unique across the catalog (enforced at the service boundary).
func NewSKU(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: "sku", Message: "SKU cannot be empty"}
	}
	return strings.ToUpper(value), nil
}

// NewProductTitle validates and trims a product title.
func NewProductTitle(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: "title", Message: "product title cannot be empty"}
	}
	if len(value) > 200 {
		return "", &ValidationError{Field: "title", Message: "product title too long"}
	}
	return trimmed, nil
}

// NewCategoryName validates and trims a category name.
func NewCategoryName(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: "name", Message: "category name cannot be empty"}
	}
	if len(value) > 100 {
		return "", &ValidationError{Field: "name", Message: "category name too long"}
	}
	return trimmed, nil
}

// NewPartnerCode normalizes a partner code, the partner's natural secondary
// key. Codes are stored uppercased.
func NewPartnerCode(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: "code", Message: "partner code cannot be empty"}
	}
	if len(trimmed) > 50 {
		return "", &ValidationError{Field: "code", Message: "partner code too long"}
	}
	return strings.ToUpper(trimmed), nil
}

// NewColorCode validates a '#'-prefixed 6-digit hex color code.
func NewColorCode(value string) (string, error) {
	if len(value) != 7 || value[0] != '#' {
		return "", &ValidationError{Field: "color_code", Message: "color code must be '#' followed by 6 hex digits"}
	}
	for _, c := range value[1:] {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return "", &ValidationError{Field: "color_code", Message: "color code must be '#' followed by 6 hex digits"}
		}
	}
	return value, nil
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	money, err := NewMoney(dec("25.99"), " inr ")
	assert.NoError(t, err)
	assert.Equal(t, "INR", money.Currency)
	assert.True(t, money.Amount.Equal(dec("25.99")))

	_, err = NewMoney(dec("-0.01"), "INR")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = NewMoney(decimal.Zero, "RUPEES")
	assert.ErrorAs(t, err, &validationErr)
}

func TestMoneyEqual(t *testing.T) {
	a, _ := NewMoney(dec("25.990"), "INR")
	b, _ := NewMoney(dec("25.99"), "INR")
	c, _ := NewMoney(dec("25.99"), "USD")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseIDsRejectEmpty(t *testing.T) {
	var validationErr *ValidationError

	_, err := ParseProductID("  ")
	assert.ErrorAs(t, err, &validationErr)
	_, err = ParsePartnerID("")
	assert.ErrorAs(t, err, &validationErr)
	_, err = ParseVariantID("")
	assert.ErrorAs(t, err, &validationErr)
	_, err = ParseCategoryID("")
	assert.ErrorAs(t, err, &validationErr)

	id, err := ParseProductID("abc-123")
	assert.NoError(t, err)
	assert.Equal(t, "abc-123", id.String())
}

func TestNewSKU(t *testing.T) {
	sku, err := NewSKU("  cot-001 ")
	assert.NoError(t, err)
	assert.Equal(t, "COT-001", sku)

	_, err = NewSKU("   ")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewPartnerCode(t *testing.T) {
	code, err := NewPartnerCode(" acme ")
	assert.NoError(t, err)
	assert.Equal(t, "ACME", code)

	_, err = NewPartnerCode("")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewColorCode(t *testing.T) {
	valid := []string{"#DC143C", "#000080", "#abcdef", "#ABCDEF", "#123456"}
	for _, code := range valid {
		got, err := NewColorCode(code)
		assert.NoError(t, err, code)
		assert.Equal(t, code, got)
	}

	invalid := []string{"DC143C", "#DC143", "#DC143CF", "#GG143C", "", "#dc 43c"}
	var validationErr *ValidationError
	for _, code := range invalid {
		_, err := NewColorCode(code)
		assert.ErrorAs(t, err, &validationErr, code)
	}
}

func TestErrorMessages(t *testing.T) {
	notFound := &NotFoundError{Resource: "product", ID: "p-1"}
	assert.Equal(t, "product with ID p-1 not found", notFound.Error())

	duplicate := &DuplicatePartnerError{VariantID: "v-1", PartnerID: "p-1"}
	assert.Contains(t, duplicate.Error(), "v-1")
	assert.Contains(t, duplicate.Error(), "p-1")
}

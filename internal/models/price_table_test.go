package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPriceTableStartsAtVersionOne(t *testing.T) {
	productID := NewProductID()
	price, err := NewPriceTable(productID, dec("19.49"), dec("25.99"), "inr", "merch-team")

	assert.NoError(t, err)
	assert.Equal(t, productID, price.ProductID)
	assert.Equal(t, 1, price.Version)
	assert.Equal(t, "INR", price.Currency)
	assert.Equal(t, "merch-team", price.CreatedBy)
	assert.Nil(t, price.ModifiedBy)
	assert.Nil(t, price.ModifiedTime)
}

func TestNewPriceTableValidation(t *testing.T) {
	var validationErr *ValidationError

	_, err := NewPriceTable(NewProductID(), dec("-1"), dec("25.99"), "INR", "tester")
	assert.ErrorAs(t, err, &validationErr)

	_, err = NewPriceTable(NewProductID(), dec("19.49"), dec("25.99"), "RUPEES", "tester")
	assert.ErrorAs(t, err, &validationErr)
}

func TestApplyUpdateBumpsVersionByOne(t *testing.T) {
	price, _ := NewPriceTable(NewProductID(), dec("19.49"), dec("25.99"), "INR", "tester")
	created := price.CreatedTime

	retail := dec("29.99")
	err := price.ApplyUpdate(PriceTableUpdate{RetailPrice: &retail}, "pricing-bot")

	assert.NoError(t, err)
	assert.Equal(t, 2, price.Version)
	assert.True(t, price.RetailPrice.Equal(dec("29.99")))
	// Unspecified fields are untouched.
	assert.True(t, price.WholesalePrice.Equal(dec("19.49")))
	assert.Equal(t, created, price.CreatedTime)
	assert.NotNil(t, price.ModifiedBy)
	assert.Equal(t, "pricing-bot", *price.ModifiedBy)
	assert.NotNil(t, price.ModifiedTime)

	wholesale := dec("21.00")
	assert.NoError(t, price.ApplyUpdate(PriceTableUpdate{WholesalePrice: &wholesale}, "pricing-bot"))
	assert.Equal(t, 3, price.Version)
}

func TestApplyUpdateRejectedUpdateLeavesTableUnchanged(t *testing.T) {
	price, _ := NewPriceTable(NewProductID(), dec("19.49"), dec("25.99"), "INR", "tester")

	bad := dec("-5")
	retail := dec("29.99")
	err := price.ApplyUpdate(PriceTableUpdate{RetailPrice: &retail, WholesalePrice: &bad}, "pricing-bot")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, price.Version)
	assert.True(t, price.RetailPrice.Equal(dec("25.99")))
	assert.Nil(t, price.ModifiedBy)
}

func TestNewCategory(t *testing.T) {
	category, err := NewCategory("  Fabrics ", "woven goods")
	assert.NoError(t, err)
	assert.Equal(t, "Fabrics", category.Name)

	_, err = NewCategory("", "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Error(t, category.Rename("  "))
	assert.Equal(t, "Fabrics", category.Name)
}

func TestNewPartner(t *testing.T) {
	partner, err := NewPartner("Acme Retail", " acme ")
	assert.NoError(t, err)
	assert.Equal(t, "ACME", partner.Code)
	assert.True(t, partner.IsActive)

	_, err = NewPartner("", "ACME")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPartnerUpdateContactDetailsPartial(t *testing.T) {
	partner, _ := NewPartner("Acme Retail", "ACME")
	partner.ContactEmail = "old@acme.test"
	partner.ContactPhone = "111"

	email := "new@acme.test"
	partner.UpdateContactDetails(&email, nil, nil)

	assert.Equal(t, "new@acme.test", partner.ContactEmail)
	assert.Equal(t, "111", partner.ContactPhone)

	partner.Deactivate()
	assert.False(t, partner.IsActive)
	partner.Activate()
	assert.True(t, partner.IsActive)
}

package services

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestVariant(t *testing.T) *models.ProductVariant {
	t.Helper()
	variant, err := models.NewProductVariant(models.NewProductID(), "Crimson", "Crimson Red", "#DC143C", "CRM", "tester")
	assert.NoError(t, err)
	return variant
}

func TestAddStockCreatesRecord(t *testing.T) {
	variant := newTestVariant(t)
	partner, _ := models.NewPartner("Acme Retail", "ACME")

	variantRepo := new(MockVariantRepository)
	variantRepo.On("GetByID", variant.ID).Return(variant, nil)
	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("GetByID", partner.ID).Return(partner, nil)
	stockRepo := new(MockStockRepository)
	stockRepo.On("Create", mock.AnythingOfType("*models.StockRecord")).Return(nil)

	service := NewStockService(variantRepo, stockRepo, partnerRepo, nil)

	record, err := service.AddStock(variant.ID, partner.ID, AddStockInput{
		AvailableQuantity: 100,
		RetailPrice:       dec("25.99"),
		WholesalePrice:    dec("19.49"),
		Currency:          "INR",
		PartnerSKU:        "ACME-CRM",
	})

	assert.NoError(t, err)
	assert.Equal(t, 100, record.QuantityAvailable)
	assert.Equal(t, "ACME-CRM", record.PartnerSKU)
	stockRepo.AssertExpectations(t)
}

func TestAddStockRejectsUnknownPartner(t *testing.T) {
	variant := newTestVariant(t)
	partnerID := models.NewPartnerID()

	variantRepo := new(MockVariantRepository)
	variantRepo.On("GetByID", variant.ID).Return(variant, nil)
	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("GetByID", partnerID).Return(nil, &models.NotFoundError{Resource: "partner", ID: partnerID.String()})
	stockRepo := new(MockStockRepository)

	service := NewStockService(variantRepo, stockRepo, partnerRepo, nil)

	_, err := service.AddStock(variant.ID, partnerID, AddStockInput{AvailableQuantity: 10, Currency: "INR"})

	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	stockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddStockRejectsDuplicatePartner(t *testing.T) {
	variant := newTestVariant(t)
	partnerID := models.NewPartnerID()
	variant.AddStockRecord(partnerID, 100, dec("25.99"), dec("19.49"), "INR")

	variantRepo := new(MockVariantRepository)
	variantRepo.On("GetByID", variant.ID).Return(variant, nil)
	stockRepo := new(MockStockRepository)

	service := NewStockService(variantRepo, stockRepo, nil, nil)

	_, err := service.AddStock(variant.ID, partnerID, AddStockInput{
		AvailableQuantity: 50,
		RetailPrice:       dec("30.00"),
		WholesalePrice:    dec("20.00"),
		Currency:          "INR",
	})

	var duplicateErr *models.DuplicatePartnerError
	assert.ErrorAs(t, err, &duplicateErr)
	// The original record is unchanged.
	assert.Equal(t, 100, variant.GetStockForPartner(partnerID).QuantityAvailable)
	stockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddOrUpdateStockFallsBackToUpdate(t *testing.T) {
	variant := newTestVariant(t)
	partnerID := models.NewPartnerID()
	variant.AddStockRecord(partnerID, 100, dec("25.99"), dec("19.49"), "INR")

	variantRepo := new(MockVariantRepository)
	variantRepo.On("GetByID", variant.ID).Return(variant, nil)
	stockRepo := new(MockStockRepository)
	stockRepo.On("Update", mock.AnythingOfType("*models.StockRecord")).Return(nil)

	service := NewStockService(variantRepo, stockRepo, nil, nil)

	record, err := service.AddOrUpdateStock(variant.ID, partnerID, AddStockInput{
		AvailableQuantity: 40,
		RetailPrice:       dec("27.50"),
		WholesalePrice:    dec("21.00"),
		Currency:          "INR",
	})

	assert.NoError(t, err)
	assert.Equal(t, 40, record.QuantityAvailable)
	assert.True(t, record.RetailPrice.Equal(dec("27.50")))
	stockRepo.AssertNotCalled(t, "Create", mock.Anything)
	stockRepo.AssertExpectations(t)
}

func TestUpdateStockUnknownPartnerIs404(t *testing.T) {
	variant := newTestVariant(t)

	variantRepo := new(MockVariantRepository)
	variantRepo.On("GetByID", variant.ID).Return(variant, nil)
	stockRepo := new(MockStockRepository)

	service := NewStockService(variantRepo, stockRepo, nil, nil)

	qty := 10
	_, err := service.UpdateStock(variant.ID, models.NewPartnerID(), models.StockRecordUpdate{QuantityAvailable: &qty})

	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCreateProductStockDerivesAvailable(t *testing.T) {
	productID := models.NewProductID()
	productStockRepo := new(MockProductStockRepository)
	productStockRepo.On("Create", mock.AnythingOfType("*models.Stock")).Return(nil)

	service := NewStockService(nil, nil, nil, productStockRepo)

	stock, err := service.CreateProductStock(productID, ProductStockInput{
		CurrentStock:  120,
		ReservedStock: 30,
		UpdatedBy:     "warehouse",
	})

	assert.NoError(t, err)
	assert.Equal(t, 90, stock.AvailableStock)
	assert.Equal(t, "warehouse", stock.UpdatedBy)
}

func TestCreateProductStockRejectsNegative(t *testing.T) {
	service := NewStockService(nil, nil, nil, new(MockProductStockRepository))

	_, err := service.CreateProductStock(models.NewProductID(), ProductStockInput{CurrentStock: -1})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateProductStockRecomputes(t *testing.T) {
	productID := models.NewProductID()
	existing := &models.Stock{ID: "s-1", ProductID: productID, CurrentStock: 120, ReservedStock: 30, AvailableStock: 90}

	productStockRepo := new(MockProductStockRepository)
	productStockRepo.On("GetByProductID", productID).Return(existing, nil)
	productStockRepo.On("Update", existing).Return(nil)

	service := NewStockService(nil, nil, nil, productStockRepo)

	reserved := 50
	stock, err := service.UpdateProductStock(productID, ProductStockUpdate{ReservedStock: &reserved, UpdatedBy: "warehouse"})

	assert.NoError(t, err)
	assert.Equal(t, 120, stock.CurrentStock)
	assert.Equal(t, 70, stock.AvailableStock)
}

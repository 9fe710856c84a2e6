package services

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetPriceCreatesTableAtVersionOne(t *testing.T) {
	product, _ := models.NewProduct("Title", "SKU-1", "tester")

	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", product.ID).Return(product, nil)
	priceRepo := new(MockPriceRepository)
	priceRepo.On("GetByProductID", product.ID).Return(nil, &models.NotFoundError{Resource: "price table", ID: product.ID.String()})
	priceRepo.On("Create", mock.AnythingOfType("*models.PriceTable")).Return(nil)

	service := NewPriceService(productRepo, priceRepo)

	price, err := service.SetPrice(product.ID, dec("19.49"), dec("25.99"), "INR", "merch-team")

	assert.NoError(t, err)
	assert.Equal(t, 1, price.Version)
	assert.Equal(t, "merch-team", price.CreatedBy)
	assert.Nil(t, price.ModifiedBy)
	priceRepo.AssertExpectations(t)
}

func TestSetPriceBumpsExistingVersion(t *testing.T) {
	product, _ := models.NewProduct("Title", "SKU-1", "tester")
	existing, _ := models.NewPriceTable(product.ID, dec("19.49"), dec("25.99"), "INR", "merch-team")

	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", product.ID).Return(product, nil)
	priceRepo := new(MockPriceRepository)
	priceRepo.On("GetByProductID", product.ID).Return(existing, nil)
	priceRepo.On("Update", existing).Return(nil)

	service := NewPriceService(productRepo, priceRepo)

	price, err := service.SetPrice(product.ID, dec("21.00"), dec("29.99"), "INR", "pricing-bot")

	assert.NoError(t, err)
	assert.Equal(t, 2, price.Version)
	assert.True(t, price.RetailPrice.Equal(dec("29.99")))
	assert.Equal(t, "pricing-bot", *price.ModifiedBy)
	assert.NotNil(t, price.ModifiedTime)
	priceRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSetPriceUnknownProduct(t *testing.T) {
	productID := models.NewProductID()
	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", productID).Return(nil, &models.NotFoundError{Resource: "product", ID: productID.String()})

	service := NewPriceService(productRepo, new(MockPriceRepository))

	_, err := service.SetPrice(productID, dec("19.49"), dec("25.99"), "INR", "tester")

	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUpdatePricePartial(t *testing.T) {
	productID := models.NewProductID()
	existing, _ := models.NewPriceTable(productID, dec("19.49"), dec("25.99"), "INR", "merch-team")

	priceRepo := new(MockPriceRepository)
	priceRepo.On("GetByProductID", productID).Return(existing, nil)
	priceRepo.On("Update", existing).Return(nil)

	service := NewPriceService(new(MockProductRepository), priceRepo)

	retail := dec("27.49")
	price, err := service.UpdatePrice(productID, models.PriceTableUpdate{RetailPrice: &retail}, "pricing-bot")

	assert.NoError(t, err)
	assert.Equal(t, 2, price.Version)
	assert.True(t, price.WholesalePrice.Equal(dec("19.49")))
	assert.True(t, price.RetailPrice.Equal(dec("27.49")))
}

func TestCreatePartnerRejectsTakenCode(t *testing.T) {
	existing, _ := models.NewPartner("Acme Retail", "ACME")

	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("GetByCode", "ACME").Return(existing, nil)

	service := NewPartnerService(partnerRepo)

	_, err := service.CreatePartner(CreatePartnerInput{Name: "Other", Code: "acme"})

	var conflictErr *models.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	partnerRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePartnerNormalizesCode(t *testing.T) {
	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("GetByCode", "ACME").Return(nil, &models.NotFoundError{Resource: "partner", ID: "ACME"})
	partnerRepo.On("Create", mock.AnythingOfType("*models.Partner")).Return(nil)

	service := NewPartnerService(partnerRepo)

	partner, err := service.CreatePartner(CreatePartnerInput{
		Name:         "Acme Retail",
		Code:         " acme ",
		ContactEmail: "sales@acme.test",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ACME", partner.Code)
	assert.Equal(t, "sales@acme.test", partner.ContactEmail)
	partnerRepo.AssertExpectations(t)
}

func TestDeletePartnerReportsMissing(t *testing.T) {
	partnerRepo := new(MockPartnerRepository)
	partnerRepo.On("Delete", models.PartnerID("gone")).Return(&models.NotFoundError{Resource: "partner", ID: "gone"})

	service := NewPartnerService(partnerRepo)

	deleted, err := service.DeletePartner(models.PartnerID("gone"))

	assert.NoError(t, err)
	assert.False(t, deleted)
}

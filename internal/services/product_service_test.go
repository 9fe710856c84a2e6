package services

import (
	"errors"
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateProductDedupsVariantBatch(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("GetBySKU", "COT-001").Return(nil, &models.NotFoundError{Resource: "product", ID: "COT-001"})
	productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)

	service := NewProductService(productRepo, nil)

	variant := VariantInput{
		VariantName: "Crimson",
		ColorName:   "Crimson Red",
		ColorCode:   "#DC143C",
		SKUSuffix:   "CRM",
	}
	other := variant
	other.SKUSuffix = "CRM-2"

	product, err := service.CreateProduct(CreateProductInput{
		Title:    "Premium Cotton Collection",
		SKU:      "cot-001",
		Variants: []VariantInput{variant, variant, other, variant},
	})

	assert.NoError(t, err)
	// First-seen wins: the duplicate (name, suffix) pairs collapse, the
	// distinct suffix survives, and order is preserved.
	assert.Len(t, product.Variants, 2)
	assert.Equal(t, "CRM", product.Variants[0].SKUSuffix)
	assert.Equal(t, "CRM-2", product.Variants[1].SKUSuffix)
	productRepo.AssertExpectations(t)
}

func TestCreateProductRejectsTakenSKU(t *testing.T) {
	existing, _ := models.NewProduct("Existing", "COT-001", "tester")
	productRepo := new(MockProductRepository)
	productRepo.On("GetBySKU", "COT-001").Return(existing, nil)

	service := NewProductService(productRepo, nil)

	_, err := service.CreateProduct(CreateProductInput{Title: "New", SKU: "cot-001"})

	var conflictErr *models.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProductQueuesAnalysisJobForImages(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("GetBySKU", mock.Anything).Return(nil, &models.NotFoundError{Resource: "product"})
	productRepo.On("Create", mock.Anything).Return(nil)

	queue := new(MockAnalysisQueue)
	queue.On("PublishAnalysisJob", mock.MatchedBy(func(job models.ProductAnalysisJob) bool {
		return job.SKU == "COT-001" && job.AnalysisType == "genai_analysis"
	})).Return(nil)

	service := NewProductService(productRepo, queue)

	_, err := service.CreateProduct(CreateProductInput{
		Title:     "Premium Cotton Collection",
		SKU:       "COT-001",
		ImageURLs: map[string]string{"main": "https://img.test/main.jpg"},
	})

	assert.NoError(t, err)
	queue.AssertExpectations(t)
}

func TestCreateProductQueueFailureDoesNotFailRequest(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("GetBySKU", mock.Anything).Return(nil, &models.NotFoundError{Resource: "product"})
	productRepo.On("Create", mock.Anything).Return(nil)

	queue := new(MockAnalysisQueue)
	queue.On("PublishAnalysisJob", mock.Anything).Return(errors.New("broker down"))

	service := NewProductService(productRepo, queue)

	product, err := service.CreateProduct(CreateProductInput{
		Title:     "Premium Cotton Collection",
		SKU:       "COT-001",
		ImageURLs: map[string]string{"main": "https://img.test/main.jpg"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, product)
}

func TestCreateProductNoImagesNoJob(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("GetBySKU", mock.Anything).Return(nil, &models.NotFoundError{Resource: "product"})
	productRepo.On("Create", mock.Anything).Return(nil)

	queue := new(MockAnalysisQueue)

	service := NewProductService(productRepo, queue)
	_, err := service.CreateProduct(CreateProductInput{Title: "Plain", SKU: "PLN-001"})

	assert.NoError(t, err)
	queue.AssertNotCalled(t, "PublishAnalysisJob", mock.Anything)
}

func TestUpdateProductPartial(t *testing.T) {
	product, _ := models.NewProduct("Old Title", "SKU-1", "tester")
	product.Description = "old description"

	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", product.ID).Return(product, nil)
	productRepo.On("Update", product).Return(nil)

	service := NewProductService(productRepo, nil)

	title := "New Title"
	updated, err := service.UpdateProduct(product.ID, ProductUpdate{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "old description", updated.Description)
}

func TestDeleteProductReportsMissing(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("Delete", models.ProductID("gone")).Return(&models.NotFoundError{Resource: "product", ID: "gone"})

	service := NewProductService(productRepo, nil)

	deleted, err := service.DeleteProduct(models.ProductID("gone"))

	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestPublishProductPersistsTransition(t *testing.T) {
	product, _ := models.NewProduct("Title", "SKU-1", "tester")

	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", product.ID).Return(product, nil)
	productRepo.On("Update", product).Return(nil)

	service := NewProductService(productRepo, nil)

	published, err := service.PublishProduct(product.ID)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPublished, published.Status)
	productRepo.AssertExpectations(t)
}

func TestDiscontinueProductRecordsReasonAndNotes(t *testing.T) {
	product, _ := models.NewProduct("Title", "SKU-1", "tester")

	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", product.ID).Return(product, nil)
	productRepo.On("Update", product).Return(nil)

	service := NewProductService(productRepo, nil)

	notes := "supplier closed"
	discontinued, err := service.DiscontinueProduct(product.ID, "supplier issue", &notes)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusDiscontinued, discontinued.Status)
	assert.False(t, discontinued.Enabled)
	assert.Equal(t, "supplier issue", *discontinued.DiscontinuationReason)
	assert.Equal(t, "supplier closed", *discontinued.StatusNotes)
}

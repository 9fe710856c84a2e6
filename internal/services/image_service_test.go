package services

import (
	"errors"
	"strings"
	"testing"

	"catalog/internal/models"
	"catalog/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadRawImageStoresAndQueues(t *testing.T) {
	store := storage.NewMemoryStorage("catalog-images")
	queue := new(MockAnalysisQueue)
	queue.On("PublishProcessingJob", mock.MatchedBy(func(job models.ProcessingJob) bool {
		return job.Filename == "swatch.jpg" && strings.HasPrefix(job.ImageKey, "raw/")
	})).Return(nil)

	service := NewImageService(store, queue, nil)

	key, err := service.UploadRawImage(models.ImageUpload{
		Filename:    "swatch.jpg",
		Content:     []byte("jpegdata"),
		ContentType: "image/jpeg",
	})

	assert.NoError(t, err)
	content, ok := store.Get(key)
	assert.True(t, ok)
	assert.Equal(t, []byte("jpegdata"), content)
	queue.AssertExpectations(t)
}

func TestUploadRawImageQueueFailureDoesNotFailUpload(t *testing.T) {
	store := storage.NewMemoryStorage("catalog-images")
	queue := new(MockAnalysisQueue)
	queue.On("PublishProcessingJob", mock.Anything).Return(errors.New("broker down"))

	service := NewImageService(store, queue, nil)

	key, err := service.UploadRawImage(models.ImageUpload{Filename: "swatch.jpg", Content: []byte("x")})

	assert.NoError(t, err)
	assert.NotEmpty(t, key)
}

func TestUploadProductImageRecordsURLAndQueuesAnalysis(t *testing.T) {
	product, _ := models.NewProduct("Premium Cotton Collection", "COT-001", "tester")

	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", product.ID).Return(product, nil)
	productRepo.On("Update", product).Return(nil)

	store := storage.NewMemoryStorage("catalog-images")
	queue := new(MockAnalysisQueue)
	queue.On("PublishAnalysisJob", mock.MatchedBy(func(job models.ProductAnalysisJob) bool {
		return job.ProductID == product.ID.String() && job.SKU == "COT-001"
	})).Return(nil)

	service := NewImageService(store, queue, productRepo)

	updated, err := service.UploadProductImage(product.ID, "main", models.ImageUpload{
		Filename:    "main.jpg",
		Content:     []byte("jpegdata"),
		ContentType: "image/jpeg",
	})

	assert.NoError(t, err)
	url := updated.ImageURLs["main"]
	assert.Contains(t, url, "catalog-images.storage.local")
	assert.Contains(t, url, "products/main/")
	productRepo.AssertExpectations(t)
	queue.AssertExpectations(t)
}

func TestUploadProductImageUnknownProduct(t *testing.T) {
	productID := models.NewProductID()
	productRepo := new(MockProductRepository)
	productRepo.On("GetByID", productID).Return(nil, &models.NotFoundError{Resource: "product", ID: productID.String()})

	service := NewImageService(storage.NewMemoryStorage("catalog-images"), nil, productRepo)

	_, err := service.UploadProductImage(productID, "main", models.ImageUpload{Filename: "x.jpg"})

	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

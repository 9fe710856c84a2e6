package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/storage"
)

// ImageService stores uploaded images through the object-storage port and
// queues processing jobs. The queue handoff is fire-and-forget; the core
// never blocks on, or retries, the downstream processing.
type ImageService struct {
	storage     storage.ObjectStorage
	queue       AnalysisQueue
	productRepo repositories.ProductRepository
}

// NewImageService creates a new ImageService. The queue may be nil, in
// which case uploads are stored without dispatching a job.
func NewImageService(store storage.ObjectStorage, queue AnalysisQueue, productRepo repositories.ProductRepository) *ImageService {
	return &ImageService{
		storage:     store,
		queue:       queue,
		productRepo: productRepo,
	}
}

// UploadRawImage stores a raw image and queues it for analysis, returning
// the storage key. A queue failure is logged but does not fail the upload.
func (s *ImageService) UploadRawImage(image models.ImageUpload) (string, error) {
	key, err := s.storage.Store("raw", image.Filename, image.Content, image.ContentType)
	if err != nil {
		return "", err
	}
	if s.queue != nil {
		job := models.ProcessingJob{ImageKey: key, Filename: image.Filename}
		if err := s.queue.PublishProcessingJob(job); err != nil {
			log.Printf("Warning: failed to queue processing job for %s: %v", image.Filename, err)
		}
	}
	return key, nil
}

// UploadProductImage stores an image of a given type for a product and
// records the resulting URL on the aggregate. The product must resolve.
func (s *ImageService) UploadProductImage(productID models.ProductID, imageType string, image models.ImageUpload) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	key, err := s.storage.Store("products/"+imageType, image.Filename, image.Content, image.ContentType)
	if err != nil {
		return nil, err
	}
	if product.ImageURLs == nil {
		product.ImageURLs = map[string]string{}
	}
	product.ImageURLs[imageType] = s.storage.URL(key)

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	if s.queue != nil {
		job := models.NewProductAnalysisJob(product.ID.String(), product.SKU, product.ImageURLs)
		if err := s.queue.PublishAnalysisJob(job); err != nil {
			log.Printf("Warning: failed to queue analysis job for product %s: %v", product.ID, err)
		}
	}
	return product, nil
}

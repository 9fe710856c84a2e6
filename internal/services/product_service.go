package services

import (
	"errors"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// AnalysisQueue is the outbound job-queue port. Submissions are
// fire-and-forget: the core hands off a job description and never blocks on
// its completion. Timeouts and retries belong to the implementation.
type AnalysisQueue interface {
	PublishAnalysisJob(job models.ProductAnalysisJob) error
	PublishProcessingJob(job models.ProcessingJob) error
}

// VariantInput carries the attributes of one variant submitted alongside a
// product creation request.
type VariantInput struct {
	VariantName      string
	ColorName        string
	ColorCode        string
	SKUSuffix        string
	RangeDetails     map[string]string
	AdditionalImages map[string]string
	CreatedBy        string
}

// CreateProductInput carries the attributes of a product creation request.
type CreateProductInput struct {
	Title           string
	SKU             string
	Description     string
	Material        string
	Pattern         string
	ColorPrimary    string
	Colors          []string
	WidthEstimateCm *int
	Scale           string
	SpecialFeatures []string
	ImageURLs       map[string]string
	CategoryID      *models.CategoryID
	CreatedBy       string
	Variants        []VariantInput
}

// ProductUpdate carries the optional fields of a partial product update;
// nil fields are left unchanged.
type ProductUpdate struct {
	Title           *string
	Description     *string
	Material        *string
	Pattern         *string
	ColorPrimary    *string
	Colors          []string
	WidthEstimateCm *int
	Scale           *string
	SpecialFeatures []string
	ImageURLs       map[string]string
	CategoryID      *models.CategoryID
}

// ProductService handles business logic for the product aggregate:
// creation with variant deduplication, lifecycle transitions, and the
// cascading delete.
type ProductService struct {
	productRepo   repositories.ProductRepository
	analysisQueue AnalysisQueue
}

// NewProductService creates a new ProductService. The analysis queue may be
// nil, in which case no jobs are dispatched.
func NewProductService(productRepo repositories.ProductRepository, analysisQueue AnalysisQueue) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		analysisQueue: analysisQueue,
	}
}

// dedupVariants drops duplicate variants from a submitted batch. Two
// variants are duplicates when (variant_name, sku_suffix) match; the
// first-seen one wins and the order of survivors is the first-seen order.
// This runs before any persistence.
func dedupVariants(variants []VariantInput) []VariantInput {
	type key struct {
		name   string
		suffix string
	}
	seen := make(map[key]bool)
	unique := make([]VariantInput, 0, len(variants))
	for _, v := range variants {
		k := key{name: v.VariantName, suffix: v.SKUSuffix}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, v)
	}
	return unique
}

// CreateProduct validates the input, enforces catalog-wide SKU uniqueness,
// deduplicates the submitted variant batch and persists the aggregate. When
// the product carries image URLs, an analysis job is queued fire-and-forget;
// a publish failure is logged and never fails the request.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	product, err := models.NewProduct(input.Title, input.SKU, input.CreatedBy)
	if err != nil {
		return nil, err
	}

	if existing, err := s.productRepo.GetBySKU(product.SKU); err == nil && existing != nil {
		return nil, &models.ConflictError{Message: "SKU '" + product.SKU + "' is already taken"}
	}

	product.Description = input.Description
	product.Material = input.Material
	product.Pattern = input.Pattern
	product.ColorPrimary = input.ColorPrimary
	if input.Colors != nil {
		product.Colors = input.Colors
	}
	product.WidthEstimateCm = input.WidthEstimateCm
	product.Scale = input.Scale
	if input.SpecialFeatures != nil {
		product.SpecialFeatures = input.SpecialFeatures
	}
	if input.ImageURLs != nil {
		product.ImageURLs = input.ImageURLs
	}
	product.CategoryID = input.CategoryID

	for _, variantInput := range dedupVariants(input.Variants) {
		variant, err := models.NewProductVariant(
			product.ID,
			variantInput.VariantName,
			variantInput.ColorName,
			variantInput.ColorCode,
			variantInput.SKUSuffix,
			variantInput.CreatedBy,
		)
		if err != nil {
			return nil, err
		}
		if variantInput.RangeDetails != nil {
			variant.RangeDetails = variantInput.RangeDetails
		}
		if variantInput.AdditionalImages != nil {
			variant.AdditionalImages = variantInput.AdditionalImages
		}
		product.AddVariant(*variant)
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	if s.analysisQueue != nil && len(product.ImageURLs) > 0 {
		job := models.NewProductAnalysisJob(product.ID.String(), product.SKU, product.ImageURLs)
		if err := s.analysisQueue.PublishAnalysisJob(job); err != nil {
			log.Printf("Warning: failed to queue analysis job for product %s: %v", product.ID, err)
		}
	}

	return product, nil
}

// GetProduct retrieves a single product aggregate by its ID.
func (s *ProductService) GetProduct(id models.ProductID) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetAllProducts retrieves all products with their variants and stock.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// UpdateProduct applies a partial update to an existing product. Only the
// supplied fields change; updated_at is always refreshed.
func (s *ProductService) UpdateProduct(id models.ProductID, update ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if err := product.UpdateTitle(*update.Title); err != nil {
			return nil, err
		}
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Material != nil {
		product.Material = *update.Material
	}
	if update.Pattern != nil {
		product.Pattern = *update.Pattern
	}
	if update.ColorPrimary != nil {
		product.ColorPrimary = *update.ColorPrimary
	}
	if update.Colors != nil {
		product.Colors = update.Colors
	}
	if update.WidthEstimateCm != nil {
		product.WidthEstimateCm = update.WidthEstimateCm
	}
	if update.Scale != nil {
		product.Scale = *update.Scale
	}
	if update.SpecialFeatures != nil {
		product.SpecialFeatures = update.SpecialFeatures
	}
	if update.ImageURLs != nil {
		product.ImageURLs = update.ImageURLs
	}
	if update.CategoryID != nil {
		product.CategoryID = update.CategoryID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product and cascades to its variants, stock
// records and price table. Returns false when the product does not exist.
func (s *ProductService) DeleteProduct(id models.ProductID) (bool, error) {
	err := s.productRepo.Delete(id)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PublishProduct publishes a product. Calling it on a product that is not
// in DRAFT or PENDING_REVIEW is a no-op, not an error.
func (s *ProductService) PublishProduct(id models.ProductID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Publish()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DiscontinueProduct discontinues a product with a reason and optional
// notes. Legal from any state.
func (s *ProductService) DiscontinueProduct(id models.ProductID, reason string, notes *string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Discontinue(reason)
	product.StatusNotes = notes
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductStatus sets the lifecycle status directly. Moving away from
// DISCONTINUED clears the discontinuation fields.
func (s *ProductService) UpdateProductStatus(id models.ProductID, status models.ProductStatus, notes *string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := product.SetStatus(status, notes); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// EnableProduct sets the enabled flag without touching the status.
func (s *ProductService) EnableProduct(id models.ProductID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Enable()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DisableProduct clears the enabled flag without touching the status.
func (s *ProductService) DisableProduct(id models.ProductID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Disable()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

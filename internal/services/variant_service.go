package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// VariantService handles business logic for product variants.
type VariantService struct {
	productRepo repositories.ProductRepository
	variantRepo repositories.VariantRepository
}

// NewVariantService creates a new VariantService.
func NewVariantService(productRepo repositories.ProductRepository, variantRepo repositories.VariantRepository) *VariantService {
	return &VariantService{
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

// CreateVariant attaches a new variant to an existing product. The product
// must resolve, otherwise NotFoundError.
func (s *VariantService) CreateVariant(productID models.ProductID, input VariantInput) (*models.ProductVariant, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	variant, err := models.NewProductVariant(
		productID,
		input.VariantName,
		input.ColorName,
		input.ColorCode,
		input.SKUSuffix,
		input.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if input.RangeDetails != nil {
		variant.RangeDetails = input.RangeDetails
	}
	if input.AdditionalImages != nil {
		variant.AdditionalImages = input.AdditionalImages
	}

	if err := s.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// GetVariant retrieves a single variant with its stock records.
func (s *VariantService) GetVariant(id models.VariantID) (*models.ProductVariant, error) {
	return s.variantRepo.GetByID(id)
}

// ListVariantsWithStock returns all variants of a product, each with its
// stock records. The product must resolve.
func (s *VariantService) ListVariantsWithStock(productID models.ProductID) ([]models.ProductVariant, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.variantRepo.GetByProductID(productID)
}

// VariantUpdate carries the optional fields of a partial variant update.
type VariantUpdate struct {
	VariantName      *string
	ColorName        *string
	ColorCode        *string
	SKUSuffix        *string
	RangeDetails     map[string]string
	AdditionalImages map[string]string
	IsActive         *bool
}

// UpdateVariant applies a partial update to an existing variant.
func (s *VariantService) UpdateVariant(id models.VariantID, update VariantUpdate) (*models.ProductVariant, error) {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.ColorCode != nil {
		code, err := models.NewColorCode(*update.ColorCode)
		if err != nil {
			return nil, err
		}
		variant.ColorCode = code
	}
	if update.VariantName != nil {
		if *update.VariantName == "" {
			return nil, &models.ValidationError{Field: "variant_name", Message: "variant name cannot be empty"}
		}
		variant.VariantName = *update.VariantName
	}
	if update.ColorName != nil {
		variant.ColorName = *update.ColorName
	}
	if update.SKUSuffix != nil {
		variant.SKUSuffix = *update.SKUSuffix
	}
	if update.RangeDetails != nil {
		variant.RangeDetails = update.RangeDetails
	}
	if update.AdditionalImages != nil {
		variant.AdditionalImages = update.AdditionalImages
	}
	if update.IsActive != nil {
		variant.IsActive = *update.IsActive
	}

	if err := s.variantRepo.Update(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes a variant; its stock records go with it in the
// same transaction, so no orphan stock rows remain.
func (s *VariantService) DeleteVariant(id models.VariantID) error {
	return s.variantRepo.Delete(id)
}

package services

import (
	"errors"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/shopspring/decimal"
)

// PriceService handles the product-level reference price table.
type PriceService struct {
	productRepo repositories.ProductRepository
	priceRepo   repositories.PriceRepository
}

// NewPriceService creates a new PriceService.
func NewPriceService(productRepo repositories.ProductRepository, priceRepo repositories.PriceRepository) *PriceService {
	return &PriceService{
		productRepo: productRepo,
		priceRepo:   priceRepo,
	}
}

// SetPrice creates the product's price table at version 1, or applies the
// prices to the existing table, bumping its version by one and stamping the
// modifier. Concurrent updates are last-write-wins; the version is not used
// for optimistic-concurrency rejection.
func (s *PriceService) SetPrice(productID models.ProductID, wholesale, retail decimal.Decimal, currency, actor string) (*models.PriceTable, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	existing, err := s.priceRepo.GetByProductID(productID)
	if err != nil {
		var notFound *models.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		price, err := models.NewPriceTable(productID, wholesale, retail, currency, actor)
		if err != nil {
			return nil, err
		}
		if err := s.priceRepo.Create(price); err != nil {
			return nil, err
		}
		return price, nil
	}

	update := models.PriceTableUpdate{
		WholesalePrice: &wholesale,
		RetailPrice:    &retail,
		Currency:       &currency,
	}
	if err := existing.ApplyUpdate(update, actor); err != nil {
		return nil, err
	}
	if err := s.priceRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdatePrice applies a partial update to an existing price table.
func (s *PriceService) UpdatePrice(productID models.ProductID, update models.PriceTableUpdate, actor string) (*models.PriceTable, error) {
	price, err := s.priceRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if err := price.ApplyUpdate(update, actor); err != nil {
		return nil, err
	}
	if err := s.priceRepo.Update(price); err != nil {
		return nil, err
	}
	return price, nil
}

// GetPrice retrieves the price table attached to a product.
func (s *PriceService) GetPrice(productID models.ProductID) (*models.PriceTable, error) {
	return s.priceRepo.GetByProductID(productID)
}

// DeletePrice removes the price table attached to a product.
func (s *PriceService) DeletePrice(productID models.ProductID) error {
	return s.priceRepo.Delete(productID)
}

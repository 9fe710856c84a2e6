package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/shopspring/decimal"
)

// CatalogEntry is one row of the catalog list view: a product summary with
// stock and pricing figures aggregated across all variants and partners.
type CatalogEntry struct {
	ProductID         string               `json:"product_id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	SKU               string               `json:"sku_id"`
	Status            models.ProductStatus `json:"status"`
	Enabled           bool                 `json:"enabled"`
	CategoryID        *string              `json:"category_id"`
	CategoryName      string               `json:"category_name,omitempty"`
	TotalStock        int                  `json:"total_stock"`
	MinRetailPrice    decimal.Decimal      `json:"min_retail_price"`
	MinWholesalePrice decimal.Decimal      `json:"min_wholesale_price"`
	VariantColors     []string             `json:"variant_colors"`
}

// CatalogService computes the read side of the catalog: the list view with
// per-product stock and price aggregation.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListCatalog scans every product's variants and stock records and reports
// total available stock, minimum retail and wholesale price, and the set of
// distinct variant colors. Missing data never fails the listing: absent
// variant or stock collections contribute zero, and a dangling category
// reference resolves to no category name.
func (s *CatalogService) ListCatalog() ([]CatalogEntry, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]CatalogEntry, 0, len(products))
	for i := range products {
		entries = append(entries, s.buildEntry(&products[i]))
	}
	return entries, nil
}

func (s *CatalogService) buildEntry(product *models.Product) CatalogEntry {
	entry := CatalogEntry{
		ProductID:     product.ID.String(),
		Title:         product.Title,
		Description:   product.Description,
		SKU:           product.SKU,
		Status:        product.Status,
		Enabled:       product.Enabled,
		VariantColors: []string{},
	}

	if product.CategoryID != nil {
		id := product.CategoryID.String()
		entry.CategoryID = &id
		if s.categoryRepo != nil {
			if category, err := s.categoryRepo.GetByID(*product.CategoryID); err == nil {
				entry.CategoryName = category.Name
			} else {
				// Stale category references are expected; the product keeps
				// its id and the listing carries on without a name.
				log.Printf("catalog list: category %s for product %s did not resolve: %v", id, product.ID, err)
			}
		}
	}

	seenColors := make(map[string]bool)
	for vi := range product.Variants {
		variant := &product.Variants[vi]
		if variant.ColorCode != "" && !seenColors[variant.ColorCode] {
			seenColors[variant.ColorCode] = true
			entry.VariantColors = append(entry.VariantColors, variant.ColorCode)
		}
		for ri := range variant.StockRecords {
			record := &variant.StockRecords[ri]
			entry.TotalStock += record.QuantityAvailable
			if record.RetailPrice.IsPositive() &&
				(entry.MinRetailPrice.IsZero() || record.RetailPrice.LessThan(entry.MinRetailPrice)) {
				entry.MinRetailPrice = record.RetailPrice
			}
			if record.WholesalePrice.IsPositive() &&
				(entry.MinWholesalePrice.IsZero() || record.WholesalePrice.LessThan(entry.MinWholesalePrice)) {
				entry.MinWholesalePrice = record.WholesalePrice
			}
		}
	}

	return entry
}

package models

import (
	"time"
)

// ProductStatus is the lifecycle state of a product.
type ProductStatus string

const (
	StatusDraft         ProductStatus = "DRAFT"
	StatusPendingReview ProductStatus = "PENDING_REVIEW"
	StatusPublished     ProductStatus = "PUBLISHED"
	StatusDiscontinued  ProductStatus = "DISCONTINUED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s ProductStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished, StatusDiscontinued:
		return true
	}
	return false
}

// Product is the catalog aggregate root. It owns its variants; callers
// mutate it through the named operations below, never by poking raw fields.
type Product struct {
	ID                    ProductID         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SKU                   string            `json:"sku_id" gorm:"column:sku_id;type:varchar(255);uniqueIndex;not null"`
	Title                 string            `json:"title" gorm:"type:varchar(200);not null"`
	Description           string            `json:"description" gorm:"type:text"`
	Material              string            `json:"material" gorm:"type:varchar(100)"`
	Pattern               string            `json:"pattern" gorm:"type:varchar(100)"`
	ColorPrimary          string            `json:"color_primary" gorm:"type:varchar(100)"`
	Colors                []string          `json:"colors" gorm:"serializer:json"`
	WidthEstimateCm       *int              `json:"width_estimate_cm"`
	Scale                 string            `json:"scale" gorm:"type:varchar(50)"`
	SpecialFeatures       []string          `json:"special_features" gorm:"serializer:json"`
	ImageURLs             map[string]string `json:"image_urls" gorm:"serializer:json"`
	CreatedBy             string            `json:"created_by" gorm:"type:varchar(255)"`
	CategoryID            *CategoryID       `json:"category_id" gorm:"type:varchar(36)"`
	Status                ProductStatus     `json:"status" gorm:"type:varchar(50);not null"`
	Enabled               bool              `json:"enabled" gorm:"not null;default:true"`
	DiscontinuationReason *string           `json:"discontinuation_reason"`
	DiscontinuationDate   *time.Time        `json:"discontinuation_date"`
	StatusNotes           *string           `json:"status_notes"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
	Variants              []ProductVariant  `json:"variants" gorm:"foreignKey:ProductID"`
}

// NewProduct validates and constructs a product in DRAFT status with the
// enabled flag set. The SKU is uppercased; catalog-wide uniqueness is
// enforced by the service before persisting.
func NewProduct(title, sku, createdBy string) (*Product, error) {
	cleanTitle, err := NewProductTitle(title)
	if err != nil {
		return nil, err
	}
	cleanSKU, err := NewSKU(sku)
	if err != nil {
		return nil, err
	}
	if createdBy == "" {
		createdBy = "system"
	}
	now := time.Now().UTC()
	return &Product{
		ID:              NewProductID(),
		SKU:             cleanSKU,
		Title:           cleanTitle,
		Colors:          []string{},
		SpecialFeatures: []string{},
		ImageURLs:       map[string]string{},
		CreatedBy:       createdBy,
		Status:          StatusDraft,
		Enabled:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now().UTC()
}

// UpdateTitle replaces the title after validation.
func (p *Product) UpdateTitle(newTitle string) error {
	clean, err := NewProductTitle(newTitle)
	if err != nil {
		return err
	}
	p.Title = clean
	p.touch()
	return nil
}

// Publish moves the product to PUBLISHED. It is legal only from DRAFT or
// PENDING_REVIEW; from any other state it is a lenient no-op rather than
// an error.
func (p *Product) Publish() {
	if p.Status != StatusDraft && p.Status != StatusPendingReview {
		return
	}
	p.Status = StatusPublished
	p.touch()
}

// Discontinue marks the product DISCONTINUED from any state, disables it
// and records the reason and date. Nothing ever leaves DISCONTINUED
// automatically.
func (p *Product) Discontinue(reason string) {
	now := time.Now().UTC()
	p.Status = StatusDiscontinued
	p.Enabled = false
	p.DiscontinuationReason = &reason
	p.DiscontinuationDate = &now
	p.UpdatedAt = now
}

// Enable sets the enabled flag without touching the lifecycle status.
func (p *Product) Enable() {
	p.Enabled = true
	p.touch()
}

// Disable clears the enabled flag without touching the lifecycle status.
func (p *Product) Disable() {
	p.Enabled = false
	p.touch()
}

// SetStatus sets the lifecycle status directly, with optional notes. Moving
// away from DISCONTINUED clears the discontinuation fields; that clearing
// happens here and only here, never implicitly via Publish or Enable.
func (p *Product) SetStatus(status ProductStatus, notes *string) error {
	if !status.Valid() {
		return &ValidationError{Field: "status", Message: "unknown product status"}
	}
	p.Status = status
	p.StatusNotes = notes
	if status != StatusDiscontinued {
		p.DiscontinuationReason = nil
		p.DiscontinuationDate = nil
	}
	p.touch()
	return nil
}

// AddVariant attaches a variant to the product.
func (p *Product) AddVariant(variant ProductVariant) {
	variant.ProductID = p.ID
	p.Variants = append(p.Variants, variant)
	p.touch()
}

// RemoveVariant detaches a variant by ID, reporting whether it was present.
func (p *Product) RemoveVariant(variantID VariantID) bool {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			p.Variants = append(p.Variants[:i], p.Variants[i+1:]...)
			p.touch()
			return true
		}
	}
	return false
}

// GetVariant returns the variant with the given ID, or nil.
func (p *Product) GetVariant(variantID VariantID) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// TotalStockForPartner sums the available quantity across all variants'
// stock records for one partner. Variants without a record for the partner
// contribute zero.
func (p *Product) TotalStockForPartner(partnerID PartnerID) int {
	total := 0
	for i := range p.Variants {
		if record := p.Variants[i].GetStockForPartner(partnerID); record != nil {
			total += record.QuantityAvailable
		}
	}
	return total
}

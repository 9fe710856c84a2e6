package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMPartnerRepository is a GORM implementation of PartnerRepository.
type GORMPartnerRepository struct {
	db *gorm.DB
}

// NewGORMPartnerRepository creates a new instance of GORMPartnerRepository.
func NewGORMPartnerRepository(db *gorm.DB) *GORMPartnerRepository {
	return &GORMPartnerRepository{
		db: db,
	}
}

// Create persists a new partner.
func (r *GORMPartnerRepository) Create(partner *models.Partner) error {
	if err := r.db.Create(partner).Error; err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// GetByID retrieves a single partner by its ID.
func (r *GORMPartnerRepository) GetByID(id models.PartnerID) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.First(&partner, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "partner", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get partner by ID %s: %w", id, err)
	}
	return &partner, nil
}

// GetByCode retrieves a partner by its natural secondary key.
func (r *GORMPartnerRepository) GetByCode(code string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.First(&partner, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "partner", ID: code}
		}
		return nil, fmt.Errorf("failed to get partner by code %s: %w", code, err)
	}
	return &partner, nil
}

// GetAll retrieves all partners.
func (r *GORMPartnerRepository) GetAll() ([]models.Partner, error) {
	var partners []models.Partner
	if err := r.db.Find(&partners).Error; err != nil {
		return nil, fmt.Errorf("failed to get all partners: %w", err)
	}
	return partners, nil
}

// Update saves an existing partner.
func (r *GORMPartnerRepository) Update(partner *models.Partner) error {
	res := r.db.Save(partner)
	if res.Error != nil {
		return fmt.Errorf("failed to update partner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "partner", ID: partner.ID.String()}
	}
	return nil
}

// Delete removes a partner by its ID.
func (r *GORMPartnerRepository) Delete(id models.PartnerID) error {
	res := r.db.Delete(&models.Partner{}, "id = ?", id.String())
	if res.Error != nil {
		return fmt.Errorf("failed to delete partner %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "partner", ID: id.String()}
	}
	return nil
}

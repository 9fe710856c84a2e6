package services

import (
	"errors"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// PartnerService handles business logic for partners.
type PartnerService struct {
	repo repositories.PartnerRepository
}

// NewPartnerService creates a new PartnerService.
func NewPartnerService(repo repositories.PartnerRepository) *PartnerService {
	return &PartnerService{
		repo: repo,
	}
}

// CreatePartnerInput carries the attributes of a partner creation request.
type CreatePartnerInput struct {
	Name         string
	Code         string
	ContactEmail string
	ContactPhone string
	Address      string
}

// CreatePartner validates and persists a new partner. The partner code is a
// natural secondary key; a taken code is rejected with ConflictError.
func (s *PartnerService) CreatePartner(input CreatePartnerInput) (*models.Partner, error) {
	partner, err := models.NewPartner(input.Name, input.Code)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.GetByCode(partner.Code); err == nil && existing != nil {
		return nil, &models.ConflictError{Message: "partner code '" + partner.Code + "' is already taken"}
	}
	partner.ContactEmail = input.ContactEmail
	partner.ContactPhone = input.ContactPhone
	partner.Address = input.Address

	if err := s.repo.Create(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// GetPartner retrieves a single partner by its ID.
func (s *PartnerService) GetPartner(id models.PartnerID) (*models.Partner, error) {
	return s.repo.GetByID(id)
}

// GetAllPartners retrieves all partners.
func (s *PartnerService) GetAllPartners() ([]models.Partner, error) {
	return s.repo.GetAll()
}

// UpdatePartnerContact applies only the supplied contact fields.
func (s *PartnerService) UpdatePartnerContact(id models.PartnerID, email, phone, address *string) (*models.Partner, error) {
	partner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	partner.UpdateContactDetails(email, phone, address)
	if err := s.repo.Update(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// SetPartnerActive activates or deactivates a partner.
func (s *PartnerService) SetPartnerActive(id models.PartnerID, active bool) (*models.Partner, error) {
	partner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if active {
		partner.Activate()
	} else {
		partner.Deactivate()
	}
	if err := s.repo.Update(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// DeletePartner removes a partner, reporting false when it did not exist.
func (s *PartnerService) DeletePartner(id models.PartnerID) (bool, error) {
	err := s.repo.Delete(id)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

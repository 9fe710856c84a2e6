package models

import "time"

// Partner is a third-party seller/distributor holding independent stock
// and pricing for products and variants.
type Partner struct {
	ID           PartnerID `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"type:varchar(128);not null"`
	Code         string    `json:"code" gorm:"type:varchar(50);uniqueIndex;not null"`
	ContactEmail string    `json:"contact_email" gorm:"type:varchar(255)"`
	ContactPhone string    `json:"contact_phone" gorm:"type:varchar(50)"`
	Address      string    `json:"address" gorm:"type:text"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewPartner validates and constructs an active partner. The code is the
// partner's natural secondary key and is stored uppercased.
func NewPartner(name, code string) (*Partner, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "partner name cannot be empty"}
	}
	cleanCode, err := NewPartnerCode(code)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Partner{
		ID:        NewPartnerID(),
		Name:      name,
		Code:      cleanCode,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateContactDetails applies only the supplied contact fields.
func (p *Partner) UpdateContactDetails(email, phone, address *string) {
	if email != nil {
		p.ContactEmail = *email
	}
	if phone != nil {
		p.ContactPhone = *phone
	}
	if address != nil {
		p.Address = *address
	}
	p.UpdatedAt = time.Now().UTC()
}

// Activate marks the partner active.
func (p *Partner) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now().UTC()
}

// Deactivate marks the partner inactive.
func (p *Partner) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
}

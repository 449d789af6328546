package property

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Property is a managed rental property. It owns a photo gallery and is the
// anchor entity for expenses and work orders.
type Property struct {
	shared.AccountAggregateRoot
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   string
	Notes     string
	DeletedAt *time.Time
}

// NewProperty creates a new property
func NewProperty(accountID uuid.UUID, name, address, city, state, zipCode, notes string, createdBy *uuid.UUID) (*Property, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidation("INVALID_PROPERTY_NAME", "Property name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidation("INVALID_PROPERTY_NAME", "Property name cannot exceed 200 characters")
	}
	if address == "" {
		return nil, shared.NewValidation("INVALID_ADDRESS", "Property address cannot be empty")
	}

	p := &Property{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		Name:                 name,
		Address:              address,
		City:                 city,
		State:                state,
		ZipCode:              zipCode,
		Notes:                notes,
	}
	if createdBy != nil {
		p.SetCreatedBy(*createdBy)
	}
	return p, nil
}

// IsDeleted returns true when the property has been soft-deleted
func (p *Property) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Update applies editable fields
func (p *Property) Update(name, address, city, state, zipCode, notes string) error {
	if p.IsDeleted() {
		return shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
	}
	if name == "" {
		return shared.NewValidation("INVALID_PROPERTY_NAME", "Property name cannot be empty")
	}
	if address == "" {
		return shared.NewValidation("INVALID_ADDRESS", "Property address cannot be empty")
	}
	p.Name = name
	p.Address = address
	p.City = city
	p.State = state
	p.ZipCode = zipCode
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SoftDelete marks the property deleted. Photos are not cascaded; they stay
// queryable by id but drop out of listings scoped to this property.
func (p *Property) SoftDelete() error {
	if p.IsDeleted() {
		return shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
	}
	now := time.Now()
	p.DeletedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()
	return nil
}

package property

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Vendor is a contractor or service provider assignable to work orders
type Vendor struct {
	shared.AccountAggregateRoot
	Name      string
	Trade     string
	Email     string
	Phone     string
	DeletedAt *time.Time
}

// NewVendor creates a new vendor
func NewVendor(accountID uuid.UUID, name, trade, email, phone string) (*Vendor, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidation("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidation("INVALID_VENDOR_NAME", "Vendor name cannot exceed 200 characters")
	}
	return &Vendor{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		Name:                 name,
		Trade:                trade,
		Email:                email,
		Phone:                phone,
	}, nil
}

// IsDeleted returns true when the vendor has been soft-deleted
func (v *Vendor) IsDeleted() bool {
	return v.DeletedAt != nil
}

// Update applies editable fields
func (v *Vendor) Update(name, trade, email, phone string) error {
	if v.IsDeleted() {
		return shared.NewNotFound("VENDOR_NOT_FOUND", "Vendor not found")
	}
	if name == "" {
		return shared.NewValidation("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	v.Name = name
	v.Trade = trade
	v.Email = email
	v.Phone = phone
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// SoftDelete marks the vendor deleted
func (v *Vendor) SoftDelete() error {
	if v.IsDeleted() {
		return shared.NewNotFound("VENDOR_NOT_FOUND", "Vendor not found")
	}
	now := time.Now()
	v.DeletedAt = &now
	v.UpdatedAt = now
	v.IncrementVersion()
	return nil
}

package property

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VendorService handles vendor management
type VendorService struct {
	vendorRepo property.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo property.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Create creates a new vendor
func (s *VendorService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	req CreateVendorRequest,
) (*VendorResponse, error) {
	v, err := property.NewVendor(accountID, req.Name, req.Trade, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVendorResponse(v)
	return &response, nil
}

// GetByID returns a single vendor
func (s *VendorService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	vendorID uuid.UUID,
) (*VendorResponse, error) {
	v, err := s.findVendor(ctx, accountID, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(v)
	return &response, nil
}

// List returns vendors for the account
func (s *VendorService) List(
	ctx context.Context,
	accountID uuid.UUID,
	filter ListFilter,
) ([]VendorResponse, int64, error) {
	vendors, total, err := s.vendorRepo.FindAllForAccount(ctx, accountID, toSharedFilter(filter, "name", "asc"))
	if err != nil {
		return nil, 0, err
	}
	return ToVendorResponses(vendors), total, nil
}

// Update applies editable fields to a vendor
func (s *VendorService) Update(
	ctx context.Context,
	accountID uuid.UUID,
	vendorID uuid.UUID,
	req UpdateVendorRequest,
) (*VendorResponse, error) {
	v, err := s.findVendor(ctx, accountID, vendorID)
	if err != nil {
		return nil, err
	}
	if err := v.Update(req.Name, req.Trade, req.Email, req.Phone); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVendorResponse(v)
	return &response, nil
}

// Delete soft-deletes a vendor. Work orders keep their vendor reference.
func (s *VendorService) Delete(
	ctx context.Context,
	accountID uuid.UUID,
	vendorID uuid.UUID,
) error {
	v, err := s.findVendor(ctx, accountID, vendorID)
	if err != nil {
		return err
	}
	if err := v.SoftDelete(); err != nil {
		return err
	}
	return s.vendorRepo.Save(ctx, v)
}

func (s *VendorService) findVendor(ctx context.Context, accountID, vendorID uuid.UUID) (*property.Vendor, error) {
	v, err := s.vendorRepo.FindByIDForAccount(ctx, accountID, vendorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("VENDOR_NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	return v, nil
}

package property

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/google/uuid"
)

// CreatePropertyRequest creates a new property
type CreatePropertyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"required,min=1,max=500"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zip_code" binding:"max=20"`
	Notes   string `json:"notes" binding:"max=2000"`
}

// UpdatePropertyRequest updates a property's editable fields
type UpdatePropertyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"required,min=1,max=500"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zip_code" binding:"max=20"`
	Notes   string `json:"notes" binding:"max=2000"`
}

// CreateWorkOrderRequest creates a new work order against a property
type CreateWorkOrderRequest struct {
	PropertyID  uuid.UUID  `json:"property_id" binding:"required"`
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	VendorID    *uuid.UUID `json:"vendor_id"`
}

// UpdateWorkOrderRequest updates a work order's editable fields
type UpdateWorkOrderRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	VendorID    *uuid.UUID `json:"vendor_id"`
}

// TransitionWorkOrderRequest moves a work order to a new status
type TransitionWorkOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress completed cancelled"`
}

// CreateVendorRequest creates a new vendor
type CreateVendorRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Trade string `json:"trade" binding:"max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"max=30"`
}

// UpdateVendorRequest updates a vendor's editable fields
type UpdateVendorRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Trade string `json:"trade" binding:"max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"max=30"`
}

// ListFilter carries common pagination and ordering options
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// WorkOrderResponse represents a work order in API responses
type WorkOrderResponse struct {
	ID          uuid.UUID  `json:"id"`
	AccountID   uuid.UUID  `json:"account_id"`
	PropertyID  uuid.UUID  `json:"property_id"`
	VendorID    *uuid.UUID `json:"vendor_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Trade     string    `json:"trade"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPropertyResponse converts a domain Property to PropertyResponse
func ToPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:        p.ID,
		AccountID: p.AccountID,
		Name:      p.Name,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.GetVersion(),
	}
}

// ToWorkOrderResponse converts a domain WorkOrder to WorkOrderResponse
func ToWorkOrderResponse(w *property.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:          w.ID,
		AccountID:   w.AccountID,
		PropertyID:  w.PropertyID,
		VendorID:    w.VendorID,
		Title:       w.Title,
		Description: w.Description,
		Status:      string(w.Status),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		Version:     w.GetVersion(),
	}
}

// ToVendorResponse converts a domain Vendor to VendorResponse
func ToVendorResponse(v *property.Vendor) VendorResponse {
	return VendorResponse{
		ID:        v.ID,
		AccountID: v.AccountID,
		Name:      v.Name,
		Trade:     v.Trade,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToPropertyResponses converts a slice of domain Properties
func ToPropertyResponses(properties []property.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = ToPropertyResponse(&properties[i])
	}
	return responses
}

// ToWorkOrderResponses converts a slice of domain WorkOrders
func ToWorkOrderResponses(workOrders []property.WorkOrder) []WorkOrderResponse {
	responses := make([]WorkOrderResponse, len(workOrders))
	for i := range workOrders {
		responses[i] = ToWorkOrderResponse(&workOrders[i])
	}
	return responses
}

// ToVendorResponses converts a slice of domain Vendors
func ToVendorResponses(vendors []property.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses
}

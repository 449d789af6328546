package models

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/google/uuid"
)

// PropertyModel is the persistence model for the Property domain entity.
type PropertyModel struct {
	AccountAggregateModel
	Name      string     `gorm:"column:name;type:varchar(200);not null"`
	Address   string     `gorm:"column:address;type:varchar(500);not null"`
	City      string     `gorm:"column:city;type:varchar(100)"`
	State     string     `gorm:"column:state;type:varchar(100)"`
	ZipCode   string     `gorm:"column:zip_code;type:varchar(20)"`
	Notes     string     `gorm:"column:notes;type:varchar(2000)"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property entity.
func (m *PropertyModel) ToDomain() *property.Property {
	p := &property.Property{
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		ZipCode:   m.ZipCode,
		Notes:     m.Notes,
		DeletedAt: m.DeletedAt,
	}
	m.PopulateAccountAggregateRoot(&p.AccountAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Property entity.
func (m *PropertyModel) FromDomain(p *property.Property) {
	m.FromDomainAccountAggregateRoot(p.AccountAggregateRoot)
	m.Name = p.Name
	m.Address = p.Address
	m.City = p.City
	m.State = p.State
	m.ZipCode = p.ZipCode
	m.Notes = p.Notes
	m.DeletedAt = p.DeletedAt
}

// PropertyModelFromDomain creates a new persistence model from a domain Property entity.
func PropertyModelFromDomain(p *property.Property) *PropertyModel {
	m := &PropertyModel{}
	m.FromDomain(p)
	return m
}

// WorkOrderModel is the persistence model for the WorkOrder domain entity.
type WorkOrderModel struct {
	AccountAggregateModel
	PropertyID  uuid.UUID  `gorm:"column:property_id;type:uuid;not null;index"`
	VendorID    *uuid.UUID `gorm:"column:vendor_id;type:uuid;index"`
	Title       string     `gorm:"column:title;type:varchar(200);not null"`
	Description string     `gorm:"column:description;type:varchar(2000)"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'open'"`
	DeletedAt   *time.Time `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// ToDomain converts the persistence model to a domain WorkOrder entity.
func (m *WorkOrderModel) ToDomain() *property.WorkOrder {
	w := &property.WorkOrder{
		PropertyID:  m.PropertyID,
		VendorID:    m.VendorID,
		Title:       m.Title,
		Description: m.Description,
		Status:      property.WorkOrderStatus(m.Status),
		DeletedAt:   m.DeletedAt,
	}
	m.PopulateAccountAggregateRoot(&w.AccountAggregateRoot)
	return w
}

// FromDomain populates the persistence model from a domain WorkOrder entity.
func (m *WorkOrderModel) FromDomain(w *property.WorkOrder) {
	m.FromDomainAccountAggregateRoot(w.AccountAggregateRoot)
	m.PropertyID = w.PropertyID
	m.VendorID = w.VendorID
	m.Title = w.Title
	m.Description = w.Description
	m.Status = string(w.Status)
	m.DeletedAt = w.DeletedAt
}

// WorkOrderModelFromDomain creates a new persistence model from a domain WorkOrder entity.
func WorkOrderModelFromDomain(w *property.WorkOrder) *WorkOrderModel {
	m := &WorkOrderModel{}
	m.FromDomain(w)
	return m
}

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	AccountAggregateModel
	Name      string     `gorm:"column:name;type:varchar(200);not null"`
	Trade     string     `gorm:"column:trade;type:varchar(100)"`
	Email     string     `gorm:"column:email;type:varchar(255)"`
	Phone     string     `gorm:"column:phone;type:varchar(30)"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *property.Vendor {
	v := &property.Vendor{
		Name:      m.Name,
		Trade:     m.Trade,
		Email:     m.Email,
		Phone:     m.Phone,
		DeletedAt: m.DeletedAt,
	}
	m.PopulateAccountAggregateRoot(&v.AccountAggregateRoot)
	return v
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *property.Vendor) {
	m.FromDomainAccountAggregateRoot(v.AccountAggregateRoot)
	m.Name = v.Name
	m.Trade = v.Trade
	m.Email = v.Email
	m.Phone = v.Phone
	m.DeletedAt = v.DeletedAt
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *property.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

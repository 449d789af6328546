package models

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence model for the Expense domain entity.
// receipt_id mirrors receipts.expense_id; both columns carry partial unique
// indexes so the database rejects a double-link even if the application
// checks are bypassed.
type ExpenseModel struct {
	AccountAggregateModel
	PropertyID  uuid.UUID       `gorm:"column:property_id;type:uuid;not null;index"`
	WorkOrderID *uuid.UUID      `gorm:"column:work_order_id;type:uuid;index"`
	CategoryID  uuid.UUID       `gorm:"column:category_id;type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Date        time.Time       `gorm:"column:date;not null;index"`
	Description string          `gorm:"column:description;type:varchar(1000)"`
	ReceiptID   *uuid.UUID      `gorm:"column:receipt_id;type:uuid;uniqueIndex"`
	DeletedAt   *time.Time      `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	e := &finance.Expense{
		PropertyID:  m.PropertyID,
		WorkOrderID: m.WorkOrderID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		ReceiptID:   m.ReceiptID,
		DeletedAt:   m.DeletedAt,
	}
	m.PopulateAccountAggregateRoot(&e.AccountAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainAccountAggregateRoot(e.AccountAggregateRoot)
	m.PropertyID = e.PropertyID
	m.WorkOrderID = e.WorkOrderID
	m.CategoryID = e.CategoryID
	m.Amount = e.Amount
	m.Date = e.Date
	m.Description = e.Description
	m.ReceiptID = e.ReceiptID
	m.DeletedAt = e.DeletedAt
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense entity.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}

// ExpenseCategoryModel is the persistence model for the ExpenseCategory domain entity.
type ExpenseCategoryModel struct {
	AccountAggregateModel
	Name      string     `gorm:"column:name;type:varchar(100);not null"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToDomain converts the persistence model to a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) ToDomain() *finance.ExpenseCategory {
	c := &finance.ExpenseCategory{
		Name:      m.Name,
		DeletedAt: m.DeletedAt,
	}
	m.PopulateAccountAggregateRoot(&c.AccountAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) FromDomain(c *finance.ExpenseCategory) {
	m.FromDomainAccountAggregateRoot(c.AccountAggregateRoot)
	m.Name = c.Name
	m.DeletedAt = c.DeletedAt
}

// ExpenseCategoryModelFromDomain creates a new persistence model from a domain ExpenseCategory entity.
func ExpenseCategoryModelFromDomain(c *finance.ExpenseCategory) *ExpenseCategoryModel {
	m := &ExpenseCategoryModel{}
	m.FromDomain(c)
	return m
}

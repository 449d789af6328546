package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	csvimport "github.com/rentdesk/backend/internal/infrastructure/import"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultMaxImportRows = 1000
	maxReportedRowErrors = 100
	importDateLayout     = "2006-01-02"
)

var importRequiredColumns = []string{"date", "amount", "category", "property_id"}

// ExpenseImportService bulk-creates expenses from an uploaded CSV file.
// The whole file is validated before anything is written; a single bad row
// rejects the import so a retry after fixing the file never duplicates rows.
type ExpenseImportService struct {
	expenseRepo   finance.ExpenseRepository
	categoryRepo  finance.ExpenseCategoryRepository
	propertyRepo  property.PropertyRepository
	workOrderRepo property.WorkOrderRepository
	maxRows       int
}

// NewExpenseImportService creates a new ExpenseImportService
func NewExpenseImportService(
	expenseRepo finance.ExpenseRepository,
	categoryRepo finance.ExpenseCategoryRepository,
	propertyRepo property.PropertyRepository,
	workOrderRepo property.WorkOrderRepository,
) *ExpenseImportService {
	return &ExpenseImportService{
		expenseRepo:   expenseRepo,
		categoryRepo:  categoryRepo,
		propertyRepo:  propertyRepo,
		workOrderRepo: workOrderRepo,
		maxRows:       defaultMaxImportRows,
	}
}

// SetMaxRows overrides the per-file row limit
func (s *ExpenseImportService) SetMaxRows(n int) {
	if n > 0 {
		s.maxRows = n
	}
}

// Import parses and validates the CSV and, unless dryRun is set or any row
// fails validation, creates one expense per data row.
//
// Expected columns: date (YYYY-MM-DD), amount, category (name), property_id,
// and optionally work_order_id and description.
func (s *ExpenseImportService) Import(
	ctx context.Context,
	accountID uuid.UUID,
	data []byte,
	dryRun bool,
	createdBy *uuid.UUID,
) (*ImportExpensesResponse, error) {
	parser, err := csvimport.FromBytes(data)
	if err != nil {
		return nil, importFileError(err)
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, importFileError(err)
	}
	if missing := parser.MissingHeaders(importRequiredColumns); len(missing) > 0 {
		return nil, shared.NewValidation("IMPORT_MISSING_COLUMNS",
			fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, shared.NewValidation("IMPORT_MALFORMED_FILE", err.Error())
	}
	if len(rows) == 0 {
		return nil, shared.NewValidation("IMPORT_NO_DATA_ROWS", "File contains no data rows")
	}
	if len(rows) > s.maxRows {
		return nil, shared.NewValidation("IMPORT_TOO_MANY_ROWS",
			fmt.Sprintf("File has %d data rows, the limit is %d", len(rows), s.maxRows))
	}

	categories, err := s.categoryRepo.FindAllForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	categoryByName := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		categoryByName[strings.ToLower(c.Name)] = c.ID
	}

	rowErrors := csvimport.NewErrorCollection(maxReportedRowErrors)
	validRows := make([]*finance.Expense, 0, len(rows))
	errorRows := 0

	// Reference lookups are cached across rows; imports tend to repeat the
	// same handful of properties and work orders.
	propertyOK := make(map[uuid.UUID]bool)
	workOrders := make(map[uuid.UUID]*property.WorkOrder)

	for _, row := range rows {
		expense := s.validateRow(ctx, accountID, row, categoryByName, propertyOK, workOrders, rowErrors, createdBy)
		if expense == nil {
			errorRows++
			continue
		}
		validRows = append(validRows, expense)
	}

	resp := &ImportExpensesResponse{
		TotalRows:       len(rows),
		ErrorRows:       errorRows,
		Errors:          rowErrors.Errors(),
		TruncatedErrors: rowErrors.IsTruncated(),
		DryRun:          dryRun,
	}

	if rowErrors.HasErrors() || dryRun {
		return resp, nil
	}

	for _, expense := range validRows {
		if err := s.expenseRepo.Save(ctx, expense); err != nil {
			return nil, err
		}
		resp.ImportedCount++
	}

	return resp, nil
}

// validateRow parses one CSV row into an expense, recording row errors and
// returning nil when any field is unusable.
func (s *ExpenseImportService) validateRow(
	ctx context.Context,
	accountID uuid.UUID,
	row *csvimport.Row,
	categoryByName map[string]uuid.UUID,
	propertyOK map[uuid.UUID]bool,
	workOrders map[uuid.UUID]*property.WorkOrder,
	rowErrors *csvimport.ErrorCollection,
	createdBy *uuid.UUID,
) *finance.Expense {
	valid := true

	var date time.Time
	if raw := row.Get("date"); raw == "" {
		rowErrors.AddRequired(row.LineNumber, "date")
		valid = false
	} else if parsed, err := time.Parse(importDateLayout, raw); err != nil {
		rowErrors.AddInvalid(row.LineNumber, "date", "expected YYYY-MM-DD", raw)
		valid = false
	} else {
		date = parsed
	}

	var amount decimal.Decimal
	if raw := row.Get("amount"); raw == "" {
		rowErrors.AddRequired(row.LineNumber, "amount")
		valid = false
	} else if parsed, err := decimal.NewFromString(raw); err != nil {
		rowErrors.AddInvalid(row.LineNumber, "amount", "expected a decimal number", raw)
		valid = false
	} else if parsed.LessThanOrEqual(decimal.Zero) {
		rowErrors.AddInvalid(row.LineNumber, "amount", "must be greater than zero", raw)
		valid = false
	} else {
		amount = parsed
	}

	var categoryID uuid.UUID
	if raw := row.Get("category"); raw == "" {
		rowErrors.AddRequired(row.LineNumber, "category")
		valid = false
	} else if id, ok := categoryByName[strings.ToLower(raw)]; !ok {
		rowErrors.AddReference(row.LineNumber, "category", "category", raw)
		valid = false
	} else {
		categoryID = id
	}

	var propertyID uuid.UUID
	if raw := row.Get("property_id"); raw == "" {
		rowErrors.AddRequired(row.LineNumber, "property_id")
		valid = false
	} else if parsed, err := uuid.Parse(raw); err != nil {
		rowErrors.AddInvalid(row.LineNumber, "property_id", "expected a UUID", raw)
		valid = false
	} else if !s.propertyExists(ctx, accountID, parsed, propertyOK) {
		rowErrors.AddReference(row.LineNumber, "property_id", "property", raw)
		valid = false
	} else {
		propertyID = parsed
	}

	var workOrderID *uuid.UUID
	if raw := row.Get("work_order_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			rowErrors.AddInvalid(row.LineNumber, "work_order_id", "expected a UUID", raw)
			valid = false
		} else {
			workOrder := s.findWorkOrder(ctx, accountID, parsed, workOrders)
			switch {
			case workOrder == nil:
				rowErrors.AddReference(row.LineNumber, "work_order_id", "work order", raw)
				valid = false
			case propertyID != uuid.Nil && workOrder.PropertyID != propertyID:
				rowErrors.AddInvalid(row.LineNumber, "work_order_id",
					"work order does not belong to the given property", raw)
				valid = false
			default:
				workOrderID = &parsed
			}
		}
	}

	description := row.Get("description")
	if len(description) > 1000 {
		rowErrors.AddInvalid(row.LineNumber, "description", "must be at most 1000 characters", "")
		valid = false
	}

	if !valid {
		return nil
	}

	expense, err := finance.NewExpense(accountID, propertyID, categoryID, amount, date, description, createdBy)
	if err != nil {
		rowErrors.AddInvalid(row.LineNumber, "", err.Error(), "")
		return nil
	}
	if workOrderID != nil {
		expense.SetWorkOrder(workOrderID)
	}
	return expense
}

func (s *ExpenseImportService) propertyExists(
	ctx context.Context,
	accountID, propertyID uuid.UUID,
	cache map[uuid.UUID]bool,
) bool {
	if ok, seen := cache[propertyID]; seen {
		return ok
	}
	_, err := s.propertyRepo.FindByIDForAccount(ctx, accountID, propertyID)
	cache[propertyID] = err == nil
	return err == nil
}

func (s *ExpenseImportService) findWorkOrder(
	ctx context.Context,
	accountID, workOrderID uuid.UUID,
	cache map[uuid.UUID]*property.WorkOrder,
) *property.WorkOrder {
	if wo, seen := cache[workOrderID]; seen {
		return wo
	}
	wo, err := s.workOrderRepo.FindByIDForAccount(ctx, accountID, workOrderID)
	if err != nil {
		wo = nil
	}
	cache[workOrderID] = wo
	return wo
}

// importFileError maps parser-level failures to client-facing errors
func importFileError(err error) error {
	switch {
	case errors.Is(err, csvimport.ErrEmptyFile):
		return shared.NewValidation("IMPORT_EMPTY_FILE", "File is empty")
	case errors.Is(err, csvimport.ErrInvalidEncoding):
		return shared.NewValidation("IMPORT_INVALID_ENCODING", "File must be UTF-8 encoded")
	case errors.Is(err, csvimport.ErrMissingHeader):
		return shared.NewValidation("IMPORT_MISSING_HEADER", "File has no header row")
	default:
		return shared.NewValidation("IMPORT_INVALID_FILE", err.Error())
	}
}

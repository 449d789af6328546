package handler

import (
	"io"

	financeapp "github.com/rentdesk/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles expense API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
	importService  *financeapp.ExpenseImportService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(
	expenseService *financeapp.ExpenseService,
	importService *financeapp.ExpenseImportService,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		importService:  importService,
	}
}

// Create godoc
//
//	@Summary		Create an expense
//	@Description	Record an expense without a receipt; a receipt can be linked later
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string								true	"Account ID"
//	@Param			request			body		financeapp.CreateExpenseRequest	true	"Expense details"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response	"Property, category or work order not found"
//	@Router			/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.expenseService.Create(c.Request.Context(), accountID, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// GetByID godoc
//
//	@Summary		Get expense by ID
//	@Description	Retrieve an expense by its ID
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Expense ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	response, err := h.expenseService.GetByID(c.Request.Context(), accountID, expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// List godoc
//
//	@Summary		List expenses
//	@Description	Retrieve a paginated list of expenses with optional filters
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			property_id		query		string	false	"Filter by property"	format(uuid)
//	@Param			work_order_id	query		string	false	"Filter by work order"	format(uuid)
//	@Param			category_id		query		string	false	"Filter by category"	format(uuid)
//	@Param			date_from		query		string	false	"Earliest expense date"	format(date)
//	@Param			date_to			query		string	false	"Latest expense date"	format(date)
//	@Param			has_receipt		query		bool	false	"Filter by receipt link state"
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			page_size		query		int		false	"Page size"		default(20)	maximum(100)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var filter financeapp.ExpenseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	if filter.PropertyID, err = uuidQueryParam(c, "property_id"); err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}
	if filter.WorkOrderID, err = uuidQueryParam(c, "work_order_id"); err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}
	if filter.CategoryID, err = uuidQueryParam(c, "category_id"); err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	expenses, total, err := h.expenseService.List(c.Request.Context(), accountID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, expenses, total, filter.Page, filter.PageSize)
}

// Update godoc
//
//	@Summary		Update an expense
//	@Description	Update an expense's category, work order, amount, date or description
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string								true	"Account ID"
//	@Param			id				path		string								true	"Expense ID"	format(uuid)
//	@Param			request			body		financeapp.UpdateExpenseRequest	true	"Updated fields"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	var req financeapp.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.expenseService.Update(c.Request.Context(), accountID, expenseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete godoc
//
//	@Summary		Delete an expense
//	@Description	Soft delete an expense; a linked receipt is unlinked first and survives
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Account-ID	header	string	true	"Account ID"
//	@Param			id				path	string	true	"Expense ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), accountID, expenseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Import godoc
//
//	@Summary		Import expenses from CSV
//	@Description	Bulk create expenses from an uploaded CSV file. The file is validated as a whole; nothing is written when any row fails. Pass dry_run=true to validate without importing.
//	@Tags			expenses
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			file			formData	file	true	"CSV file with columns date, amount, category, property_id and optionally work_order_id, description"
//	@Param			dry_run			query		bool	false	"Validate only, import nothing"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/expenses/import [post]
func (h *ExpenseHandler) Import(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file is required in the 'file' form field")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}

	dryRun := c.Query("dry_run") == "true"

	response, err := h.importService.Import(c.Request.Context(), accountID, data, dryRun, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// uuidQueryParam parses an optional UUID query parameter. A missing or empty
// parameter yields nil without error.
func uuidQueryParam(c *gin.Context, name string) (*uuid.UUID, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

package handler

import (
	attachmentapp "github.com/rentdesk/backend/internal/application/attachment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles receipt reads, deletion and the expense link endpoints
type ReceiptHandler struct {
	BaseHandler
	receiptService *attachmentapp.ReceiptService
	linkService    *attachmentapp.ReceiptLinkService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *attachmentapp.ReceiptService, linkService *attachmentapp.ReceiptLinkService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		linkService:    linkService,
	}
}

// List godoc
//
//	@Summary		List receipts
//	@Description	Retrieve a paginated list of receipts, optionally filtered by processed state or property
//	@Tags			receipts
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			processed		query		bool	false	"Filter by processed state"
//	@Param			property_id		query		string	false	"Filter by property"	format(uuid)
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			page_size		query		int		false	"Page size"		default(20)	maximum(100)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var filter attachmentapp.ReceiptListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	if filter.PropertyID, err = uuidQueryParam(c, "property_id"); err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	receipts, total, err := h.receiptService.List(c.Request.Context(), accountID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, receipts, total, filter.Page, filter.PageSize)
}

// GetByID godoc
//
//	@Summary		Get receipt by ID
//	@Description	Retrieve a receipt with a presigned download URL
//	@Tags			receipts
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Receipt ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	response, err := h.receiptService.GetByID(c.Request.Context(), accountID, receiptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete godoc
//
//	@Summary		Delete a receipt
//	@Description	Soft delete an unlinked receipt and schedule its blob for cleanup
//	@Tags			receipts
//	@Produce		json
//	@Param			X-Account-ID	header	string	true	"Account ID"
//	@Param			id				path	string	true	"Receipt ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		409	{object}	dto.Response	"Receipt is linked to an expense"
//	@Router			/receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), accountID, receiptID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Process godoc
//
//	@Summary		Process a receipt
//	@Description	Create an expense from an unprocessed receipt and link the two in one step
//	@Tags			receipts
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			id				path		string									true	"Receipt ID"	format(uuid)
//	@Param			request			body		attachmentapp.ProcessReceiptRequest	true	"Expense details"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"Receipt already processed"
//	@Router			/receipts/{id}/process [post]
func (h *ReceiptHandler) Process(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	var req attachmentapp.ProcessReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.linkService.Process(c.Request.Context(), accountID, receiptID, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// Link godoc
//
//	@Summary		Attach a receipt to an expense
//	@Description	Link an existing receipt to an existing expense; both sides mirror the link
//	@Tags			receipts
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string								true	"Account ID"
//	@Param			id				path		string								true	"Expense ID"	format(uuid)
//	@Param			request			body		attachmentapp.LinkReceiptRequest	true	"Receipt to link"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"Either side is already linked"
//	@Router			/expenses/{id}/receipt [post]
func (h *ReceiptHandler) Link(c *gin.Context) {
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

	var req attachmentapp.LinkReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.linkService.Link(c.Request.Context(), accountID, expenseID, req.ReceiptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Unlink godoc
//
//	@Summary		Detach the receipt from an expense
//	@Description	Remove the link on both sides; the receipt returns to the unprocessed pool
//	@Tags			receipts
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Expense ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"Expense has no linked receipt"
//	@Router			/expenses/{id}/receipt [delete]
func (h *ReceiptHandler) Unlink(c *gin.Context) {
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

	response, err := h.linkService.Unlink(c.Request.Context(), accountID, expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

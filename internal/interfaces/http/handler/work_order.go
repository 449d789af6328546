package handler

import (
	propertyapp "github.com/rentdesk/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkOrderHandler handles work order API endpoints
type WorkOrderHandler struct {
	BaseHandler
	workOrderService *propertyapp.WorkOrderService
}

// NewWorkOrderHandler creates a new WorkOrderHandler
func NewWorkOrderHandler(workOrderService *propertyapp.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrderService: workOrderService,
	}
}

// Create godoc
//
//	@Summary		Create a work order
//	@Description	Open a maintenance work order against a property
//	@Tags			work-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			request			body		propertyapp.CreateWorkOrderRequest	true	"Work order details"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response	"Property or vendor not found"
//	@Router			/work-orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req propertyapp.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.workOrderService.Create(c.Request.Context(), accountID, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// GetByID godoc
//
//	@Summary		Get work order by ID
//	@Description	Retrieve a work order by its ID
//	@Tags			work-orders
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Work order ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	response, err := h.workOrderService.GetByID(c.Request.Context(), accountID, workOrderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// List godoc
//
//	@Summary		List work orders
//	@Description	Retrieve a paginated list of work orders, optionally filtered by property
//	@Tags			work-orders
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			property_id		query		string	false	"Filter by property"	format(uuid)
//	@Param			search			query		string	false	"Search term (title)"
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			page_size		query		int		false	"Page size"		default(20)	maximum(100)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/work-orders [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var filter propertyapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	propertyID, err := uuidQueryParam(c, "property_id")
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	workOrders, total, err := h.workOrderService.List(c.Request.Context(), accountID, propertyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, workOrders, total, filter.Page, filter.PageSize)
}

// Update godoc
//
//	@Summary		Update a work order
//	@Description	Update a work order's title, description or vendor
//	@Tags			work-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			id				path		string									true	"Work order ID"	format(uuid)
//	@Param			request			body		propertyapp.UpdateWorkOrderRequest	true	"Updated fields"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"Work order is closed"
//	@Router			/work-orders/{id} [put]
func (h *WorkOrderHandler) Update(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	var req propertyapp.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.workOrderService.Update(c.Request.Context(), accountID, workOrderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Transition godoc
//
//	@Summary		Transition a work order
//	@Description	Move a work order to a new status following the open, in_progress, completed/cancelled flow
//	@Tags			work-orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string										true	"Account ID"
//	@Param			id				path		string										true	"Work order ID"	format(uuid)
//	@Param			request			body		propertyapp.TransitionWorkOrderRequest	true	"Target status"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"Transition not allowed from the current status"
//	@Router			/work-orders/{id}/transition [post]
func (h *WorkOrderHandler) Transition(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	var req propertyapp.TransitionWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.workOrderService.Transition(c.Request.Context(), accountID, workOrderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete godoc
//
//	@Summary		Delete a work order
//	@Description	Soft delete a work order; its photos are removed with it
//	@Tags			work-orders
//	@Produce		json
//	@Param			X-Account-ID	header	string	true	"Account ID"
//	@Param			id				path	string	true	"Work order ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/work-orders/{id} [delete]
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	workOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	if err := h.workOrderService.Delete(c.Request.Context(), accountID, workOrderID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

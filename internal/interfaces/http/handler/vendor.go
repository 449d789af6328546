package handler

import (
	propertyapp "github.com/rentdesk/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler handles vendor API endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *propertyapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *propertyapp.VendorService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// Create godoc
//
//	@Summary		Create a vendor
//	@Description	Register a maintenance vendor for the account
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string								true	"Account ID"
//	@Param			request			body		propertyapp.CreateVendorRequest	true	"Vendor details"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req propertyapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.vendorService.Create(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// GetByID godoc
//
//	@Summary		Get vendor by ID
//	@Description	Retrieve a vendor by its ID
//	@Tags			vendors
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Vendor ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/vendors/{id} [get]
func (h *VendorHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	response, err := h.vendorService.GetByID(c.Request.Context(), accountID, vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// List godoc
//
//	@Summary		List vendors
//	@Description	Retrieve a paginated list of the account's vendors
//	@Tags			vendors
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			search			query		string	false	"Search term (name, trade)"
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			page_size		query		int		false	"Page size"		default(20)	maximum(100)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
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
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	vendors, total, err := h.vendorService.List(c.Request.Context(), accountID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

// Update godoc
//
//	@Summary		Update a vendor
//	@Description	Update a vendor's name, trade or contact details
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string								true	"Account ID"
//	@Param			id				path		string								true	"Vendor ID"	format(uuid)
//	@Param			request			body		propertyapp.UpdateVendorRequest	true	"Updated fields"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	var req propertyapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.vendorService.Update(c.Request.Context(), accountID, vendorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete godoc
//
//	@Summary		Delete a vendor
//	@Description	Soft delete a vendor; work orders keep their historical reference
//	@Tags			vendors
//	@Produce		json
//	@Param			X-Account-ID	header	string	true	"Account ID"
//	@Param			id				path	string	true	"Vendor ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), accountID, vendorID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

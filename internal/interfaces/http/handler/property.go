package handler

import (
	propertyapp "github.com/rentdesk/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PropertyHandler handles property API endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// Create godoc
//
//	@Summary		Create a property
//	@Description	Register a property the account manages
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			request			body		propertyapp.CreatePropertyRequest	true	"Property details"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req propertyapp.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.propertyService.Create(c.Request.Context(), accountID, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// GetByID godoc
//
//	@Summary		Get property by ID
//	@Description	Retrieve a property by its ID
//	@Tags			properties
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Property ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	response, err := h.propertyService.GetByID(c.Request.Context(), accountID, propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// List godoc
//
//	@Summary		List properties
//	@Description	Retrieve a paginated list of the account's properties
//	@Tags			properties
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			search			query		string	false	"Search term (name, address)"
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			page_size		query		int		false	"Page size"		default(20)	maximum(100)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
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

	properties, total, err := h.propertyService.List(c.Request.Context(), accountID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, properties, total, filter.Page, filter.PageSize)
}

// Update godoc
//
//	@Summary		Update a property
//	@Description	Update a property's name, address or notes
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			id				path		string									true	"Property ID"	format(uuid)
//	@Param			request			body		propertyapp.UpdatePropertyRequest	true	"Updated fields"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	var req propertyapp.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.propertyService.Update(c.Request.Context(), accountID, propertyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete godoc
//
//	@Summary		Delete a property
//	@Description	Soft delete a property with no open work orders
//	@Tags			properties
//	@Produce		json
//	@Param			X-Account-ID	header	string	true	"Account ID"
//	@Param			id				path	string	true	"Property ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		409	{object}	dto.Response	"Property still has open work orders"
//	@Router			/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), accountID, propertyID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

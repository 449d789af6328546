package handler

import (
	financeapp "github.com/rentdesk/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles expense category API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *financeapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *financeapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create godoc
//
//	@Summary		Create an expense category
//	@Description	Create a category; names are unique per account
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string								true	"Account ID"
//	@Param			request			body		financeapp.CreateCategoryRequest	true	"Category details"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"Category name already exists"
//	@Router			/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req financeapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.categoryService.Create(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// GetByID godoc
//
//	@Summary		Get category by ID
//	@Description	Retrieve an expense category by its ID
//	@Tags			categories
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Category ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	response, err := h.categoryService.GetByID(c.Request.Context(), accountID, categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// List godoc
//
//	@Summary		List expense categories
//	@Description	Retrieve all live categories for the account, sorted by name
//	@Tags			categories
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Success		200				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

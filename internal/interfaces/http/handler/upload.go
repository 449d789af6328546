package handler

import (
	attachmentapp "github.com/rentdesk/backend/internal/application/attachment"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles presigned upload URL and confirmation endpoints
type UploadHandler struct {
	BaseHandler
	uploadService *attachmentapp.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *attachmentapp.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// GenerateReceiptUploadURL godoc
//
//	@Summary		Request a receipt upload URL
//	@Description	Returns a presigned URL the client uploads the receipt file to
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			request			body		attachmentapp.ReceiptUploadURLRequest	true	"Upload URL request"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Router			/uploads/receipts [post]
func (h *UploadHandler) GenerateReceiptUploadURL(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req attachmentapp.ReceiptUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.uploadService.GenerateReceiptUploadURL(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// ConfirmReceiptUpload godoc
//
//	@Summary		Confirm a receipt upload
//	@Description	Verifies the file landed in storage and creates the receipt record
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string										true	"Account ID"
//	@Param			request			body		attachmentapp.ConfirmReceiptUploadRequest	true	"Confirmation request"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		422				{object}	dto.Response	"Upload not found in storage"
//	@Router			/uploads/receipts/confirm [post]
func (h *UploadHandler) ConfirmReceiptUpload(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req attachmentapp.ConfirmReceiptUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.uploadService.ConfirmReceiptUpload(c.Request.Context(), accountID, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// GeneratePhotoUploadURL godoc
//
//	@Summary		Request a photo upload URL
//	@Description	Returns a presigned URL the client uploads the photo file to
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			request			body		attachmentapp.PhotoUploadURLRequest	true	"Upload URL request"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response	"Owner not found"
//	@Router			/uploads/photos [post]
func (h *UploadHandler) GeneratePhotoUploadURL(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req attachmentapp.PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.uploadService.GeneratePhotoUploadURL(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// ConfirmPhotoUpload godoc
//
//	@Summary		Confirm a photo upload
//	@Description	Verifies the file landed in storage and appends the photo to its gallery
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			request			body		attachmentapp.ConfirmPhotoUploadRequest	true	"Confirmation request"
//	@Success		201				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response	"Owner not found"
//	@Failure		422				{object}	dto.Response	"Upload not found in storage"
//	@Router			/uploads/photos/confirm [post]
func (h *UploadHandler) ConfirmPhotoUpload(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req attachmentapp.ConfirmPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.uploadService.ConfirmPhotoUpload(c.Request.Context(), accountID, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

package handler

import (
	attachmentapp "github.com/rentdesk/backend/internal/application/attachment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PhotoHandler handles photo gallery API endpoints
type PhotoHandler struct {
	BaseHandler
	photoService *attachmentapp.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoService *attachmentapp.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// SetPrimaryRequest identifies the gallery a photo is promoted within
type SetPrimaryRequest struct {
	OwnerKind string    `json:"owner_kind" binding:"required,oneof=property work_order"`
	OwnerID   uuid.UUID `json:"owner_id" binding:"required"`
}

// ownerFromQuery reads the owner_kind/owner_id query pair shared by the
// gallery endpoints.
func ownerFromQuery(c *gin.Context) (string, uuid.UUID, bool) {
	ownerKind := c.Query("owner_kind")
	if ownerKind != "property" && ownerKind != "work_order" {
		return "", uuid.Nil, false
	}
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		return "", uuid.Nil, false
	}
	return ownerKind, ownerID, true
}

// ListByOwner godoc
//
//	@Summary		List an owner's photos
//	@Description	Retrieve a gallery in display order with presigned URLs
//	@Tags			photos
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			owner_kind		query		string	true	"Owner kind"	Enums(property, work_order)
//	@Param			owner_id		query		string	true	"Owner ID"		format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response	"Owner not found"
//	@Router			/photos [get]
func (h *PhotoHandler) ListByOwner(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	ownerKind, ownerID, ok := ownerFromQuery(c)
	if !ok {
		h.BadRequest(c, "owner_kind and owner_id query parameters are required")
		return
	}

	photos, err := h.photoService.ListByOwner(c.Request.Context(), accountID, ownerKind, ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, photos)
}

// GetByID godoc
//
//	@Summary		Get photo by ID
//	@Description	Retrieve a photo with presigned full-size and thumbnail URLs
//	@Tags			photos
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Photo ID"	format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/photos/{id} [get]
func (h *PhotoHandler) GetByID(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid photo ID format")
		return
	}

	response, err := h.photoService.GetByID(c.Request.Context(), accountID, photoID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// SetPrimary godoc
//
//	@Summary		Set a photo as primary
//	@Description	Promote a photo to primary; the previous primary is demoted in the same transaction
//	@Tags			photos
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string				true	"Account ID"
//	@Param			id				path		string				true	"Photo ID"	format(uuid)
//	@Param			request			body		SetPrimaryRequest	true	"Gallery owner"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/photos/{id}/primary [post]
func (h *PhotoHandler) SetPrimary(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid photo ID format")
		return
	}

	var req SetPrimaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.photoService.SetPrimary(c.Request.Context(), accountID, req.OwnerKind, req.OwnerID, photoID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Reorder godoc
//
//	@Summary		Reorder an owner's photos
//	@Description	Rewrite the display order of a gallery; the ID list must cover every live photo exactly once
//	@Tags			photos
//	@Accept			json
//	@Produce		json
//	@Param			X-Account-ID	header		string									true	"Account ID"
//	@Param			request			body		attachmentapp.ReorderPhotosRequest	true	"Reorder request"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Failure		409				{object}	dto.Response	"ID list does not match the gallery"
//	@Router			/photos/reorder [post]
func (h *PhotoHandler) Reorder(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req attachmentapp.ReorderPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	photos, err := h.photoService.Reorder(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, photos)
}

// Delete godoc
//
//	@Summary		Delete a photo
//	@Description	Soft delete a photo and close the display-order gap; reports a suggested successor when the primary was deleted
//	@Tags			photos
//	@Produce		json
//	@Param			X-Account-ID	header		string	true	"Account ID"
//	@Param			id				path		string	true	"Photo ID"		format(uuid)
//	@Param			owner_kind		query		string	true	"Owner kind"	Enums(property, work_order)
//	@Param			owner_id		query		string	true	"Owner ID"		format(uuid)
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Failure		401				{object}	dto.Response
//	@Failure		404				{object}	dto.Response
//	@Router			/photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid photo ID format")
		return
	}

	ownerKind, ownerID, ok := ownerFromQuery(c)
	if !ok {
		h.BadRequest(c, "owner_kind and owner_id query parameters are required")
		return
	}

	response, err := h.photoService.Delete(c.Request.Context(), accountID, ownerKind, ownerID, photoID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

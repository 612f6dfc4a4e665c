package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/studyhall-app/studyhall_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload session attachment
// @Description Attach a worksheet photo, sketch or audio note to a session
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Param attachment formData file true "Attachment file (JPG, PNG, WEBP, GIF, MP3, WAV, PDF, TXT, MD)"
// @Success 201 {object} shared.Response{data=dto.AttachmentUploadResponse}
// @Router /api/v1/sessions/{sessionId}/attachments [post]
func (h *MediaHandler) UploadAttachment(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	sessionID := c.Params("sessionId")

	file, err := c.FormFile("attachment")
	if err != nil {
		return shared.NewBadRequestError(err, "No attachment file provided")
	}

	resp, err := h.mediaSvc.UploadAttachment(userID, sessionID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Attachment uploaded successfully", resp)
}

// @Summary List session attachments
// @Description List the attachments of a session
// @Tags attachments
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.AttachmentListResponse}
// @Router /api/v1/sessions/{sessionId}/attachments [get]
func (h *MediaHandler) GetSessionAttachments(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	sessionID := c.Params("sessionId")

	resp, err := h.mediaSvc.GetSessionAttachments(userID, sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Delete session attachment
// @Description Remove an attachment and its stored object
// @Tags attachments
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param attachmentId path string true "Attachment ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/attachments/{attachmentId} [delete]
func (h *MediaHandler) DeleteAttachment(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	attachmentID := c.Params("attachmentId")

	if err := h.mediaSvc.DeleteAttachment(userID, attachmentID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Attachment deleted successfully", nil)
}

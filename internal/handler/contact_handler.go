package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// ContactHandler manages contact messages.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit godoc
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body service.SubmitContactRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid message payload"))
		return
	}

	message, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, message)
}

// List godoc
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, messages)
}

// Delete godoc
// @Summary Delete contact message
// @Tags Contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "message deleted")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// NewsletterHandler manages newsletter subscriptions.
type NewsletterHandler struct {
	service *service.NewsletterService
}

// NewNewsletterHandler creates a new handler.
func NewNewsletterHandler(svc *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: svc}
}

// Subscribe godoc
// @Summary Subscribe to newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param payload body service.SubscribeRequest true "Subscription payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req service.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subscription payload"))
		return
	}

	subscriber, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, subscriber)
}

// List godoc
// @Summary List subscribers
// @Tags Newsletter
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /newsletter [get]
func (h *NewsletterHandler) List(c *gin.Context) {
	subscribers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, subscribers)
}

// Delete godoc
// @Summary Delete subscriber
// @Tags Newsletter
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /newsletter/{id} [delete]
func (h *NewsletterHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "subscriber deleted")
}

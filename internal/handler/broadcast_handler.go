package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// BroadcastHandler dispatches bulk email sends. The same handler is mounted
// on each collection's /send route since recipients arrive in the payload.
type BroadcastHandler struct {
	service *service.BroadcastService
	metrics *service.MetricsService
}

// NewBroadcastHandler creates a new handler.
func NewBroadcastHandler(svc *service.BroadcastService, metrics *service.MetricsService) *BroadcastHandler {
	return &BroadcastHandler{service: svc, metrics: metrics}
}

// Send godoc
// @Summary Send bulk email
// @Description Send one message per recipient; returns per-recipient outcomes, 207 when some fail
// @Tags Broadcast
// @Accept json
// @Produce json
// @Param payload body models.BroadcastRequest true "Broadcast payload"
// @Success 200 {object} response.Envelope
// @Success 207 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /newsletter/send [post]
func (h *BroadcastHandler) Send(c *gin.Context) {
	var req models.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid broadcast payload"))
		return
	}

	report, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.ObserveBroadcast(report.Sent, report.Failed)

	status := http.StatusOK
	if report.Partial() {
		status = http.StatusMultiStatus
	}
	response.JSON(c, status, report)
}

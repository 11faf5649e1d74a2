package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// LibraryTimesHandler manages library opening hours.
type LibraryTimesHandler struct {
	service *service.LibraryTimesService
}

// NewLibraryTimesHandler creates a new handler.
func NewLibraryTimesHandler(svc *service.LibraryTimesService) *LibraryTimesHandler {
	return &LibraryTimesHandler{service: svc}
}

// Set godoc
// @Summary Set opening hours for a day
// @Description Create or replace a weekday's opening hours
// @Tags Library times
// @Accept json
// @Produce json
// @Param payload body service.SetLibraryTimesRequest true "Opening hours payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /library-times [post]
func (h *LibraryTimesHandler) Set(c *gin.Context) {
	var req service.SetLibraryTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid opening hours payload"))
		return
	}

	hours, err := h.service.Set(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, hours)
}

// List godoc
// @Summary List opening hours
// @Description Stored days in fixed week order, Saturday first
// @Tags Library times
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /library-times [get]
func (h *LibraryTimesHandler) List(c *gin.Context) {
	hours, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, hours)
}

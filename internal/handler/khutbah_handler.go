package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// KhutbahHandler manages khutbah subjects.
type KhutbahHandler struct {
	service *service.KhutbahService
}

// NewKhutbahHandler creates a new handler.
func NewKhutbahHandler(svc *service.KhutbahService) *KhutbahHandler {
	return &KhutbahHandler{service: svc}
}

// Create godoc
// @Summary Create khutbah subject
// @Tags Khutbah
// @Accept json
// @Produce json
// @Param payload body service.CreateKhutbahRequest true "Subject payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /khutbah [post]
func (h *KhutbahHandler) Create(c *gin.Context) {
	var req service.CreateKhutbahRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}

	subject, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, subject)
}

// List godoc
// @Summary List khutbah subjects
// @Tags Khutbah
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /khutbah [get]
func (h *KhutbahHandler) List(c *gin.Context) {
	subjects, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, subjects)
}

// Delete godoc
// @Summary Delete khutbah subject
// @Tags Khutbah
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /khutbah/{id} [delete]
func (h *KhutbahHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "subject deleted")
}

// ToggleFeatured godoc
// @Summary Toggle featured subject
// @Description Feature a subject; at most one subject is featured at a time
// @Tags Khutbah
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /khutbah/{id}/toggle-main [patch]
func (h *KhutbahHandler) ToggleFeatured(c *gin.Context) {
	subject, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, subject)
}

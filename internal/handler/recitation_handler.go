package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// RecitationHandler manages featured recitations.
type RecitationHandler struct {
	service *service.RecitationService
}

// NewRecitationHandler creates a new handler.
func NewRecitationHandler(svc *service.RecitationService) *RecitationHandler {
	return &RecitationHandler{service: svc}
}

// Create godoc
// @Summary Create recitation
// @Description Upload a recitation into one of the three rank slots; an occupied slot is replaced
// @Tags Recitations
// @Accept mpfd
// @Produce json
// @Param title formData string true "Recitation title"
// @Param rank formData int true "Rank slot (1-3)"
// @Param audio formData file true "Audio file"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /recitations [post]
func (h *RecitationHandler) Create(c *gin.Context) {
	rank, err := strconv.Atoi(c.PostForm("rank"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "rank must be a number"))
		return
	}

	req := service.CreateRecitationRequest{
		Title: c.PostForm("title"),
		Rank:  rank,
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "audio file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read audio file"))
		return
	}
	defer file.Close()

	req.Audio = file
	req.Filename = fileHeader.Filename
	req.ContentType = fileHeader.Header.Get("Content-Type")

	recitation, replaced, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if replaced {
		response.JSON(c, http.StatusOK, recitation)
		return
	}
	response.Created(c, recitation)
}

// List godoc
// @Summary List recitations
// @Tags Recitations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /recitations [get]
func (h *RecitationHandler) List(c *gin.Context) {
	recitations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, recitations)
}

// Delete godoc
// @Summary Delete recitation
// @Tags Recitations
// @Produce json
// @Param id path string true "Recitation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /recitations/{id} [delete]
func (h *RecitationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "recitation deleted")
}

// ToggleFeatured godoc
// @Summary Toggle featured recitation
// @Tags Recitations
// @Produce json
// @Param id path string true "Recitation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /recitations/{id}/toggle-main [patch]
func (h *RecitationHandler) ToggleFeatured(c *gin.Context) {
	recitation, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, recitation)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// QuranHandler proxies the upstream Quran-text API.
type QuranHandler struct {
	service *service.QuranService
}

// NewQuranHandler creates a new handler.
func NewQuranHandler(svc *service.QuranService) *QuranHandler {
	return &QuranHandler{service: svc}
}

// Chapters godoc
// @Summary List Quran chapters
// @Tags Quran
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /quran/chapters [get]
func (h *QuranHandler) Chapters(c *gin.Context) {
	chapters, err := h.service.Chapters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, chapters)
}

// Chapter godoc
// @Summary Get Quran chapter
// @Description One chapter with its verse text
// @Tags Quran
// @Produce json
// @Param number path int true "Chapter number (1-114)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /quran/chapters/{number} [get]
func (h *QuranHandler) Chapter(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "chapter number must be a number"))
		return
	}

	detail, err := h.service.Chapter(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// PrayerHandler proxies the upstream prayer-time API.
type PrayerHandler struct {
	service *service.PrayerService
}

// NewPrayerHandler creates a new handler.
func NewPrayerHandler(svc *service.PrayerService) *PrayerHandler {
	return &PrayerHandler{service: svc}
}

// Timings godoc
// @Summary Get prayer times
// @Description Daily prayer schedule for a location, with Gregorian and Hijri dates
// @Tags Prayer times
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param method query int false "Calculation method"
// @Param date query string false "Date (DD-MM-YYYY), defaults to today"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /prayer-times [get]
func (h *PrayerHandler) Timings(c *gin.Context) {
	rawLat, rawLng := c.Query("latitude"), c.Query("longitude")
	if rawLat == "" || rawLng == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "latitude and longitude are required"))
		return
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "latitude must be a number"))
		return
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "longitude must be a number"))
		return
	}

	q := service.PrayerQuery{
		Latitude:  lat,
		Longitude: lng,
		Date:      c.Query("date"),
	}
	if raw := c.Query("method"); raw != "" {
		method, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "method must be a number"))
			return
		}
		q.Method = method
	}

	times, err := h.service.Timings(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, times)
}

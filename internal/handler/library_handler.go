package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// LibraryHandler manages student library registrations.
type LibraryHandler struct {
	service *service.LibraryService
}

// NewLibraryHandler creates a new handler.
func NewLibraryHandler(svc *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{service: svc}
}

// Register godoc
// @Summary Register library member
// @Description Public registration with a required profile picture
// @Tags Library
// @Accept mpfd
// @Produce json
// @Param name formData string true "Full name"
// @Param birthdate formData string true "Birthdate (YYYY-MM-DD)"
// @Param school formData string true "School"
// @Param school_year formData string true "School year"
// @Param room_number formData string true "Room number"
// @Param wilaya formData string true "Wilaya"
// @Param phone formData string true "Phone"
// @Param email formData string true "Email"
// @Param prayer_promise formData bool true "Prayer commitment"
// @Param picture formData file true "Profile picture"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /library [post]
func (h *LibraryHandler) Register(c *gin.Context) {
	req := service.RegisterLibraryRequest{
		Name:       c.PostForm("name"),
		School:     c.PostForm("school"),
		SchoolYear: c.PostForm("school_year"),
		RoomNumber: c.PostForm("room_number"),
		Wilaya:     c.PostForm("wilaya"),
		Phone:      c.PostForm("phone"),
		Email:      c.PostForm("email"),
	}

	if raw := c.PostForm("birthdate"); raw != "" {
		birthdate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "birthdate must be YYYY-MM-DD"))
			return
		}
		req.Birthdate = birthdate
	}

	if raw := c.PostForm("prayer_promise"); raw != "" {
		promise, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "prayer_promise must be a boolean"))
			return
		}
		req.PrayerPromise = &promise
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "profile picture is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read profile picture"))
		return
	}
	defer file.Close()

	req.Picture = file
	req.Filename = fileHeader.Filename
	req.ContentType = fileHeader.Header.Get("Content-Type")

	registration, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, registration)
}

// List godoc
// @Summary List library registrations
// @Tags Library
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /library [get]
func (h *LibraryHandler) List(c *gin.Context) {
	registrations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, registrations)
}

// Delete godoc
// @Summary Delete library registration
// @Tags Library
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /library/{id} [delete]
func (h *LibraryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "registration deleted")
}

// Export godoc
// @Summary Export library registrations
// @Description Download registrations as CSV or PDF
// @Tags Library
// @Produce octet-stream
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /library/export [get]
func (h *LibraryHandler) Export(c *gin.Context) {
	payload, contentType, err := h.service.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "library-registrations." + extensionFor(contentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

func extensionFor(contentType string) string {
	if contentType == "application/pdf" {
		return "pdf"
	}
	return "csv"
}

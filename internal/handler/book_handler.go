package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/service"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/response"
)

// BookHandler manages the library book catalogue.
type BookHandler struct {
	service *service.BookService
}

// NewBookHandler creates a new handler.
func NewBookHandler(svc *service.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

// Create godoc
// @Summary Create book
// @Description Add a catalogue entry with up to 15 cover images
// @Tags Books
// @Accept mpfd
// @Produce json
// @Param title formData string true "Book title"
// @Param description formData string false "Book description"
// @Param images formData file false "Cover images"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid multipart payload"))
		return
	}

	req := service.CreateBookRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	files := form.File["images"]
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read image file"))
			return
		}
		opened = append(opened, file)
		req.Images = append(req.Images, service.BookImage{
			Reader:      file,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, book)
}

// List godoc
// @Summary List books
// @Tags Books
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// Delete godoc
// @Summary Delete book
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "book deleted")
}

// ToggleFeatured godoc
// @Summary Toggle featured book
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /books/{id}/toggle-main [patch]
func (h *BookHandler) ToggleFeatured(c *gin.Context) {
	book, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, book)
}

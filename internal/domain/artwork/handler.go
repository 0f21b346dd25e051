package artwork

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"artcatalog/internal/pkg/response"
)

// imageField is the multipart field carrying the optional upload.
const imageField = "artwork_image"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List all artworks ordered by artist name, then title
// @Tags Artworks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /artworks [get]
func (h *Handler) List(c *gin.Context) {
	artworks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list artworks")
		return
	}
	response.Success(c, http.StatusOK, artworks)
}

// Get godoc
// @Summary Get one artwork by its public identifier
// @Tags Artworks
// @Produce json
// @Param uuid path string true "Artwork UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 404,500 {object} map[string]interface{}
// @Router /artworks/{uuid} [get]
func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, ErrArtworkNotFound) {
			response.Error(c, http.StatusNotFound, "ARTWORK_NOT_FOUND", "artwork not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load artwork")
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Create godoc
// @Summary Add an artwork
// @Description Multipart form with the metadata fields and an optional "artwork_image" file. A disallowed or missing file saves the record without an image.
// @Tags Artworks
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /artworks [post]
func (h *Handler) Create(c *gin.Context) {
	var form Form
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "malformed form data")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &form, imageFile(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create artwork")
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// Update godoc
// @Summary Replace all mutable fields of an artwork
// @Tags Artworks
// @Accept multipart/form-data
// @Produce json
// @Param uuid path string true "Artwork UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /artworks/{uuid} [put]
func (h *Handler) Update(c *gin.Context) {
	var form Form
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "malformed form data")
		return
	}

	a, err := h.service.Update(c.Request.Context(), c.Param("uuid"), &form, imageFile(c))
	if err != nil {
		if errors.Is(err, ErrArtworkNotFound) {
			response.Error(c, http.StatusNotFound, "ARTWORK_NOT_FOUND", "artwork not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update artwork")
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Delete godoc
// @Summary Delete an artwork and its image file
// @Tags Artworks
// @Produce json
// @Param uuid path string true "Artwork UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 404,500 {object} map[string]interface{}
// @Router /artworks/{uuid} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		if errors.Is(err, ErrArtworkNotFound) {
			response.Error(c, http.StatusNotFound, "ARTWORK_NOT_FOUND", "artwork not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete artwork")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// imageFile returns the optional upload, nil when the field is absent.
func imageFile(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile(imageField)
	if err != nil {
		return nil
	}
	return file
}

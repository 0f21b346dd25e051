package attachment

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Handler serves stored artwork images.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Serve godoc
// @Summary Serve an artwork image by its stored filename
// @Tags Attachments
// @Produce image/*
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {string} string "file not found"
// @Router /uploads/images/{filename} [get]
func (h *Handler) Serve(c *gin.Context) {
	path, err := h.store.Path(c.Param("filename"))
	if err != nil {
		c.String(http.StatusNotFound, "file not found")
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "file not found")
		return
	}
	c.File(path)
}

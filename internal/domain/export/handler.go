package export

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"artcatalog/internal/domain/artwork"
	"artcatalog/internal/pkg/response"
)

const downloadFilename = "artist_catalog.xml"

// Lister supplies the full, ordered record set. Satisfied by the artwork
// service; export never mutates storage.
type Lister interface {
	List(ctx context.Context) ([]artwork.Artwork, error)
}

type Handler struct {
	catalog Lister
}

func NewHandler(catalog Lister) *Handler {
	return &Handler{catalog: catalog}
}

// Download godoc
// @Summary Download the catalog as an artist-grouped XML document
// @Tags Export
// @Produce xml
// @Success 200 {string} string "XML document"
// @Failure 500 {object} map[string]interface{}
// @Router /export [get]
func (h *Handler) Download(c *gin.Context) {
	artworks, err := h.catalog.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to export catalog")
		return
	}

	doc, err := Marshal(artworks)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to export catalog")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+downloadFilename)
	c.Data(http.StatusOK, "application/xml", doc)
}

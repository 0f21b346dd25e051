package attachment

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public image endpoint at the fixed path prefix
// recorded in image filenames.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/uploads/images/:filename", h.Serve)
}

package artwork

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	artworks := r.Group("/artworks")
	{
		artworks.GET("", h.List)
		artworks.POST("", h.Create)
		artworks.GET("/:uuid", h.Get)
		artworks.PUT("/:uuid", h.Update)
		artworks.DELETE("/:uuid", h.Delete)
	}
}

package templates

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/catalog")
	{
		group.GET("/templates", h.List)
		group.GET("/examples", h.ListExamples)
		group.GET("/styles", h.ListStyles)
		group.GET("/showcase", h.ListShowcase)
	}
}

package generation

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/generation")
	{
		group.POST("/generate", h.Generate)
		group.POST("/storyboard", h.GenerateStoryboard)
	}
}

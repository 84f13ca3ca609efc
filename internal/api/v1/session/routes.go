package session

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/session")
	{
		group.GET("/form-state", h.Get)
		group.PUT("/form-state", h.Put)
		group.POST("/form-state/undo", h.Undo)
		group.POST("/form-state/redo", h.Redo)
		group.GET("/artifact", h.Artifact)
	}
}

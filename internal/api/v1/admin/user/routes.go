package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	group := router.Group("/users")
	{
		group.GET("", h.List)
		group.PUT("/:id/role", h.SetRole)
		group.POST("/:id/confirm", h.Confirm)
		group.DELETE("/:id", h.Delete)
	}
}

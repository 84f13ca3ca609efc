package middleware

import (
	"net/http"

	"veoprompt-backend/internal/models"
	"veoprompt-backend/internal/services"
	"veoprompt-backend/internal/utils"
	"veoprompt-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware validates that the caller holds an administrative role.
func AdminAuthMiddleware(jwtSecret string, users *services.UserService, denylist *services.DenylistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		isDenylisted, err := denylist.Contains(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if isDenylisted {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(jwtSecret, tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Invalid or expired token"))
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != models.RoleAdmin {
			logger.Log.Warn("unauthorized admin access attempt", zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden: Admins only"))
			c.Abort()
			return
		}

		if userIDFloat, ok := claims["user_id"].(float64); ok {
			if user, err := users.FindByID(uint(userIDFloat)); err == nil {
				c.Set("user", user)
			}
		}

		c.Next()
	}
}

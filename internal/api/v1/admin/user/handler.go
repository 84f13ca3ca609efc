package user

import (
	"errors"
	"net/http"
	"strconv"

	"veoprompt-backend/internal/models"
	"veoprompt-backend/internal/services"
	"veoprompt-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users *services.UserService
}

func NewHandler(users *services.UserService) *Handler {
	return &Handler{Users: users}
}

type UserListResponse struct {
	Total int64         `json:"total"`
	Items []models.User `json:"items"`
}

type SetRoleInput struct {
	Role string `json:"role" binding:"required,oneof=free paid admin"`
}

// List godoc
// @Summary List user accounts
// @Tags admin
// @Router /admin/users [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.Users.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list users"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", UserListResponse{Total: total, Items: users}))
}

// SetRole godoc
// @Summary Change a user's role
// @Tags admin
// @Router /admin/users/{id}/role [put]
func (h *Handler) SetRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user id"))
		return
	}

	var input SetRoleInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	operator := c.MustGet("user").(models.User)
	updated, err := h.Users.SetRole(uint(id), input.Role, operator.Email)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Role updated", updated))
}

// Confirm godoc
// @Summary Confirm a user account so it can log in
// @Tags admin
// @Router /admin/users/{id}/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user id"))
		return
	}

	operator := c.MustGet("user").(models.User)
	updated, err := h.Users.Confirm(uint(id), operator.Email)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User confirmed", updated))
}

// Delete godoc
// @Summary Delete a user account
// @Tags admin
// @Router /admin/users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user id"))
		return
	}

	if err := h.Users.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete user"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deleted", nil))
}

func (h *Handler) writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrOptimisticLock):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
	}
}

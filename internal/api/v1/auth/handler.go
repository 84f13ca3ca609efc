package auth

import (
	"errors"
	"net/http"

	"veoprompt-backend/internal/services"
	"veoprompt-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Auth *services.AuthService
}

func NewHandler(auth *services.AuthService) *Handler {
	return &Handler{Auth: auth}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

type SessionResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// Register godoc
// @Summary Register a new account
// @Description New accounts start unconfirmed; an admin must confirm them before login.
// @Tags auth
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := h.Auth.Register(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to register user due to an internal error"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Account created, awaiting confirmation", SessionResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}))
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, u, err := h.Auth.Login(input.Email, input.Password, input.Remember)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotConfirmed):
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Account not confirmed"))
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid email or password"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Login failed due to an internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", SessionResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Token: token,
	}))
}

// Logout godoc
// @Summary Log out, revoking the current token
// @Tags auth
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	if err := h.Auth.Logout(tokenString); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to revoke token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}

package session

import (
	"net/http"

	"veoprompt-backend/internal/models"
	"veoprompt-backend/internal/services"
	"veoprompt-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	FormState *services.FormStateService
}

func NewHandler(fs *services.FormStateService) *Handler {
	return &Handler{FormState: fs}
}

type FormStateInput struct {
	SelectedTemplateID string            `json:"selected_template_id" binding:"required"`
	InputValues        map[string]string `json:"input_values"`
	NegativePrompt     string            `json:"negative_prompt"`
	SelectedStyleID    string            `json:"selected_style_id"`
}

type FormStateResponse struct {
	State   services.FormState `json:"state"`
	CanUndo bool               `json:"can_undo"`
	CanRedo bool               `json:"can_redo"`
}

// Get returns the user's present form state and undo/redo availability.
func (h *Handler) Get(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	state, canUndo, canRedo := h.FormState.Current(user.ID)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FormStateResponse{
		State:   state,
		CanUndo: canUndo,
		CanRedo: canRedo,
	}))
}

// Put records a new form state. Setting an unchanged state is a no-op for
// the history record.
func (h *Handler) Put(c *gin.Context) {
	var input FormStateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)
	state, canUndo, canRedo, err := h.FormState.Set(user.ID, services.FormState{
		SelectedTemplateID: input.SelectedTemplateID,
		InputValues:        input.InputValues,
		NegativePrompt:     input.NegativePrompt,
		SelectedStyleID:    input.SelectedStyleID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save form state"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FormStateResponse{
		State:   state,
		CanUndo: canUndo,
		CanRedo: canRedo,
	}))
}

func (h *Handler) Undo(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	state, canUndo, canRedo, err := h.FormState.Undo(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save form state"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FormStateResponse{
		State:   state,
		CanUndo: canUndo,
		CanRedo: canRedo,
	}))
}

func (h *Handler) Redo(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	state, canUndo, canRedo, err := h.FormState.Redo(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save form state"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FormStateResponse{
		State:   state,
		CanUndo: canUndo,
		CanRedo: canRedo,
	}))
}

// Artifact returns the user's latest accepted artifact, if any.
func (h *Handler) Artifact(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	artifact, err := h.FormState.LatestArtifact(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load artifact"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", gin.H{"artifact": artifact}))
}

package generation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"veoprompt-backend/internal/models"
	"veoprompt-backend/internal/services"
	"veoprompt-backend/internal/utils"
	"veoprompt-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const genericFailureMessage = "Failed to generate prompt. Please check your inputs and try again."

type Handler struct {
	Generation *services.GenerationService
	Storyboard *services.StoryboardService
	Quota      *services.QuotaService
	FormState  *services.FormStateService
	Attempts   *services.AttemptTracker
}

func NewHandler(gen *services.GenerationService, sb *services.StoryboardService, quota *services.QuotaService, fs *services.FormStateService, attempts *services.AttemptTracker) *Handler {
	return &Handler{
		Generation: gen,
		Storyboard: sb,
		Quota:      quota,
		FormState:  fs,
		Attempts:   attempts,
	}
}

// Generate godoc
// @Summary Generate a video prompt JSON artifact
// @Description Runs the substitution pipeline against the generation backend.
// @Tags generation
// @Router /generation/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var input GenerateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)

	allowed, err := h.Quota.Allow(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check generation quota"))
		return
	}
	if !allowed {
		logger.Log.Warn("generation denied",
			zap.Uint("user_id", user.ID),
			zap.Error(services.ErrQuotaExceeded))
		msg := fmt.Sprintf("Daily generation limit of %d reached. Upgrade your plan or try again tomorrow.", h.Quota.DailyLimit)
		c.JSON(http.StatusTooManyRequests, utils.NewErrorResponse(http.StatusTooManyRequests, msg))
		return
	}

	var ref *services.InlineData
	if input.ReferenceImage != nil {
		ref = &services.InlineData{
			MIMEType: input.ReferenceImage.MimeType,
			Data:     input.ReferenceImage.Data,
		}
	}

	attempt := h.Attempts.Begin(user.ID)

	req := h.Generation.BuildRequest(input.TemplateID, input.InputValues, input.NegativePrompt, input.StyleID, ref)
	artifact, err := h.Generation.Generate(c.Request.Context(), req)
	if err != nil {
		logger.Log.Error("generation attempt failed",
			zap.Uint("user_id", user.ID),
			zap.Uint64("attempt", attempt),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, genericFailureMessage))
		return
	}

	if err := h.Quota.Record(&user); err != nil {
		logger.Log.Error("failed to record generation", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	// A superseded attempt must not overwrite the newest attempt's artifact.
	stale := !h.Attempts.IsCurrent(user.ID, attempt)
	if !stale {
		if err := h.FormState.SaveArtifact(user.ID, artifact); err != nil {
			logger.Log.Error("failed to persist artifact", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}

	remaining, err := h.Quota.Remaining(&user)
	if err != nil {
		remaining = 0
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", GenerateResponse{
		Artifact:  artifact,
		Attempt:   attempt,
		Stale:     stale,
		Remaining: remaining,
	}))
}

// GenerateStoryboard godoc
// @Summary Derive a still-image storyboard from an accepted artifact
// @Tags generation
// @Router /generation/storyboard [post]
func (h *Handler) GenerateStoryboard(c *gin.Context) {
	var input StoryboardInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)

	artifact := input.Artifact
	if strings.TrimSpace(artifact) == "" {
		// Fall back to the user's latest accepted artifact.
		stored, err := h.FormState.LatestArtifact(user.ID)
		if err != nil || strings.TrimSpace(stored) == "" {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No artifact to storyboard. Generate a prompt first."))
			return
		}
		artifact = stored
	}

	scenes, err := h.Storyboard.Generate(c.Request.Context(), artifact)
	if err != nil {
		if errors.Is(err, services.ErrInputIncomplete) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No artifact to storyboard. Generate a prompt first."))
			return
		}
		logger.Log.Error("storyboard attempt failed", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "Failed to generate the storyboard preview. The main prompt is unaffected."))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", StoryboardResponse{Scenes: scenes}))
}

package templates

import (
	"net/http"

	"veoprompt-backend/internal/catalog"
	"veoprompt-backend/internal/models"
	"veoprompt-backend/internal/services"
	"veoprompt-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type TemplateResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Body         string   `json:"body"`
	Premium      bool     `json:"premium"`
	Placeholders []string `json:"placeholders"`
}

// List returns the templates visible to the caller. Premium templates are
// hidden from quota-restricted accounts; the filter lives here, not in the
// catalog.
func (h *Handler) List(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	items := make([]TemplateResponse, 0, len(catalog.Templates))
	for _, tpl := range catalog.Templates {
		if tpl.Premium && !user.Unlimited() {
			continue
		}
		items = append(items, TemplateResponse{
			ID:           tpl.ID,
			Name:         tpl.Name,
			Body:         tpl.Body,
			Premium:      tpl.Premium,
			Placeholders: services.ExtractPlaceholders(tpl.Body),
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", items))
}

// ListExamples returns the curated quick-start value-sets.
func (h *Handler) ListExamples(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", catalog.Examples))
}

// ListStyles returns the visual style enumeration.
func (h *Handler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", catalog.VisualStyles))
}

// ListShowcase returns the inspiration reel of demo clips.
func (h *Handler) ListShowcase(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", catalog.ShowcaseVideos))
}

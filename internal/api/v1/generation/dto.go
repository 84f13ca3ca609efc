package generation

import "veoprompt-backend/internal/services"

type ReferenceImageInput struct {
	Data     string `json:"data" binding:"required"` // base64
	MimeType string `json:"mime_type" binding:"required"`
}

type GenerateInput struct {
	TemplateID     string               `json:"template_id" binding:"required"`
	InputValues    map[string]string    `json:"input_values"`
	NegativePrompt string               `json:"negative_prompt"`
	StyleID        string               `json:"style_id"`
	ReferenceImage *ReferenceImageInput `json:"reference_image"`
}

type GenerateResponse struct {
	Artifact  string `json:"artifact"`
	Attempt   uint64 `json:"attempt"`
	Stale     bool   `json:"stale"`
	Remaining int    `json:"remaining"` // -1 for unlimited roles
}

type StoryboardInput struct {
	Artifact string `json:"artifact"`
}

type StoryboardResponse struct {
	Scenes []services.StoryboardScene `json:"scenes"`
}

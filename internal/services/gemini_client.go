package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"veoprompt-backend/config"
	"veoprompt-backend/internal/utils"
	"veoprompt-backend/pkg/logger"

	"go.uber.org/zap"
)

// Part is one element of a text-generation request. Exactly one of Text or
// InlineData is set; at most one part per request carries image data.
type Part struct {
	Text       string
	InlineData *InlineData
}

// InlineData is a base64-encoded binary attachment.
type InlineData struct {
	MIMEType string
	Data     string
}

// GeneratedImage is a single synthesized image.
type GeneratedImage struct {
	Data     string `json:"data"` // base64
	MIMEType string `json:"mime_type"`
}

// TextImageGenerator abstracts the remote generative backend. Implementations
// make at most one call per invocation and never retry; retries belong to the
// caller.
type TextImageGenerator interface {
	GenerateText(ctx context.Context, parts []Part) (string, error)
	GenerateImage(ctx context.Context, prompt string) (GeneratedImage, error)
}

// GeminiClient talks to the Gemini REST API.
type GeminiClient struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	HTTP       *http.Client
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		HTTP:       utils.NewHTTPClient(120 * time.Second),
	}
}

// Wire structures for the generateContent endpoint.
type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Wire structures for the image predict endpoint.
type imagePredictRequest struct {
	Instances []struct {
		Prompt string `json:"prompt"`
	} `json:"instances"`
	Parameters struct {
		SampleCount int `json:"sampleCount"`
	} `json:"parameters"`
}

type imagePredictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	} `json:"predictions"`
}

// GenerateText sends the parts bundle to the text model and returns the raw
// reply text. The reply is not parsed here; normalization is the substitution
// engine's job.
func (c *GeminiClient) GenerateText(ctx context.Context, parts []Part) (string, error) {
	reqBody := generateContentRequest{
		Contents: []geminiContent{{Parts: make([]geminiPart, 0, len(parts))}},
	}
	for _, p := range parts {
		gp := geminiPart{Text: p.Text}
		if p.InlineData != nil {
			gp.InlineData = &geminiInlineData{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data}
		}
		reqBody.Contents[0].Parts = append(reqBody.Contents[0].Parts, gp)
	}

	var resp generateContentResponse
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.TextModel, c.APIKey)
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	// Long replies can arrive split across several text parts.
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

// GenerateImage requests exactly one image for the prompt. Zero predictions
// on a 200 response is a failure, not an empty result.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (GeneratedImage, error) {
	var reqBody imagePredictRequest
	reqBody.Instances = []struct {
		Prompt string `json:"prompt"`
	}{{Prompt: prompt}}
	reqBody.Parameters.SampleCount = 1

	var resp imagePredictResponse
	url := fmt.Sprintf("%s/models/%s:predict?key=%s", c.BaseURL, c.ImageModel, c.APIKey)
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return GeneratedImage{}, err
	}

	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return GeneratedImage{}, ErrEmptyResponse
	}
	mimeType := resp.Predictions[0].MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return GeneratedImage{Data: resp.Predictions[0].BytesBase64Encoded, MIMEType: mimeType}, nil
}

func (c *GeminiClient) post(ctx context.Context, url string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		logger.Log.Error("gemini request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Error("gemini response read failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("gemini returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", bodyBytes))
		return fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		logger.Log.Error("gemini response decode failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

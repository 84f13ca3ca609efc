package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGeminiClient(baseURL string) *GeminiClient {
	return &GeminiClient{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		TextModel:  "gemini-2.5-flash",
		ImageModel: "imagen-3.0-generate-002",
		HTTP:       &http.Client{Timeout: 5 * time.Second},
	}
}

func textResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateContentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Contents, 1)
		assert.Equal(t, "describe the scene", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(textResponse(`{"ok": true}`))
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	text, err := client.GenerateText(context.Background(), []Part{{Text: "describe the scene"}})
	assert.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, text)
}

func TestGenerateTextSendsInlineImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateContentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		parts := req.Contents[0].Parts
		assert.Len(t, parts, 2)
		assert.NotNil(t, parts[0].InlineData)
		assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
		assert.Equal(t, "aGVsbG8=", parts[0].InlineData.Data)
		assert.Nil(t, parts[1].InlineData)

		json.NewEncoder(w).Encode(textResponse("ok"))
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	_, err := client.GenerateText(context.Background(), []Part{
		{InlineData: &InlineData{MIMEType: "image/jpeg", Data: "aGVsbG8="}},
		{Text: "describe the scene"},
	})
	assert.NoError(t, err)
}

func TestGenerateTextJoinsSplitParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A long reply arriving split across several text parts.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{
						{"text": `{"scene": `},
						{"text": `"opening"`},
						{"text": `}`},
					},
				}},
			},
		})
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	text, err := client.GenerateText(context.Background(), []Part{{Text: "x"}})
	assert.NoError(t, err)
	assert.Equal(t, `{"scene": "opening"}`, text)
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	_, err := client.GenerateText(context.Background(), []Part{{Text: "x"}})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateTextBlankText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(textResponse(""))
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	_, err := client.GenerateText(context.Background(), []Part{{Text: "x"}})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateTextServerErrorDoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	_, err := client.GenerateText(context.Background(), []Part{{Text: "x"}})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "a failed call must not be retried")
}

func TestGenerateTextUnreachableBackend(t *testing.T) {
	client := newTestGeminiClient("http://127.0.0.1:1")
	_, err := client.GenerateText(context.Background(), []Part{{Text: "x"}})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestGenerateImageSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "imagen-3.0-generate-002:predict")

		var req imagePredictRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Instances, 1)
		assert.Equal(t, "a red crate", req.Instances[0].Prompt)
		assert.Equal(t, 1, req.Parameters.SampleCount)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"predictions": []map[string]string{
				{"bytesBase64Encoded": "aW1n", "mimeType": "image/jpeg"},
			},
		})
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	img, err := client.GenerateImage(context.Background(), "a red crate")
	assert.NoError(t, err)
	assert.Equal(t, "aW1n", img.Data)
	assert.Equal(t, "image/jpeg", img.MIMEType)
}

func TestGenerateImageDefaultsMIMEType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"predictions": []map[string]string{{"bytesBase64Encoded": "aW1n"}},
		})
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	img, err := client.GenerateImage(context.Background(), "a red crate")
	assert.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestGenerateImageZeroPredictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"predictions": []interface{}{}})
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	_, err := client.GenerateImage(context.Background(), "a red crate")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateImageMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := newTestGeminiClient(srv.URL)
	_, err := client.GenerateImage(context.Background(), "a red crate")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

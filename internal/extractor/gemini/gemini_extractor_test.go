package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/extractor"
	gemini "procura/internal/extractor/gemini"
	"procura/internal/port"
)

func newTestExtractor(serverURL string) *gemini.Extractor {
	cfg := &config.ExtractorProviderConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-2.0-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewExtractorWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiExtractor_Extract_Success(t *testing.T) {
	llmJSON := `{"counterparty_name":"Công ty TNHH Thành Công","items":[
		{"name":"Bột mì","quantity":50,"unit":"kg","unit_price":12000},
		{"name":"Đường cát trắng","quantity":20,"unit":"kg"}
	]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 2)
		dataPart := parts[0].(map[string]interface{})
		inlineData := dataPart["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/jpeg", inlineData["mime_type"])
		assert.NotEmpty(t, inlineData["data"])

		textPart := parts[1].(map[string]interface{})
		assert.NotEmpty(t, textPart["text"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	ex := newTestExtractor(server.URL)
	doc, err := ex.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("fake-jpeg-bytes"),
		ContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, "Công ty TNHH Thành Công", doc.CounterpartyName)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Bột mì", doc.Items[0].Name)
	assert.Equal(t, 50.0, doc.Items[0].Quantity)
	require.NotNil(t, doc.Items[0].UnitPrice)
	assert.Equal(t, "12000", doc.Items[0].UnitPrice.String())
	assert.Nil(t, doc.Items[1].UnitPrice)
}

func TestGeminiExtractor_Extract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ex := newTestExtractor(server.URL)
	_, err := ex.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("x"),
		ContentType: "image/jpeg",
	})

	var rlErr *extractor.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "gemini", rlErr.Provider)
	assert.Equal(t, float64(42), rlErr.RetryAfter.Seconds())
}

func TestGeminiExtractor_Extract_EmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse(`{"counterparty_name":"","items":[]}`))
	}))
	defer server.Close()

	ex := newTestExtractor(server.URL)
	_, err := ex.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("x"),
		ContentType: "image/png",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyExtraction)
}

func TestGeminiExtractor_Extract_UnsupportedContentType(t *testing.T) {
	ex := newTestExtractor("http://unused.invalid")
	_, err := ex.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestGeminiExtractor_Extract_MalformedLLMOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse("this is not json"))
	}))
	defer server.Close()

	ex := newTestExtractor(server.URL)
	_, err := ex.Extract(context.Background(), port.ExtractInput{
		FileBytes:   []byte("x"),
		ContentType: "image/jpeg",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing LLM JSON output")
}

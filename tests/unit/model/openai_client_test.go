package model_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invotab/internal/config"
	"invotab/internal/model"
	"invotab/internal/model/openai"
	"invotab/internal/port"
)

func TestOpenAIClient_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"invoices\":[]}"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := openai.NewClientWithEndpoint(&config.ModelProviderConfig{
		Provider: "openai",
		APIKey:   "test-key",
	}, server.URL)

	text, err := client.GenerateContent(context.Background(), port.GenerateInput{
		MimeType: "image/jpeg",
		Data:     []byte("img"),
		Prompt:   "extract",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"invoices":[]}`, text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody["model"])
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := openai.NewClientWithEndpoint(&config.ModelProviderConfig{Provider: "openai"}, server.URL)

	_, err := client.GenerateContent(context.Background(), port.GenerateInput{
		MimeType: "application/pdf",
		Data:     []byte("doc"),
		Prompt:   "extract",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := openai.NewClientWithEndpoint(&config.ModelProviderConfig{Provider: "openai"}, server.URL)

	_, err := client.GenerateContent(context.Background(), port.GenerateInput{
		MimeType: "application/pdf",
		Data:     []byte("doc"),
		Prompt:   "extract",
	})

	var rlErr *model.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(5), rlErr.RetryAfter.Seconds())
}

package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newChatTestServer(t *testing.T, status int, body map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestOpenAIChat(t *testing.T) {
	server := newChatTestServer(t, http.StatusOK, map[string]any{
		"id":    "chatcmpl-test",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": "hello from the model"}},
		},
		"usage": map[string]any{
			"prompt_tokens":     12,
			"completion_tokens": 5,
			"total_tokens":      17,
		},
	})
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a test."},
			{Role: "user", Content: "Say hello."},
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if result.Content != "hello from the model" {
		t.Errorf("unexpected content: %q", result.Content)
	}
	if result.Provider != OpenAIName {
		t.Errorf("unexpected provider: %q", result.Provider)
	}
	if result.ModelUsed != "gpt-4o-mini" {
		t.Errorf("unexpected model: %q", result.ModelUsed)
	}
	if result.TotalTokens != 17 {
		t.Errorf("unexpected total tokens: %d", result.TotalTokens)
	}
	if result.RequestID == "" {
		t.Error("expected a generated request ID")
	}
}

func TestOpenAIChatEmptyChoices(t *testing.T) {
	server := newChatTestServer(t, http.StatusOK, map[string]any{
		"id":      "chatcmpl-test",
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{},
	})
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
	if result.Success {
		t.Error("result should not be marked successful")
	}
	if result.ErrorType != "empty_response" {
		t.Errorf("unexpected error type: %q", result.ErrorType)
	}
}

func TestOpenAIChatAPIError(t *testing.T) {
	server := newChatTestServer(t, http.StatusUnauthorized, map[string]any{
		"error": map[string]any{"message": "invalid api key", "type": "invalid_request_error"},
	})
	defer server.Close()

	client := NewOpenAIClient(OpenAIConfig{
		APIKey:     "bad-key",
		BaseURL:    server.URL,
		MaxRetries: 1,
	})

	result, err := client.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if result.ErrorType != "api_error" {
		t.Errorf("unexpected error type: %q", result.ErrorType)
	}
}

func TestOpenAIDefaults(t *testing.T) {
	client := NewOpenAIClient(OpenAIConfig{APIKey: "key"})
	if client.Model() != "gpt-4o-mini" {
		t.Errorf("unexpected default model: %q", client.Model())
	}
	if client.Name() != OpenAIName {
		t.Errorf("unexpected name: %q", client.Name())
	}
}

func TestMockClientFailAfter(t *testing.T) {
	mock := NewMockClient()
	mock.FailAfter = 2
	mock.ResponseText = "ok"

	ctx := context.Background()
	req := &ChatRequest{Messages: []Message{{Role: "user", Content: "hi"}}}

	for i := 0; i < 2; i++ {
		result, err := mock.Chat(ctx, req)
		if err != nil {
			t.Fatalf("request %d failed: %v", i+1, err)
		}
		if result.Content != "ok" {
			t.Errorf("unexpected content: %q", result.Content)
		}
	}

	if _, err := mock.Chat(ctx, req); err == nil {
		t.Error("expected failure after configured request count")
	}
	if mock.RequestCount() != 3 {
		t.Errorf("unexpected request count: %d", mock.RequestCount())
	}
}

func TestMockClientContextCancel(t *testing.T) {
	mock := NewMockClient()
	mock.Latency = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := mock.Chat(ctx, &ChatRequest{Messages: []Message{{Role: "user", Content: "hi"}}})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if result.ErrorType != "context_cancelled" {
		t.Errorf("unexpected error type: %q", result.ErrorType)
	}
}

package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const (
	GeminiName         = "gemini"
	geminiDefaultModel = "gemini-1.5-flash"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey     string
	Model      string        // "gemini-1.5-flash" (default)
	MaxRetries int           // Attempts for transient failures
	RetryDelay time.Duration // Base backoff delay
}

// GeminiClient implements LLMClient using the Google generative AI SDK.
type GeminiClient struct {
	model      string
	maxRetries int
	retryDelay time.Duration
	client     *genai.Client
}

// NewGeminiClient creates a new Gemini chat client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.Model == "" {
		cfg.Model = geminiDefaultModel
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		client:     client,
	}, nil
}

// Name returns the client identifier.
func (c *GeminiClient) Name() string {
	return GeminiName
}

// Close releases the underlying gRPC connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Chat sends a chat completion request. System messages become the system
// instruction; the remaining messages are concatenated into the prompt.
func (c *GeminiClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()

	result := &ChatResult{
		RequestID: req.RequestID,
		Provider:  GeminiName,
	}
	if result.RequestID == "" {
		result.RequestID = uuid.New().String()
	}

	modelName := req.Model
	if modelName == "" {
		modelName = c.model
	}
	result.ModelUsed = modelName

	model := c.client.GenerativeModel(modelName)
	if req.Temperature > 0 {
		model.SetTemperature(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	system, prompt := splitMessages(req.Messages)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var resp *genai.GenerateContentResponse
	attempts := 0
	err := retry.Do(
		func() error {
			attempts++
			var callErr error
			resp, callErr = model.GenerateContent(ctx, genai.Text(prompt))
			return callErr
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	result.Attempts = attempts

	if err != nil {
		result.Success = false
		result.ErrorType = "api_error"
		result.ErrorMessage = err.Error()
		result.ExecutionTime = time.Since(start)
		return result, fmt.Errorf("gemini request failed: %w", err)
	}

	content := responseText(resp)
	if content == "" {
		err := fmt.Errorf("empty candidates in Gemini response (model=%s)", modelName)
		result.Success = false
		result.ErrorType = "empty_response"
		result.ErrorMessage = err.Error()
		result.ExecutionTime = time.Since(start)
		return result, err
	}

	result.Success = true
	result.Content = content
	if resp.UsageMetadata != nil {
		result.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	result.ExecutionTime = time.Since(start)
	return result, nil
}

func splitMessages(messages []Message) (system, prompt string) {
	var promptParts []string
	for _, m := range messages {
		if m.Role == "system" {
			system = m.Content
			continue
		}
		promptParts = append(promptParts, m.Content)
	}
	return system, strings.Join(promptParts, "\n\n")
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

var _ LLMClient = (*GeminiClient)(nil)

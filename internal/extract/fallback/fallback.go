// Package fallback re-segments a decision document with a language model
// when pattern-based sectioning does not cover enough of the text.
package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oikeuslab/precedent/internal/providers"
	"github.com/oikeuslab/precedent/internal/types"
)

const (
	// DefaultMaxTextChars bounds how much of the document is sent to the
	// model. Longer documents are truncated with a visible notice.
	DefaultMaxTextChars = 120000

	truncationNotice = "\n\n[Document truncated for extraction.]"

	systemPrompt = `You segment Finnish Supreme Court (KKO) decision documents into sections.

Return a JSON array where each element is an object with exactly these keys:
  "type": one of "lower_court", "appeal_court", "background", "reasoning", "judgment", "other"
  "title": a short heading for the section
  "content": the full verbatim text of the section

Rules:
- Every part of the document must belong to exactly one section.
- Preserve the original text; do not summarize or translate.
- Use "other" when no listed type fits.
- Respond with only the JSON array, no commentary and no markdown fences.`
)

// sectionListSchema validates the overall shape of the model's section
// array. Only "content" is required; missing type and title are coerced
// per item in parseSections. Malformed JSON still rejects the whole payload.
var sectionListSchema = json.RawMessage(`{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["content"],
		"properties": {
			"type": {"type": "string"},
			"title": {"type": "string"},
			"content": {"type": "string"}
		}
	}
}`)

// SectionExtractor asks a model to re-segment a document into sections.
type SectionExtractor struct {
	client       providers.LLMClient
	model        string
	maxTextChars int
	timeout      time.Duration
	logger       *slog.Logger
}

// Option configures a SectionExtractor.
type Option func(*SectionExtractor)

// WithModel overrides the model passed to the provider.
func WithModel(model string) Option {
	return func(e *SectionExtractor) { e.model = model }
}

// WithMaxTextChars overrides the truncation limit.
func WithMaxTextChars(n int) Option {
	return func(e *SectionExtractor) {
		if n > 0 {
			e.maxTextChars = n
		}
	}
}

// WithTimeout sets a per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *SectionExtractor) { e.timeout = d }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *SectionExtractor) { e.logger = logger }
}

// NewSectionExtractor creates a fallback extractor. A nil client is allowed;
// Sections then degrades to an empty result with a warning.
func NewSectionExtractor(client providers.LLMClient, opts ...Option) *SectionExtractor {
	e := &SectionExtractor{
		client:       client,
		maxTextChars: DefaultMaxTextChars,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sections re-segments fullText into typed sections. It returns an empty
// slice (not an error) when the provider is unavailable or the response
// cannot be parsed, so the caller can fall through to its own degraded path.
func (e *SectionExtractor) Sections(ctx context.Context, fullText, caseID string) []types.Section {
	if e.client == nil {
		e.logger.Warn("fallback extraction skipped: no provider configured", "case_id", caseID)
		return nil
	}

	text := fullText
	if len(text) > e.maxTextChars {
		text = text[:e.maxTextChars] + truncationNotice
		e.logger.Info("document truncated for fallback extraction",
			"case_id", caseID,
			"original_chars", len(fullText),
			"sent_chars", e.maxTextChars)
	}

	req := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(caseID, text)},
		},
		Model:       e.model,
		Temperature: 0.1,
		Timeout:     e.timeout,
	}

	result, err := e.client.Chat(ctx, req)
	if err != nil {
		e.logger.Warn("fallback extraction request failed",
			"case_id", caseID,
			"provider", e.client.Name(),
			"error", err)
		return nil
	}

	sections, err := parseSections(result.Content)
	if err != nil {
		e.logger.Warn("fallback extraction returned unusable sections",
			"case_id", caseID,
			"provider", result.Provider,
			"model", result.ModelUsed,
			"error", err)
		return nil
	}

	e.logger.Info("fallback extraction succeeded",
		"case_id", caseID,
		"provider", result.Provider,
		"model", result.ModelUsed,
		"sections", len(sections),
		"total_tokens", result.TotalTokens)
	return sections
}

func userPrompt(caseID, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n\n", caseID)
	b.WriteString("Segment the following decision document into sections.\n\n")
	b.WriteString(text)
	return b.String()
}

// rawSection is the wire shape the model is asked to produce.
type rawSection struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// parseSections validates and coerces the model output. Unknown section types
// become "other", blank titles become "Section", and sections with no content
// are dropped.
func parseSections(content string) ([]types.Section, error) {
	payload, err := providers.ParseStructuredJSON(content)
	if err != nil {
		return nil, err
	}
	if err := providers.ValidateStructuredJSON(sectionListSchema, payload); err != nil {
		return nil, err
	}

	var raw []rawSection
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode section list: %w", err)
	}

	sections := make([]types.Section, 0, len(raw))
	for _, r := range raw {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		title := strings.TrimSpace(r.Title)
		if title == "" {
			title = "Section"
		}
		sections = append(sections, types.Section{
			Type:    types.CanonicalSectionType(types.ParseSectionType(r.Type)),
			Title:   title,
			Content: content,
		})
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("no usable sections in model output")
	}
	return sections, nil
}

package providers

import (
	"encoding/json"
	"testing"
)

func TestParseStructuredJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain object",
			input: `{"type":"judgment","title":"Tuomiolauselma"}`,
			want:  `{"title":"Tuomiolauselma","type":"judgment"}`,
		},
		{
			name:  "plain array",
			input: `[{"type":"other"}]`,
			want:  `[{"type":"other"}]`,
		},
		{
			name:  "fenced json",
			input: "```json\n[{\"type\":\"reasoning\"}]\n```",
			want:  `[{"type":"reasoning"}]`,
		},
		{
			name:  "fence without language tag",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "surrounding prose",
			input: "Here are the sections:\n[{\"type\":\"judgment\"}]\nLet me know if you need more.",
			want:  `[{"type":"judgment"}]`,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no json at all",
			input:   "I could not segment the document.",
			wantErr: true,
		},
		{
			name:    "truncated json",
			input:   `[{"type":"judgment","content":"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStructuredJSON(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateStructuredJSON(t *testing.T) {
	schema := json.RawMessage(`{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["type", "title", "content"],
			"properties": {
				"type": {"type": "string"},
				"title": {"type": "string"},
				"content": {"type": "string"}
			}
		}
	}`)

	valid := json.RawMessage(`[{"type":"judgment","title":"Tuomiolauselma","content":"Valitus hylätään."}]`)
	if err := ValidateStructuredJSON(schema, valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	missing := json.RawMessage(`[{"type":"judgment"}]`)
	if err := ValidateStructuredJSON(schema, missing); err == nil {
		t.Error("payload missing required fields should be rejected")
	}

	wrongShape := json.RawMessage(`{"type":"judgment"}`)
	if err := ValidateStructuredJSON(schema, wrongShape); err == nil {
		t.Error("non-array payload should be rejected")
	}

	// Empty schema or payload is a no-op.
	if err := ValidateStructuredJSON(nil, valid); err != nil {
		t.Errorf("nil schema should pass: %v", err)
	}
}

func TestNewClientRegistry(t *testing.T) {
	ctx := t.Context()

	client, err := NewClient(ctx, Settings{Provider: "none"})
	if err != nil || client != nil {
		t.Errorf("provider none should yield nil client, got %v, %v", client, err)
	}

	client, err = NewClient(ctx, Settings{Provider: "mock"})
	if err != nil {
		t.Fatalf("mock provider failed: %v", err)
	}
	if client.Name() != MockClientName {
		t.Errorf("unexpected client: %q", client.Name())
	}

	// A missing API key disables the fallback instead of blocking extraction.
	for _, provider := range []string{"openai", "gemini"} {
		client, err = NewClient(ctx, Settings{Provider: provider})
		if err != nil || client != nil {
			t.Errorf("%s without API key should yield nil client, got %v, %v", provider, client, err)
		}
	}

	if _, err := NewClient(ctx, Settings{Provider: "carrier-pigeon"}); err == nil {
		t.Error("unknown provider should fail")
	}
}

package config

// Config is the root configuration for the extraction pipeline.
type Config struct {
	Providers  map[string]ProviderConfig `mapstructure:"providers" yaml:"providers"`
	Extraction ExtractionConfig          `mapstructure:"extraction" yaml:"extraction"`
	Batch      BatchConfig               `mapstructure:"batch" yaml:"batch"`
	Logging    LoggingConfig             `mapstructure:"logging" yaml:"logging"`
}

// ProviderConfig configures one fallback model provider.
type ProviderConfig struct {
	Model          string `mapstructure:"model" yaml:"model"`
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// ExtractionConfig tunes the hybrid pipeline.
type ExtractionConfig struct {
	// FallbackProvider names the entry in Providers to use when pattern
	// coverage is insufficient. "none" disables the fallback.
	FallbackProvider string `mapstructure:"fallback_provider" yaml:"fallback_provider"`

	// CoverageThreshold is the fraction of the document that pattern
	// sections must cover for the fallback to be skipped.
	CoverageThreshold float64 `mapstructure:"coverage_threshold" yaml:"coverage_threshold"`

	// MaxTextChars bounds both the text sent to the fallback provider and
	// the catch-all section length.
	MaxTextChars int `mapstructure:"max_text_chars" yaml:"max_text_chars"`
}

// BatchConfig tunes directory batch processing.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text, json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Providers: map[string]ProviderConfig{
			"openai": {
				Model:          "gpt-4o-mini",
				APIKey:         "${OPENAI_API_KEY}",
				MaxRetries:     3,
				TimeoutSeconds: 120,
			},
			"gemini": {
				Model:          "gemini-1.5-flash",
				APIKey:         "${GEMINI_API_KEY}",
				MaxRetries:     3,
				TimeoutSeconds: 120,
			},
		},
		Extraction: ExtractionConfig{
			FallbackProvider:  "openai",
			CoverageThreshold: 0.90,
			MaxTextChars:      120000,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

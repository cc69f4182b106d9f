package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oikeuslab/precedent/internal/extract"
	"github.com/oikeuslab/precedent/internal/extract/fallback"
	"github.com/oikeuslab/precedent/internal/extract/pattern"
	"github.com/oikeuslab/precedent/internal/providers"
	"github.com/oikeuslab/precedent/internal/types"
)

var (
	extractCaseID   string
	extractAnalysis bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a structured case record from a decision document",
	Long: `Extract reads the full text of a KKO decision from a file (or stdin when
the file is "-") and prints the structured case record.

The pattern layer runs first; when its sections cover too little of the
document, the configured model provider re-segments the text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(args[0])
		if err != nil {
			return err
		}

		extractor, closeFn, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		rec := extractor.Extract(cmd.Context(), text, extractCaseID)
		if rec == nil {
			return fmt.Errorf("document is empty")
		}

		if extractAnalysis {
			return render(cmd.OutOrStdout(), struct {
				Record   *types.CaseRecord    `json:"record" yaml:"record"`
				Analysis types.RulingAnalysis `json:"analysis" yaml:"analysis"`
			}{rec, pattern.AnalyzeRuling(text)})
		}
		return render(cmd.OutOrStdout(), rec)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractCaseID, "case-id", "", "case identifier (e.g. KKO:2024:15); derived from the document when omitted")
	extractCmd.Flags().BoolVar(&extractAnalysis, "analysis", false, "include ruling analysis excerpts in the output")
}

func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// newExtractor wires the hybrid extractor from the loaded configuration. The
// returned close function releases the provider client, if any.
func newExtractor(cmd *cobra.Command) (*extract.Extractor, func(), error) {
	cfg := cfgManager.Get()

	client, err := providers.NewClient(cmd.Context(), cfg.ToProviderSettings())
	if err != nil {
		return nil, nil, fmt.Errorf("building fallback provider: %w", err)
	}
	closeFn := func() {
		if closer, ok := client.(io.Closer); ok {
			closer.Close()
		}
	}

	opts := []extract.Option{
		extract.WithCoverageThreshold(cfg.Extraction.CoverageThreshold),
		extract.WithMaxSectionChars(cfg.Extraction.MaxTextChars),
	}
	if client != nil {
		opts = append(opts, extract.WithFallback(fallback.NewSectionExtractor(
			client,
			fallback.WithMaxTextChars(cfg.Extraction.MaxTextChars),
		)))
	}
	return extract.New(opts...), closeFn, nil
}

// render writes v to w in the selected output format.
func render(w io.Writer, v any) error {
	if strings.EqualFold(outputFormat, "yaml") {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

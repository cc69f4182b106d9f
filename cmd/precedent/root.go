package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oikeuslab/precedent/internal/config"
	"github.com/oikeuslab/precedent/version"
)

var (
	cfgFile      string
	outputFormat string

	cfgManager *config.Manager
)

var rootCmd = &cobra.Command{
	Use:   "precedent",
	Short: "Structured extraction of Finnish Supreme Court precedents",
	Long: `Precedent extracts structured case records from Finnish Supreme Court (KKO)
decision documents.

The pipeline includes:
  - Pattern-based extraction of metadata, sections, and citations
  - Model-backed section re-segmentation when pattern coverage is low
  - Multilingual legal term expansion for cross-lingual search
  - Batch processing of decision directories`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.precedent/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Local .env keeps API keys out of shell profiles; missing file is fine.
		_ = godotenv.Load()

		var err error
		cfgManager, err = config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		setupLogging(cfgManager.Get().Logging)
		return nil
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(glossaryCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(cfg config.LoggingConfig) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

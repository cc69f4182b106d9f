package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/oikeuslab/precedent/internal/extract"
)

var (
	batchOutDir  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract case records from every .txt document in a directory",
	Long: `Batch walks a directory of decision documents (.txt files), extracts a
case record from each, and writes one .json file per document to the output
directory.

A case identifier like "KKO_2024_15" in the file name is used for the record;
otherwise the identifier is derived from the document text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		outDir := batchOutDir
		if outDir == "" {
			outDir = dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("no .txt documents in %s", dir)
		}

		extractor, closeFn, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		workers := batchWorkers
		if workers <= 0 {
			workers = cfgManager.Get().Batch.Workers
		}
		if workers <= 0 {
			workers = 1
		}

		ctx := cmd.Context()
		jobs := make(chan string)
		var wg sync.WaitGroup
		var mu sync.Mutex
		done, failed := 0, 0

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for path := range jobs {
					if err := processDocument(ctx, extractor, path, outDir); err != nil {
						slog.Error("document failed", "path", path, "error", err)
						mu.Lock()
						failed++
						mu.Unlock()
						continue
					}
					mu.Lock()
					done++
					mu.Unlock()
				}
			}()
		}

	feed:
		for _, path := range files {
			select {
			case jobs <- path:
			case <-ctx.Done():
				break feed
			}
		}
		close(jobs)
		wg.Wait()

		slog.Info("batch finished", "processed", done, "failed", failed, "total", len(files))
		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed", failed, len(files))
		}
		return ctx.Err()
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchOutDir, "out", "", "output directory (default: alongside the inputs)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent workers (default: from config)")
}

func processDocument(ctx context.Context, extractor *extract.Extractor, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".txt")
	rec := extractor.Extract(ctx, string(data), caseIDFromFilename(stem))
	if rec == nil {
		return fmt.Errorf("document is empty")
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	target := filepath.Join(outDir, stem+".json")
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// caseIDFromFilename recovers an identifier from names like "KKO_2024_15" or
// "KKO-2024-15". Anything else is left for the document head to resolve.
func caseIDFromFilename(stem string) string {
	normalized := strings.NewReplacer("_", ":", "-", ":").Replace(stem)
	if reFileCaseID.MatchString(normalized) {
		return strings.ToUpper(normalized)
	}
	return ""
}

var reFileCaseID = regexp.MustCompile(`(?i)^KKO:\d{4}:\d+$`)

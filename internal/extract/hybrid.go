// Package extract orchestrates structured extraction of KKO precedents:
// pattern matching first, a model-backed re-segmentation when pattern
// coverage falls short. The output contract holds on every path: a returned
// record always has at least one non-blank section.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oikeuslab/precedent/internal/extract/fallback"
	"github.com/oikeuslab/precedent/internal/extract/pattern"
	"github.com/oikeuslab/precedent/internal/types"
)

// Extractor runs the hybrid extraction pipeline.
type Extractor struct {
	fallback  *fallback.SectionExtractor
	threshold float64
	maxChars  int
	logger    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback attaches the model-backed section extractor. Without one,
// insufficient pattern results degrade to a catch-all section.
func WithFallback(f *fallback.SectionExtractor) Option {
	return func(e *Extractor) { e.fallback = f }
}

// WithCoverageThreshold overrides the sufficiency threshold.
func WithCoverageThreshold(t float64) Option {
	return func(e *Extractor) {
		if t > 0 && t <= 1 {
			e.threshold = t
		}
	}
}

// WithMaxSectionChars bounds the catch-all section length.
func WithMaxSectionChars(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxChars = n
		}
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) { e.logger = logger }
}

// New creates an Extractor with the default coverage threshold and no
// fallback provider.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		threshold: DefaultCoverageThreshold,
		maxChars:  fallback.DefaultMaxTextChars,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds a CaseRecord from the full decision text. Returns nil only
// for blank input; every non-nil record has at least one non-blank section.
func (e *Extractor) Extract(ctx context.Context, fullText, caseID string) *types.CaseRecord {
	if strings.TrimSpace(fullText) == "" {
		e.logger.Warn("extraction skipped: empty text", "case_id", caseID)
		return nil
	}

	text := strings.TrimSpace(fullText)
	if caseID == "" {
		caseID = pattern.SentinelCaseID
	}

	rec := pattern.Extract(fullText, caseID)

	if rec != nil && sufficient(rec.Sections, text, e.threshold) {
		rec.Sections = normalizeSections(rec.Sections, text, e.maxChars)
		e.logger.Info("pattern extraction sufficient",
			"case_id", caseID, "sections", len(rec.Sections))
		return rec
	}

	out := &types.CaseRecord{}
	if rec != nil {
		out.Metadata = rec.Metadata
		out.LowerCourts = rec.LowerCourts
		out.References = rec.References
	} else {
		out.Metadata = minimalMetadata(caseID)
		out.References = types.References{
			CitedCases:       []string{},
			CitedEUCases:     []string{},
			CitedLaws:        []string{},
			CitedRegulations: []types.CitedRegulation{},
		}
	}

	e.logger.Info("pattern extraction insufficient, using fallback", "case_id", caseID)
	var sections []types.Section
	if e.fallback != nil {
		sections = e.fallback.Sections(ctx, fullText, caseID)
	}
	out.Sections = normalizeSections(sections, text, e.maxChars)
	e.logger.Info("fallback path finished",
		"case_id", caseID, "sections", len(out.Sections))
	return out
}

// minimalMetadata synthesizes well-formed metadata from nothing but the case
// identifier, so a record is publishable even when the header yields no
// matches.
func minimalMetadata(caseID string) types.CaseMetadata {
	parts := strings.Split(strings.ReplaceAll(caseID, " ", ":"), ":")
	year := "0000"
	if len(parts) >= 2 {
		year = parts[1]
	}
	ordinal := "0"
	if len(parts) >= 3 {
		ordinal = parts[len(parts)-1]
	}
	return types.CaseMetadata{
		CaseID:      caseID,
		ECLI:        fmt.Sprintf("ECLI:FI:KKO:%s:%s", year, ordinal),
		DateOfIssue: year + "-01-01",
		Outcome:     types.OutcomeUnknown,
		Judges:      []string{"Unknown"},
		Rapporteur:  "Unknown",
		Keywords:    []string{},
		Languages:   []string{"Finnish", "Swedish"},
	}
}

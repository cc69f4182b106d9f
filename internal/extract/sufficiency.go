package extract

import (
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// DefaultCoverageThreshold is the fraction of the document that pattern
// sections must cover before the fallback extractor is skipped.
const DefaultCoverageThreshold = 0.90

// sufficient reports whether pattern-extracted sections cover enough of the
// document to stand on their own: at least one section, combined content at
// least threshold times the document length, and no blank section.
func sufficient(sections []types.Section, fullText string, threshold float64) bool {
	if len(sections) == 0 {
		return false
	}
	total := 0
	for _, s := range sections {
		total += len(s.Content)
	}
	textLen := len(strings.TrimSpace(fullText))
	if textLen == 0 {
		textLen = 1
	}
	if float64(total) < threshold*float64(textLen) {
		return false
	}
	for _, s := range sections {
		if strings.TrimSpace(s.Content) == "" {
			return false
		}
	}
	return true
}

package extract

import (
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// normalizeSections enforces the output contract on a section list: blank
// content is dropped, types outside the public vocabulary collapse to "other",
// blank titles become "Section", and an empty result is replaced by a single
// catch-all section holding the document text.
func normalizeSections(sections []types.Section, fullText string, maxChars int) []types.Section {
	out := make([]types.Section, 0, len(sections))
	for _, s := range sections {
		content := strings.TrimSpace(s.Content)
		if content == "" {
			continue
		}
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = "Section"
		}
		out = append(out, types.Section{
			Type:    types.CanonicalSectionType(s.Type),
			Title:   title,
			Content: content,
		})
	}
	if len(out) == 0 {
		text := strings.TrimSpace(fullText)
		if text != "" {
			if maxChars > 0 && len(text) > maxChars {
				text = text[:maxChars]
			}
			out = append(out, types.Section{
				Type:    types.SectionOther,
				Title:   "Full text",
				Content: text,
			})
		}
	}
	return out
}

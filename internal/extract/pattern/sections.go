package pattern

import (
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// maxCatchAllChars caps the single catch-all section emitted when no heading
// matches at all.
const maxCatchAllChars = 50000

// splitSections matches the prioritized heading list against the full text.
// Each matched heading opens a section running from just after the heading to
// the minimum start offset among the matches of every other heading pattern
// found after it. Heading order in the document does not always follow the
// priority list's order, so the boundary search covers all other patterns,
// not just later list entries. Sections with empty trimmed content are
// dropped.
func splitSections(text string) []types.Section {
	sections := make([]types.Section, 0, len(sectionHeadings))
	for i, heading := range sectionHeadings {
		loc := heading.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		start, headingEnd := loc[0], loc[1]
		title := strings.TrimSpace(text[start:headingEnd])

		end := len(text)
		for j, other := range sectionHeadings {
			if j == i {
				continue
			}
			rest := text[start+1:]
			if otherLoc := other.re.FindStringIndex(rest); otherLoc != nil {
				if candidate := start + 1 + otherLoc[0]; candidate < end {
					end = candidate
				}
			}
		}
		if end < headingEnd {
			end = headingEnd
		}

		content := strings.TrimSpace(text[headingEnd:end])
		if content == "" {
			continue
		}
		sections = append(sections, types.Section{Type: heading.typ, Title: title, Content: content})
	}
	return sections
}

// buildSections runs the splitter and, when it yields nothing, cascades to a
// narrower reasoning/judgment pair split and finally to a single catch-all
// section. Non-empty input therefore always produces at least one section.
func buildSections(text string) []types.Section {
	sections := splitSections(text)
	if len(sections) > 0 {
		return sections
	}

	reasoningLoc := reReasoningStart.FindStringIndex(text)
	judgmentLoc := reJudgmentStart.FindStringIndex(text)
	if reasoningLoc != nil && judgmentLoc != nil {
		reasoning := ""
		if reasoningLoc[1] < judgmentLoc[0] {
			reasoning = strings.TrimSpace(text[reasoningLoc[1]:judgmentLoc[0]])
		}
		return []types.Section{
			{
				Type:    types.SectionReasoning,
				Title:   "Reasoning",
				Content: reasoning,
			},
			{
				Type:    types.SectionJudgment,
				Title:   "Judgment",
				Content: strings.TrimSpace(text[judgmentLoc[1]:]),
			},
		}
	}

	content := text
	if len(content) > maxCatchAllChars {
		content = content[:maxCatchAllChars]
	}
	return []types.Section{{Type: types.SectionOther, Title: "Full text", Content: content}}
}

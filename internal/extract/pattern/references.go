package pattern

import (
	"fmt"
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// Caps bounding reference output on citation-heavy documents.
const (
	maxCitedLaws        = 100
	maxCitedRegulations = 30
)

// regulationArticleWindow is the span around a regulation mention searched for
// a nearby "Article N" reference.
const (
	regulationArticleBefore = 50
	regulationArticleAfter  = 100
)

// extractReferences collects case, EU case, statute and EU regulation
// citations via independent global scans. Each list is deduplicated by first
// occurrence and capped.
func extractReferences(text string) types.References {
	citedCases := []string{}
	for _, m := range reKKOCite.FindAllStringSubmatch(text, -1) {
		citedCases = append(citedCases, fmt.Sprintf("KKO %s:%s", m[1], m[2]))
	}
	citedCases = dedupe(citedCases, len(citedCases))

	citedEU := []string{}
	for _, m := range reEUCaseBare.FindAllStringSubmatch(text, -1) {
		citedEU = append(citedEU, m[1])
	}
	for _, m := range reEUCase.FindAllStringSubmatch(text, -1) {
		citedEU = append(citedEU, m[1])
	}
	citedEU = dedupe(citedEU, len(citedEU))

	citedLaws := []string{}
	for _, m := range rePenalCode.FindAllStringSubmatch(text, -1) {
		citedLaws = append(citedLaws, fmt.Sprintf("RL Chapter %s Section %s", m[1], m[2]))
	}
	for _, m := range reLawChapter.FindAllStringSubmatch(text, -1) {
		citedLaws = append(citedLaws, fmt.Sprintf("Chapter %s Section %s", m[1], m[2]))
	}
	citedLaws = dedupe(citedLaws, maxCitedLaws)

	citedRegulations := []types.CitedRegulation{}
	seenRegulations := make(map[string]struct{})
	for _, loc := range reEURegulation.FindAllStringSubmatchIndex(text, -1) {
		name := strings.TrimSpace(groupAt(text, loc, 1))
		if name == "" {
			name = strings.TrimSpace(groupAt(text, loc, 2))
		}
		if len(name) <= 10 {
			continue
		}
		if _, ok := seenRegulations[name]; ok {
			continue
		}
		seenRegulations[name] = struct{}{}
		reg := types.CitedRegulation{Name: name}
		windowStart := loc[0] - regulationArticleBefore
		if windowStart < 0 {
			windowStart = 0
		}
		windowEnd := loc[1] + regulationArticleAfter
		if windowEnd > len(text) {
			windowEnd = len(text)
		}
		if m := reEURegulationArticle.FindStringSubmatch(text[windowStart:windowEnd]); m != nil {
			article := "Article " + m[1]
			reg.Article = &article
		}
		citedRegulations = append(citedRegulations, reg)
		if len(citedRegulations) == maxCitedRegulations {
			break
		}
	}

	return types.References{
		CitedCases:       citedCases,
		CitedEUCases:     citedEU,
		CitedLaws:        citedLaws,
		CitedRegulations: citedRegulations,
	}
}

// dedupe keeps first occurrences, preserving order, up to max entries.
func dedupe(values []string, max int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == max {
			break
		}
	}
	return out
}

// groupAt extracts capture group n from a FindAllStringSubmatchIndex entry,
// returning empty when the group did not participate in the match.
func groupAt(text string, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 || end < 0 {
		return ""
	}
	return text[start:end]
}

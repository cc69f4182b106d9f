package pattern

import (
	"regexp"
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// Bounds for the analysis excerpts, keeping payloads small on long decisions.
const (
	maxExceptionsChars        = 2000
	maxDistinctiveFactsChars  = 1500
	maxRulingInstructionChars = 600
	maxAppliedProvisionsChars = 800
	maxReasoningExcerptChars  = 1500
	maxAppliedProvisionRefs   = 30
)

var (
	reAbstractBlock = regexp.MustCompile(`(?:ECLI[^\n]*\n+|Diaarinumero\s*\n[^\n]+\n+|Kopioi ECLI-linkki\s*\n+)((?:[^\n]+\n){1,6})`)
	reMetadataLine  = regexp.MustCompile(`^(?:\d{4}$|ECLI|Tapausvuosi|Antopäivä|Diaarinumero|Taltio|Kieliversiot)`)
	reParagraphGap  = regexp.MustCompile(`\n\s*\n`)
	reOldReasoning  = regexp.MustCompile(`(?im)^(?:KORKEIN\s+OIKEUS|Korkeimman\s+oikeuden\s+ratkaisu)\s*$`)
)

// AnalyzeRuling derives bounded analysis excerpts from the full decision text:
// stated exceptions to the holding, decisive facts, the operative ruling
// instruction, the provisions applied in the reasoning, and a reasoning
// excerpt. All fields degrade independently to empty strings.
func AnalyzeRuling(text string) types.RulingAnalysis {
	if strings.TrimSpace(text) == "" {
		return types.RulingAnalysis{}
	}
	return types.RulingAnalysis{
		Exceptions:        collectPhrases(reExceptions, text, 20, maxExceptionsChars),
		DistinctiveFacts:  collectPhrases(reDistinctiveFacts, text, 15, maxDistinctiveFactsChars),
		RulingInstruction: rulingInstruction(text),
		AppliedProvisions: appliedProvisions(text),
		ReasoningExcerpt:  reasoningExcerpt(text, maxReasoningExcerptChars),
	}
}

// collectPhrases gathers matched phrases joined by " | ", skipping duplicates
// and phrases shorter than minLen, stopping at the total budget.
func collectPhrases(re *regexp.Regexp, text string, minLen, budget int) string {
	collected := []string{}
	total := 0
	for _, m := range re.FindAllString(text, -1) {
		phrase := strings.TrimSpace(m)
		if len(phrase) < minLen || contains(collected, phrase) {
			continue
		}
		if total+len(phrase)+3 > budget {
			break
		}
		collected = append(collected, phrase)
		total += len(phrase) + 3
	}
	return strings.Join(collected, " | ")
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// sectionBlock returns the content of the first heading of the given type,
// bounded by the nearest later match of any other heading.
func sectionBlock(text string, typ types.SectionType) string {
	for _, s := range splitSections(text) {
		if s.Type == typ {
			return s.Content
		}
	}
	return ""
}

// reasoningExcerpt returns the start of the reasoning section, collapsed to
// single spaces. Older decisions without a Perustelut heading fall back to the
// KORKEIN OIKEUS block ended by the dissent or judges line.
func reasoningExcerpt(text string, maxChars int) string {
	if block := sectionBlock(text, types.SectionReasoning); block != "" {
		return clampCollapsed(block, maxChars)
	}

	for _, anchor := range fallbackReasoningAnchors {
		loc := anchor.FindStringIndex(text)
		if loc == nil {
			continue
		}
		rest := text[loc[1]:]
		if endLoc := reReasoningEnd.FindStringIndex(rest); endLoc != nil {
			rest = rest[:endLoc[0]]
		}
		excerpt := clampCollapsed(rest, maxChars)
		if len(excerpt) > 40 {
			return excerpt
		}
	}
	return ""
}

// rulingInstruction extracts the first part of the judgment block. Older
// decisions fall back to the abstract paragraph after the metadata block, then
// to the first substantive paragraph after the keywords.
func rulingInstruction(text string) string {
	if block := sectionBlock(text, types.SectionJudgment); block != "" {
		return clampCollapsed(block, maxRulingInstructionChars)
	}

	if m := reAbstractBlock.FindStringSubmatch(text); m != nil {
		candidate := collapseWhitespace(strings.TrimSpace(m[1]))
		if len(candidate) > 30 {
			return clamp(candidate, maxRulingInstructionChars)
		}
	}

	if kwEnd := reKeywordsEnd.FindStringIndex(text); kwEnd != nil {
		after := text[kwEnd[1]:]
		for _, para := range reParagraphGap.Split(after, 6) {
			clean := collapseWhitespace(strings.TrimSpace(para))
			if len(clean) > 40 && !reMetadataLine.MatchString(clean) {
				return clamp(clean, maxRulingInstructionChars)
			}
		}
	}
	return ""
}

// appliedProvisions scans the reasoning block for statute references and
// returns them comma-joined, deduplicated, capped.
func appliedProvisions(text string) string {
	block := sectionBlock(text, types.SectionReasoning)
	if block == "" {
		if loc := reOldReasoning.FindStringIndex(text); loc != nil {
			block = text[loc[1]:]
		} else {
			block = text
		}
	}
	refs := dedupe(scanProvisionRefs(block), maxAppliedProvisionRefs)
	return clamp(strings.Join(refs, ", "), maxAppliedProvisionsChars)
}

// scanProvisionRefs runs every provision pattern against the block and
// returns raw reference strings.
func scanProvisionRefs(block string) []string {
	refs := []string{}
	for _, m := range rePenalCode.FindAllStringSubmatch(block, -1) {
		refs = append(refs, "RL "+m[1]+" luku "+m[2]+" §")
	}
	for _, m := range reLawChapter.FindAllStringSubmatch(block, -1) {
		refs = append(refs, "Luku "+m[1]+" § "+m[2])
	}
	for _, m := range reTSL.FindAllStringSubmatch(block, -1) {
		refs = append(refs, "TSL "+m[1]+" luku "+m[2]+" §")
	}
	for _, m := range reOKL.FindAllStringSubmatch(block, -1) {
		refs = append(refs, "OK "+m[1]+" luku "+m[2]+" §")
	}
	for _, m := range reNamedLawSection.FindAllStringSubmatch(block, -1) {
		if m[2] != "" {
			refs = append(refs, m[1]+" "+m[2]+" luku "+m[3]+" §")
		} else {
			refs = append(refs, m[1]+" "+m[3]+" §")
		}
	}
	for _, m := range reFISectionRef.FindAllStringSubmatch(block, -1) {
		refs = append(refs, m[1]+" luku "+m[2]+" §")
	}
	for _, m := range reFILawSection.FindAllStringSubmatch(block, -1) {
		refs = append(refs, "lain "+m[1]+" §")
	}
	for _, m := range reHERef.FindAllStringSubmatch(block, -1) {
		refs = append(refs, "HE "+m[1])
	}
	return refs
}

func collapseWhitespace(s string) string {
	return reWhitespaceRun.ReplaceAllString(s, " ")
}

func clampCollapsed(s string, maxChars int) string {
	return clamp(collapseWhitespace(strings.TrimSpace(s)), maxChars)
}

func clamp(s string, maxChars int) string {
	if len(s) > maxChars {
		return s[:maxChars]
	}
	return s
}

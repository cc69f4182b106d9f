package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// headerWindow bounds metadata matching to the top of the document so body
// citations cannot masquerade as header fields.
const headerWindow = 4000

// keywordBlockCap bounds the keyword block when no terminating label follows.
const keywordBlockCap = 800

// maxKeywords caps the keyword list on keyword-heavy documents.
const maxKeywords = 50

// rapporteurTail is how far from the end of the document the secondary
// rapporteur scan looks.
const rapporteurTail = 2000

var reFourDigitYear = regexp.MustCompile(`^\d{4}$`)

func extractMetadata(text, caseID string) types.CaseMetadata {
	header := text
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}

	caseYear := ""
	if m := reCaseYear.FindStringSubmatch(header); m != nil {
		caseYear = m[1]
	}

	ecli := ""
	if m := reECLI.FindStringSubmatch(header); m != nil {
		ecli = fmt.Sprintf("ECLI:FI:KKO:%s:%s", m[1], m[2])
	}
	if ecli == "" {
		ecli = ecliFromCaseID(caseID)
	}

	diaryNumber := ""
	if m := reDiaryNumber.FindStringSubmatch(header); m != nil {
		diaryNumber = strings.TrimSpace(m[1])
	}

	var volume *string
	if m := reVolume.FindStringSubmatch(header); m != nil {
		v := strings.TrimSpace(m[1])
		volume = &v
	}

	dateOfIssue := extractDateOfIssue(text, caseYear)
	if dateOfIssue == "" {
		// Year from header or from the case id (e.g. KKO:1959:II-110), so we
		// never emit a dangling "-01-01".
		effectiveYear := strings.TrimSpace(caseYear)
		if !reFourDigitYear.MatchString(effectiveYear) {
			effectiveYear = yearFromCaseID(caseID)
		}
		if effectiveYear != "" {
			dateOfIssue = effectiveYear + "-01-01"
		}
	}

	keywords := extractKeywords(text)
	judges, rapporteur := extractJudges(text)

	outcome := classifyOutcome(text)
	hasDissent := sectionHeadings[len(sectionHeadings)-1].re.MatchString(text)

	// Prefer an explicit vote in the text over one inferred from the judges
	// list and the presence of a dissent section.
	total, dissenting, voteStrength := extractVote(text)
	if voteStrength == "" {
		total, dissenting, voteStrength = voteFromJudgeCount(judges, hasDissent)
	}

	if len(judges) == 0 {
		judges = []string{"Unknown"}
	}
	if rapporteur == "" {
		rapporteur = "Unknown"
	}

	return types.CaseMetadata{
		CaseID:           caseID,
		ECLI:             ecli,
		DateOfIssue:      dateOfIssue,
		DiaryNumber:      diaryNumber,
		Volume:           volume,
		Outcome:          outcome,
		Judges:           judges,
		Rapporteur:       rapporteur,
		Keywords:         keywords,
		Languages:        []string{"Finnish", "Swedish"},
		JudgesTotal:      total,
		JudgesDissenting: dissenting,
		VoteStrength:     voteStrength,
	}
}

// extractDateOfIssue resolves the issue date from the header block, trying the
// month-name format, then D.M.YYYY, then D.M.YY with 2-digit-year expansion.
// Returns an ISO date string or empty.
func extractDateOfIssue(text, caseYear string) string {
	header := text
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}

	if m := reDateMonthName.FindStringSubmatch(header); m != nil {
		if d := normalizeMonthNameDate(m[1]); d != "" {
			return d
		}
	}
	if m := reDateDMY.FindStringSubmatch(header); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	if m := reDateDMY2Digit.FindStringSubmatch(header); m != nil {
		return isoDate(expandTwoDigitYear(m[3]), m[2], m[1])
	}
	if y := strings.TrimSpace(caseYear); reFourDigitYear.MatchString(y) {
		return y + "-01-01"
	}
	return ""
}

// normalizeMonthNameDate turns "January 7, 2026" into "2026-01-07".
func normalizeMonthNameDate(raw string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(parts) < 3 {
		return ""
	}
	month, ok := monthNumbers[strings.ToLower(parts[0])]
	if !ok {
		month = 1
	}
	day, err := strconv.Atoi(strings.Trim(parts[1], ","))
	if err != nil {
		return ""
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

func isoDate(year, month, day string) string {
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("%d-%02d-%02d", y, m, d)
}

// expandTwoDigitYear maps 00-30 to the 2000s and 31-99 to the 1900s.
func expandTwoDigitYear(yy string) string {
	n, err := strconv.Atoi(yy)
	if err != nil {
		return ""
	}
	if n <= 30 {
		return strconv.Itoa(2000 + n)
	}
	return strconv.Itoa(1900 + n)
}

// yearFromCaseID derives a 4-digit year from tokens of the case id
// (e.g. KKO:1959:II-110 or KKO:1959-II-110 -> 1959). Empty if unparseable.
func yearFromCaseID(caseID string) string {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return ""
	}
	parts := strings.FieldsFunc(caseID, func(r rune) bool {
		return r == ':' || r == '-'
	})
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if reFourDigitYear.MatchString(p) {
			return p
		}
	}
	return ""
}

// ecliFromCaseID reconstructs an ECLI code from the trailing year/number
// tokens of the case id. Empty when the id has no colon-separated tokens.
func ecliFromCaseID(caseID string) string {
	if !strings.Contains(caseID, ":") {
		return ""
	}
	parts := strings.Split(caseID, ":")
	if len(parts) < 2 {
		return ""
	}
	year := parts[len(parts)-2]
	number := parts[len(parts)-1]
	return fmt.Sprintf("ECLI:FI:KKO:%s:%s", year, number)
}

// extractKeywords collects the non-empty lines strictly between the keywords
// label and the next recognized metadata label.
func extractKeywords(text string) []string {
	start := reKeywordsStart.FindStringIndex(text)
	if start == nil {
		return []string{}
	}
	rest := text[start[1]:]
	block := rest
	if end := reKeywordsEnd.FindStringIndex(rest); end != nil {
		block = rest[:end[0]]
	} else if len(block) > keywordBlockCap {
		block = block[:keywordBlockCap]
	}

	keywords := make([]string, 0, 8)
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		keywords = append(keywords, line)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// extractJudges pulls the resolving judges and rapporteur from the sentence at
// the end of the document. A secondary scan picks up a bare "Rapporteur" line
// in the final rapporteurTail characters.
func extractJudges(text string) ([]string, string) {
	judges := []string{}
	rapporteur := ""

	if m := reJudgesLine.FindStringSubmatch(text); m != nil {
		rapporteur = strings.TrimSpace(m[2])
		for _, part := range reJudgeSep.Split(m[1], -1) {
			name := cleanJudgeName(part)
			if len(name) > 2 {
				judges = append(judges, name)
			}
		}
	}

	if rapporteur == "" {
		tail := text
		if len(tail) > rapporteurTail {
			tail = tail[len(tail)-rapporteurTail:]
		}
		if m := reRapporteurAlt.FindStringSubmatch(tail); m != nil {
			rapporteur = strings.TrimSpace(m[1])
		}
	}

	return judges, rapporteur
}

// cleanJudgeName strips honorific/role words that ride along in the judges
// sentence.
func cleanJudgeName(raw string) string {
	name := raw
	for _, role := range []string{"legal advisors", "Legal Counselors", "President"} {
		name = strings.ReplaceAll(name, role, "")
	}
	return strings.TrimSpace(name)
}

// classifyOutcome scans the full text for outcome-indicating phrases in either
// language. First match wins; the default is dismissal.
func classifyOutcome(text string) types.DecisionOutcome {
	if reOutcomeAccepted.MatchString(text) {
		return types.OutcomeAccepted
	}
	if reOutcomeRemanded.MatchString(text) {
		return types.OutcomeRemanded
	}
	return types.OutcomeDismissed
}

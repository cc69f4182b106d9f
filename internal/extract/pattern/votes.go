package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxJudgeBlockChars guards against a runaway capture when the judges sentence
// never terminates.
const maxJudgeBlockChars = 2000

// extractVote determines the vote composition from the full text. It tries an
// explicit vote line first ("Äänestys 6-1", "Vote 4-2-1"), then the Finnish
// judges sentence with "(eri mieltä)" markers, then the old-format
// "Ratkaisuun osallistuneet" line. Returns (total, dissenting, voteStrength);
// voteStrength is empty when nothing matched.
func extractVote(text string) (int, int, string) {
	if strings.TrimSpace(text) == "" {
		return 0, 0, ""
	}

	for _, re := range []*regexp.Regexp{reVoteFinnish, reVoteEnglish} {
		if m := re.FindStringSubmatch(text); m != nil {
			n1, _ := strconv.Atoi(m[1])
			n2, _ := strconv.Atoi(m[2])
			n3 := 0
			if m[3] != "" {
				n3, _ = strconv.Atoi(m[3])
			}
			if n3 > 0 {
				return n1 + n2 + n3, n2, fmt.Sprintf("%d-%d-%d", n1, n2, n3)
			}
			return n1 + n2, n2, fmt.Sprintf("%d-%d", n1, n2)
		}
	}

	if total, dissenting, vote := voteFromFinnishJudgesLine(text); vote != "" {
		return total, dissenting, vote
	}
	return voteFromOldJudgesLine(text)
}

// voteFromFinnishJudgesLine counts judges in "Asian ovat ratkaisseet
// oikeusneuvokset X, Y (eri mieltä), Z ja W." and treats each "(eri mieltä)"
// marker as one dissent.
func voteFromFinnishJudgesLine(text string) (int, int, string) {
	m := reJudgesLineFinnish.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, ""
	}
	block := strings.TrimSpace(m[1])
	if block == "" || len(block) > maxJudgeBlockChars {
		return 0, 0, ""
	}

	total, dissenting := 0, 0
	for _, seg := range reFinnishJudgeSep.Split(block, -1) {
		seg = strings.TrimSpace(seg)
		if len(seg) < 4 {
			continue
		}
		if reJudgeRoleWord.MatchString(seg) {
			continue
		}
		total++
		if reEriMielta.MatchString(seg) {
			dissenting++
		}
	}
	if total == 0 {
		return 0, 0, ""
	}
	return total, dissenting, formatVote(total, dissenting)
}

// voteFromOldJudgesLine handles the old format "Ratkaisuun osallistuneet:
// oikeusneuvokset X, Y ja Z", inferring dissent counts from the dissenting
// opinion blocks further down.
func voteFromOldJudgesLine(text string) (int, int, string) {
	m := reOldJudgesLine.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, ""
	}
	block := strings.TrimSpace(m[1])
	if block == "" || len(block) > maxJudgeBlockChars {
		return 0, 0, ""
	}

	total := 0
	for _, seg := range reOldJudgeSep.Split(block, -1) {
		seg = strings.TrimSpace(seg)
		if len(seg) < 3 {
			continue
		}
		total++
	}
	if total == 0 {
		return 0, 0, ""
	}

	dissenting := 0
	if reDissentHeading.MatchString(text) {
		dissenting = len(reDissentSections.FindAllString(text, -1))
		if dissenting < 1 {
			dissenting = 1
		}
	}
	if total-dissenting < 1 {
		dissenting = 0
	}
	return total, dissenting, formatVote(total, dissenting)
}

// voteFromJudgeCount infers the vote from the extracted judges list when no
// explicit vote line exists: a dissent section implies one dissenting judge.
func voteFromJudgeCount(judges []string, hasDissent bool) (int, int, string) {
	total := len(judges)
	if total == 0 {
		return 0, 0, ""
	}
	dissenting := 0
	if hasDissent {
		dissenting = 1
	}
	return total, dissenting, formatVote(total, dissenting)
}

func formatVote(total, dissenting int) string {
	if dissenting == 0 {
		return fmt.Sprintf("%d-0", total)
	}
	return fmt.Sprintf("%d-%d", total-dissenting, dissenting)
}

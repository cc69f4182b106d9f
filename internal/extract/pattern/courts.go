package pattern

import (
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// extractLowerCourts locates the district-court and appeal-court decisions.
// First match wins per level; a missing match leaves the field nil.
func extractLowerCourts(text string) types.LowerCourts {
	var lc types.LowerCourts

	if m := reDistrictCourt.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name == "" {
			name = "District Court"
		}
		date := m[2]
		if len(date) <= 10 {
			date = strings.ReplaceAll(date, ".", "-")
		}
		lc.DistrictCourt = &types.CourtDecision{
			Name:   name,
			Date:   date,
			Number: m[3],
		}
	}

	if m := reAppealCourt.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name == "" {
			name = "Court of Appeal"
		}
		lc.AppealCourt = &types.CourtDecision{
			Name:   name,
			Date:   m[2],
			Number: strings.TrimSpace(m[3]),
		}
	}

	return lc
}

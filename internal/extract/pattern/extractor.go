package pattern

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oikeuslab/precedent/internal/types"
)

// SentinelCaseID is assigned when no case identifier is supplied and none can
// be derived from the document head.
const SentinelCaseID = "KKO:0000:0"

// caseIDWindow bounds the scan for a case identifier when the caller did not
// supply one.
const caseIDWindow = 500

// Extract builds a CaseRecord from the full text of a KKO precedent using
// pattern matching only. A blank caseID is derived from the document head,
// defaulting to SentinelCaseID. Returns nil for blank input or when an
// unexpected internal fault occurs; faults are logged, never propagated.
func Extract(fullText, caseID string) (rec *types.CaseRecord) {
	if strings.TrimSpace(fullText) == "" {
		slog.Warn("pattern extraction skipped: empty text", "case_id", caseID)
		return nil
	}

	text := strings.TrimSpace(fullText)
	caseID = resolveCaseID(text, caseID)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("pattern extraction failed", "case_id", caseID, "error", fmt.Sprint(r))
			rec = nil
		}
	}()

	return &types.CaseRecord{
		Metadata:    extractMetadata(text, caseID),
		LowerCourts: extractLowerCourts(text),
		References:  extractReferences(text),
		Sections:    buildSections(text),
	}
}

// resolveCaseID returns the supplied id, or one derived from a case-ID pattern
// in the first caseIDWindow characters, or the sentinel.
func resolveCaseID(text, caseID string) string {
	if caseID != "" {
		return caseID
	}
	if strings.Contains(text, "KKO") {
		head := text
		if len(head) > caseIDWindow {
			head = head[:caseIDWindow]
		}
		if m := reCaseID.FindStringSubmatch(head); m != nil {
			return fmt.Sprintf("KKO:%s:%s", m[1], m[2])
		}
	}
	return SentinelCaseID
}

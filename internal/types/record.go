// Package types provides the shared structured-record types produced by every
// extractor. This package has no dependencies on other precedent packages to
// avoid import cycles.
package types

// SectionType classifies a section of a decision.
type SectionType string

// Public section types. Every record handed to a caller uses only these.
const (
	SectionLowerCourt  SectionType = "lower_court"
	SectionAppealCourt SectionType = "appeal_court"
	SectionBackground  SectionType = "background"
	SectionReasoning   SectionType = "reasoning"
	SectionJudgment    SectionType = "judgment"
	SectionOther       SectionType = "other"
)

// Internal section types used by the pattern splitter before normalization.
const (
	SectionSupremeDecision SectionType = "supreme_decision"
	SectionLegislation     SectionType = "legislation"
	SectionQuestion        SectionType = "question"
	SectionDissenting      SectionType = "dissenting"
)

// CanonicalSectionType maps the splitter's internal vocabulary onto the public
// one. It is total: internal subtypes and any unrecognized or blank type map
// to SectionOther.
func CanonicalSectionType(t SectionType) SectionType {
	switch t {
	case SectionLowerCourt, SectionAppealCourt, SectionBackground,
		SectionReasoning, SectionJudgment, SectionOther:
		return t
	default:
		return SectionOther
	}
}

// ParseSectionType converts a string from an external source (e.g. a model
// response) to a public SectionType. Unknown values become SectionOther.
func ParseSectionType(s string) SectionType {
	switch SectionType(s) {
	case SectionLowerCourt:
		return SectionLowerCourt
	case SectionAppealCourt:
		return SectionAppealCourt
	case SectionBackground:
		return SectionBackground
	case SectionReasoning:
		return SectionReasoning
	case SectionJudgment:
		return SectionJudgment
	default:
		return SectionOther
	}
}

// DecisionOutcome is the coarse disposition of the appeal.
type DecisionOutcome string

const (
	OutcomeDismissed DecisionOutcome = "appeal_dismissed"
	OutcomeAccepted  DecisionOutcome = "appeal_accepted"
	OutcomeRemanded  DecisionOutcome = "case_remanded"
	OutcomeUnknown   DecisionOutcome = "unknown"
)

// Section is a contiguous span of the decision text under one heading.
type Section struct {
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
}

// CourtDecision describes a lower-court decision referenced in the header or
// procedural history. Date is freeform: source dates are not always
// normalizable across a century of formats.
type CourtDecision struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	Number         string `json:"number"`
	ContentSummary string `json:"content_summary"`
}

// LowerCourts holds the first-instance and appellate decisions, either of
// which may be absent.
type LowerCourts struct {
	DistrictCourt *CourtDecision `json:"district_court"`
	AppealCourt   *CourtDecision `json:"appeal_court"`
}

// CitedRegulation pairs an EU regulation name with the article cited near it,
// if one was found.
type CitedRegulation struct {
	Name    string  `json:"name"`
	Article *string `json:"article"`
}

// References collects citations found anywhere in the decision body. Each list
// is deduplicated preserving first-seen order.
type References struct {
	CitedCases       []string          `json:"cited_cases"`
	CitedEUCases     []string          `json:"cited_eu_cases"`
	CitedLaws        []string          `json:"cited_laws"`
	CitedRegulations []CitedRegulation `json:"cited_regulations"`
}

// CaseMetadata is the header metadata of a decision.
type CaseMetadata struct {
	CaseID      string          `json:"case_id"`
	ECLI        string          `json:"ecli"`
	DateOfIssue string          `json:"date_of_issue"`
	DiaryNumber string          `json:"diary_number"`
	Volume      *string         `json:"volume"`
	Outcome     DecisionOutcome `json:"decision_outcome"`
	Judges      []string        `json:"judges"`
	Rapporteur  string          `json:"rapporteur"`
	Keywords    []string        `json:"keywords"`
	Languages   []string        `json:"languages"`

	// Vote composition, when derivable from an explicit vote line or the
	// judges sentence. Zero values mean "not determined".
	JudgesTotal      int    `json:"judges_total,omitempty"`
	JudgesDissenting int    `json:"judges_dissenting,omitempty"`
	VoteStrength     string `json:"vote_strength,omitempty"`
}

// CaseRecord is the output unit of extraction, immutable once produced.
type CaseRecord struct {
	Metadata    CaseMetadata `json:"metadata"`
	LowerCourts LowerCourts  `json:"lower_courts"`
	References  References   `json:"references"`
	Sections    []Section    `json:"sections"`
}

// RulingAnalysis carries bounded excerpts useful for downstream legal
// analysis: what was decisive, which provisions were applied, and any
// stated exceptions to the holding.
type RulingAnalysis struct {
	Exceptions        string `json:"exceptions"`
	DistinctiveFacts  string `json:"distinctive_facts"`
	RulingInstruction string `json:"ruling_instruction"`
	AppliedProvisions string `json:"applied_provisions"`
	ReasoningExcerpt  string `json:"reasoning_excerpt"`
}

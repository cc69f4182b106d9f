// Package pattern implements the regex-layer extractor for Finnish Supreme
// Court (KKO) precedents. It produces the same CaseRecord as the model-based
// fallback so the two are interchangeable for the orchestrator.
//
// The patterns cover roughly a century of document conventions in both
// Finnish and English header layouts.
package pattern

import (
	"regexp"

	"github.com/oikeuslab/precedent/internal/types"
)

// Header block patterns (English/Finnish).
var (
	reCaseID = regexp.MustCompile(`(?i)KKO\s*:\s*(\d{4})\s*:\s*(\d+)`)
	reECLI   = regexp.MustCompile(`(?i)ECLI\s*:\s*FI\s*:\s*KKO\s*:\s*(\d{4})\s*:\s*(\d+)`)

	reDiaryNumber = regexp.MustCompile(`(?im)(?:Diary number|Päiväkirjanumero|Dnro)\s*\n\s*([A-Z]?\s*\d{4}/\d+(?:\s*\d+)?|[A-Z]?\s*\d+/\d{4}/\d+|S\d{4}/\d+|\d+:\d{4})`)
	reVolume      = regexp.MustCompile(`(?im)(?:Volume|Taltio)\s*\n\s*([^\n]+)`)
	reCaseYear    = regexp.MustCompile(`(?im)(?:Case year|Kausi)\s*\n\s*(\d{4})`)

	// Date of issue: "January 7, 2026", "18.12.2024", or "1.1.59".
	reDateMonthName = regexp.MustCompile(`(?im)(?:Date of issue|Antopäivä)\s*\n\s*((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})`)
	reDateDMY       = regexp.MustCompile(`(?im)(?:Date of issue|Antopäivä)\s*\n\s*(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	reDateDMY2Digit = regexp.MustCompile(`(?im)(?:Date of issue|Antopäivä)\s*\n\s*(\d{1,2})\.(\d{1,2})\.(\d{2})\b`)
)

// Keyword block boundaries: lines after "Keywords"/"Asiasanat" up to the next
// recognized metadata label.
var (
	reKeywordsStart = regexp.MustCompile(`(?im)^\s*(?:Keywords|Asiasanat)\s*$`)
	reKeywordsEnd   = regexp.MustCompile(`(?im)^\s*(?:Case year|Tapausvuosi|Date of issue|Antopäivä|Language versions|Kieliversiot|Kausi|Päiväkirjanumero)\s*$`)
)

// headingPattern pairs a section type with its heading matcher.
type headingPattern struct {
	typ types.SectionType
	re  *regexp.Regexp
}

// sectionHeadings is the prioritized heading list used by the splitter. Order
// is a priority order, not a document order: a section's end boundary is the
// nearest later match of any other heading, computed explicitly.
var sectionHeadings = []headingPattern{
	{types.SectionLowerCourt, regexp.MustCompile(`(?im)^(?:Hearing of the case in lower courts|Asian käsittely alemmissa oikeuksissa|Previous handling of the case|Asian käsittely)\s*$`)},
	{types.SectionAppealCourt, regexp.MustCompile(`(?im)^(?:Appeal to the Supreme Court|Muutoksenhaku Korkeimmassa oikeudessa|Additional appeal to the Supreme Court)\s*$`)},
	{types.SectionSupremeDecision, regexp.MustCompile(`(?im)^(?:Supreme Court decision|Korkeimman oikeuden ratkaisu)\s*$`)},
	{types.SectionReasoning, regexp.MustCompile(`(?im)^(?:Reasoning|Perustelut|Pääasiaratkaisun perustelut|Korkeimman oikeuden kannanotot|Johtopäätös)\s*$`)},
	{types.SectionBackground, regexp.MustCompile(`(?im)^(?:Background of the matter|Asian tausta|Asian tausta ja kysymyksenasettelu)\s*$`)},
	{types.SectionLegislation, regexp.MustCompile(`(?im)^(?:Legislation|Lainsäädäntö|Sovellettava (?:lainsäädäntö|säännös)|Applicable (?:law|provision))\s*$`)},
	{types.SectionQuestion, regexp.MustCompile(`(?im)^(?:Question(?:ing)? (?:in the Supreme Court|before the court)?|Kysymyksenasettelu (?:Korkeimmassa oikeudessa)?)\s*$`)},
	{types.SectionJudgment, regexp.MustCompile(`(?im)^(?:Judgment|Tuomiolauselma|Päätöslauselma|Päätös)\s*$`)},
	{types.SectionDissenting, regexp.MustCompile(`(?im)^(?:Statement of (?:a )?dissenting member|Eri mieltä olevan jäsenen lausunto|Eri mieltä olevien jäsenten lausunnot)\s*$`)},
}

// Narrower splitter pair used when the full heading list finds nothing.
var (
	reReasoningStart = regexp.MustCompile(`(?i)\n\s*(?:Reasoning|Perustelut|Pääasiaratkaisun perustelut|Johtopäätös)\s*\n`)
	reJudgmentStart  = regexp.MustCompile(`(?i)\n\s*(?:Judgment|Tuomiolauselma|Päätöslauselma|Päätös)\s*\n`)
)

// Judges and rapporteur at the end of the document.
var (
	reJudgesLine    = regexp.MustCompile(`(?is)(?:The case has been resolved|The matter has been resolved|Asian on käsitellyt)\s+by\s+(.+?)\s*\.\s*Rapporteur\s+([A-Za-zäöåÄÖÅ\- ]+)\s*\.?\s*$`)
	reRapporteurAlt = regexp.MustCompile(`(?im)Rapporteur\s+([A-Za-zäöåÄÖÅ\- ]+)\s*\.?\s*$`)
	reJudgeSep      = regexp.MustCompile(`\s+and\s+|\s*,\s*`)
)

// Explicit vote counts ("Äänestys 6-1", "Vote 4-2-1") and the Finnish judges
// sentence used to infer them.
var (
	reVoteFinnish = regexp.MustCompile(`(?i)Äänestys\s+(\d+)\s*-\s*(\d+)(?:\s*-\s*(\d+))?`)
	reVoteEnglish = regexp.MustCompile(`(?i)(?:Vote|Voting)\s+(\d+)\s*[-–]\s*(\d+)(?:\s*[-–]\s*(\d+))?`)

	// "Asian ovat ratkaisseet oikeusneuvokset X, Y (eri mieltä), Z ja W."
	reJudgesLineFinnish = regexp.MustCompile(`(?is)Asian\s+ovat\s+ratkaisseet\s+(?:oikeusneuvokset|lainoppineet\s+hallinto-oikeustuomarit)?\s*(.+?)(?:\.\s*Esittelijä|\.\s*Rapporteur|\.\s*\z|\n\n)`)
	reEriMielta         = regexp.MustCompile(`(?i)\(eri\s+mieltä\)`)
	reFinnishJudgeSep   = regexp.MustCompile(`,\s*|\s+ja\s+`)

	// Old format: "Ratkaisuun osallistuneet: oikeusneuvokset X, Y ja Z".
	reOldJudgesLine   = regexp.MustCompile(`(?is)Ratkaisuun\s+osallistuneet\s*:\s*(.+?)(?:\n\n|\z)`)
	reOldJudgeSep     = regexp.MustCompile(`,\s*|\s+(?:ja|sekä)\s+`)
	reDissentHeading  = regexp.MustCompile(`(?i)Eri mieltä olev`)
	reDissentSections = regexp.MustCompile(`(?:Ylimääräinen\s+)?[Oo]ikeusneuvos\s+[\wäöåÄÖÅ]+\s*:`)
	reJudgeRoleWord   = regexp.MustCompile(`(?i)esittelijä|rapporteur|legal\s+advisor`)
)

// Lower-court decisions: court name, date (several formats), case number.
var (
	reDistrictCourt = regexp.MustCompile(`(?i)(?:([^\n]+?)\s+)?(?:District Court|Käräjäoikeus)\s+(?:judgment|tuomio)\s+(?:of\s+)?(\d{1,2}[./]\d{1,2}[./]\d{2,4})\s+(?:no\.?|n:o)\s*(\d{2}/\d+)`)
	reAppealCourt   = regexp.MustCompile(`(?i)(?:([^\n]+?)\s+)?(?:Court of Appeal|Hovioikeus)\s+(?:judgment|tuomio)?\s*,?\s*(\d{1,2}\s+\w+\s+\d{4}|\d{1,2}[./]\d{1,2}[./]\d{2,4})\s*,?\s*(?:no\.?|n:o)?\s*(\d{2}/\d+|\d+)`)
)

// Citations in the body.
var (
	reKKOCite    = regexp.MustCompile(`(?i)KKO\s+(\d{4})\s*:\s*(\d+)`)
	reEUCase     = regexp.MustCompile(`(?i)(?:CJEU|ECJ|Court of Justice).*?(C-\d+/\d+)`)
	reEUCaseBare = regexp.MustCompile(`\b(C-\d+/\d+)\b`)

	rePenalCode  = regexp.MustCompile(`(?i)(?:RL|Rikoslaki)\s+(?:Chapter\s+)?(\d+)\s*(?:Section\s+)?(\d+)(?:\s*Subsection\s*\d+)?(?:\s*Paragraph\s*\d+)?(?:\s*\(\d+/\d+\))?`)
	reLawChapter = regexp.MustCompile(`(?i)(?:Chapter|Luku)\s+(\d+)\s*,?\s*(?:Section|§)\s*(\d+[a-z]?)`)

	reEURegulation        = regexp.MustCompile(`(?i)(Council\s+Regulation\s+\(EU\)\s+No\s+\d+/\d+(?:\s+[^.]*?)?)(?:\s*[,.]|\z)|(Regulation\s+\(EU\)\s+\d+/\d+)`)
	reEURegulationArticle = regexp.MustCompile(`(?i)Article\s+(\d+[a-z]?)(?:\((\d+)\))?\s*(?:of\s+the\s+)?(?:Regulation|Council Regulation)`)
)

// Finnish statute provision references scanned from the reasoning block.
var (
	reFISectionRef    = regexp.MustCompile(`(?i)(\d+)\s*(?:luvun\s+)?(\d+[a-z]?)\s*§(?::n|:ssä|:ää)?`)
	reFILawSection    = regexp.MustCompile(`(?i)(?:lain|laki)\s+(\d+)\s*§(?::n|:ssä|:ää)?`)
	reNamedLawSection = regexp.MustCompile(`(?i)((?:työsopimus|vahingonkorvaus|rikos|oikeudenkäymiskaaren|konkurssi|ulosotto|osakeyhtiö|asunto-osakeyhtiö|maa-?kaari|kauppa-?kaari|perintö-?kaari|avioliitto|lapsenhuolto|julkis(?:uus)?|hallintolainkäyttö|hallinto|vero(?:tusmenettelylain)?|kuluttajansuoja|tuotevastuulain|vakuutussopimuslain|maankäyttö|ympäristönsuojelu|jäte|vesilain|metsä|kalastus|rakennus|tieliikenne|potilasvakuutus|liikennevakuutus|tapaturma(?:vakuutus)?|työtapaturma|eläke|työaika|vuosiloma|yhdenvertaisuus|tasa-arvo|henkilötieto|työsuojelu|tilintarkastus|arvopaperimarkkina|luottolaitostoiminta|sijoituspalvelu|maksukyvyttömyys|saneeraus|velkajärjestely)(?:lain|laki)?)(?:\s+(\d+)\s*(?:luvun?\s+)?)?(\d+[a-z]?)\s*§`)
	reTSL             = regexp.MustCompile(`(?i)(?:TSL|työsopimuslain?)\s+(\d+)\s*(?:luvun?\s+)(\d+[a-z]?)\s*§`)
	reOKL             = regexp.MustCompile(`(?i)(?:oikeudenkäymiskaaren|OK)\s+(\d+)\s*(?:luvun?\s+)(\d+[a-z]?)\s*§`)
	reHERef           = regexp.MustCompile(`(?i)(?:HE|hallituksen\s+esitys)\s+(\d+/\d+\s*vp)`)
)

// Decision outcome indicators, first match wins over the full text. This is a
// documented approximation: acceptance or remand language quoted from a lower
// court can flip the result.
var (
	reOutcomeAccepted = regexp.MustCompile(`(?i)appeal\s+(?:is\s+)?(?:accepted|granted)|muutoksenhaku\s+myönnetään`)
	reOutcomeRemanded = regexp.MustCompile(`(?i)remanded|palautetaan`)
)

// Old-format anchors for reasoning extraction when no modern heading matches.
var fallbackReasoningAnchors = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^(?:KORKEIN\s+OIKEUS|KKO)\s*$`),
	regexp.MustCompile(`(?im)^(?:Korkeimman\s+oikeuden\s+(?:ratkaisu|päätös|kannanotto))\s*$`),
	regexp.MustCompile(`(?i)KKO\s+(?:p|t)\.\s*\d`),
}

var reReasoningEnd = regexp.MustCompile(`(?i)Eri mieltä olev|Ratkaisuun osallistuneet|Asian ovat ratkaisseet`)

var monthNumbers = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// Exception/limitation phrases (Finnish + English) for ruling analysis.
var exceptionPhrases = []string{
	`Poikkeuksena\s+(?:tilanteissa|tapauksissa)?\s*,?\s*(?:jossa|joissa|kun)?[^.]{10,280}\.`,
	`Pois\s+lukien\s+(?:tapaukset|tilanteet|kun)?[^.]{10,280}\.`,
	`Vaikka\s+yleensä[^.]{10,280}\.`,
	`Kuitenkin\s+(?:jos|mikäli|siinä tapauksessa|silloin)[^.]{10,280}\.`,
	`Ellei\s+toisin\s+(?:mainita|sovita|säädetä|osoiteta)[^.]{5,200}\.`,
	`Poikkeavasti\s+[^.]{10,280}\.`,
	`Toisin\s+kuin\s+(?:tapauksessa|asiassa|edellä)[^.]{10,280}\.`,
	`Tämä\s+(?:sääntö|periaate|tulkinta)\s+ei\s+(?:kuitenkaan\s+)?(?:sovellu|koske|päde)[^.]{10,280}\.`,
	`Edellä\s+(?:lausuttu|todettu|sanottu)\s+ei\s+(?:kuitenkaan\s+)?(?:koske|tarkoita|merkitse)[^.]{10,280}\.`,
	`Siltä\s+osin\s+kuin[^.]{10,280}\.`,
	`Edellytyksenä\s+(?:on|oli|kuitenkin)[^.]{10,280}\.`,
	`Rajoituksena\s+[^.]{10,280}\.`,
	`Tästä\s+(?:säännöstä|periaatteesta)\s+(?:voidaan\s+)?poiketa[^.]{10,280}\.`,
	`(?:Exception|Exceptions?)\s+(?:to\s+)?(?:this\s+rule|above)[^.]{10,200}\.`,
	`Unless\s+otherwise\s+(?:stated|provided)[^.]{5,200}\.`,
	`(?:Tätä\s+ennakkotapausta\s+ei\s+sovellu|Ennakkotapaus\s+on\s+rajoitettu|This\s+precedent\s+does\s+not\s+apply)[^.]{5,220}\.`,
	`(?:ei\s+kuitenkaan\s+(?:sovellu|sovelleta|koske|tarkoita|merkitse|riitä))[^.]{10,280}\.`,
}

// Decisive-fact phrases: what mattered for the outcome.
var distinctiveFactPhrases = []string{
	`Asiassa\s+on\s+(?:selvää|riidatonta|selvitetty)\s+(?:ettei|että|,?\s*että)[^.]{10,280}\.`,
	`Tosiseikkojen\s+perusteella[^.]{10,280}\.`,
	`Ratkaisevaa\s+(?:oli|on|asian\s+(?:arvioinnissa|ratkaisussa))[^.]{10,280}\.`,
	`Asian\s+olosuhteet\s+osoittavat[^.]{10,280}\.`,
	`(?:Korkein\s+oikeus|KKO)\s+(?:toteaa|katsoo|katsoi)\s*,?\s+(?:että|ettei)[^.]{10,400}\.`,
	`(?:Korkein\s+oikeus|KKO)\s+(?:pitää|piti)\s+(?:tätä\s+)?(?:asiaa\s+)?(?:arvioitaessa\s+)?(?:olennaisena|merkityksellisenä|ratkaisevana)[^.]{10,280}\.`,
	`Asiassa\s+(?:on|oli)\s+(?:arvioitava|ratkaistava|kysymys\s+siitä)[^.]{10,400}\.`,
	`Keskeistä\s+(?:arvioinnissa|asian\s+ratkaisemisessa|on)[^.]{10,280}\.`,
	`Merkityksellistä\s+(?:on|oli|tässä\s+asiassa)[^.]{10,280}\.`,
	`Huomioon\s+(?:ottaen|on\s+otettava)[^.]{10,280}\.`,
	`Näillä\s+perusteilla[^.]{10,280}\.`,
	`Edellä\s+(?:selostetuilla|mainituilla|todet(?:uilla|uin))\s+perusteilla[^.]{10,280}\.`,
	`Kokonaisarvioinnissa[^.]{10,280}\.`,
	`(?:Decisive|Determinative)\s+for\s+(?:the\s+outcome|the\s+decision)[^.]{10,200}\.`,
	`The\s+(?:key|decisive)\s+facts?\s+(?:were|was)[^.]{10,200}\.`,
}

var (
	reExceptions       = compileAlternation(exceptionPhrases)
	reDistinctiveFacts = compileAlternation(distinctiveFactPhrases)
	reWhitespaceRun    = regexp.MustCompile(`\s+`)
)

// compileAlternation joins phrase patterns into one case-insensitive scan.
func compileAlternation(phrases []string) *regexp.Regexp {
	joined := ""
	for i, p := range phrases {
		if i > 0 {
			joined += "|"
		}
		joined += "(?:" + p + ")"
	}
	return regexp.MustCompile(`(?i)` + joined)
}

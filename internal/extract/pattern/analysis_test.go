package pattern

import (
	"strings"
	"testing"
)

func analysisDoc() string {
	return "KKO:2024:15\n" +
		"Perustelut\n" +
		"Korkein oikeus katsoo, että vastaaja oli laiminlyönyt huolellisuusvelvoitteensa olennaisella tavalla.\n" +
		"Asiaa on arvioitava oikeudenkäymiskaaren 21 luvun 1 §:n nojalla.\n" +
		"Tämä sääntö ei kuitenkaan sovellu tilanteisiin, joissa vuokralainen on kuluttajan asemassa.\n" +
		"Tuomiolauselma\n" +
		"Hovioikeuden tuomion lopputulosta ei muuteta. Valitus hylätään.\n"
}

func TestAnalyzeRuling(t *testing.T) {
	a := AnalyzeRuling(analysisDoc())

	if !strings.Contains(a.Exceptions, "ei kuitenkaan sovellu") {
		t.Errorf("exceptions = %q", a.Exceptions)
	}
	if !strings.Contains(a.DistinctiveFacts, "Korkein oikeus katsoo") {
		t.Errorf("distinctive facts = %q", a.DistinctiveFacts)
	}
	if !strings.Contains(a.RulingInstruction, "Valitus hylätään") {
		t.Errorf("ruling instruction = %q", a.RulingInstruction)
	}
	if !strings.Contains(a.AppliedProvisions, "21 luku 1 §") {
		t.Errorf("applied provisions = %q", a.AppliedProvisions)
	}
	if !strings.Contains(a.ReasoningExcerpt, "huolellisuusvelvoitteensa") {
		t.Errorf("reasoning excerpt = %q", a.ReasoningExcerpt)
	}
}

func TestAnalyzeRulingEmptyInput(t *testing.T) {
	a := AnalyzeRuling("   ")
	if a.Exceptions != "" || a.DistinctiveFacts != "" || a.RulingInstruction != "" ||
		a.AppliedProvisions != "" || a.ReasoningExcerpt != "" {
		t.Errorf("blank input should yield zero analysis, got %+v", a)
	}
}

func TestCollectPhrasesBudget(t *testing.T) {
	// Three matching sentences, but the budget only admits the first.
	text := "Ratkaisevaa oli vastaajan menettelyn pitkä kesto ja toistuvuus asiassa. " +
		"Ratkaisevaa oli myös aiheutuneen vahingon huomattava määrä kokonaisuutena. " +
		"Ratkaisevaa oli lisäksi osapuolten välinen pitkäaikainen sopimussuhde."

	got := collectPhrases(reDistinctiveFacts, text, 15, 80)
	if strings.Contains(got, " | ") {
		t.Errorf("budget should cut the list to one phrase, got %q", got)
	}
	if !strings.HasPrefix(got, "Ratkaisevaa oli") {
		t.Errorf("unexpected phrase: %q", got)
	}
}

func TestCollectPhrasesDeduplicates(t *testing.T) {
	text := "Näillä perusteilla valitus on hylättävä kokonaisuudessaan. " +
		"Näillä perusteilla valitus on hylättävä kokonaisuudessaan."

	got := collectPhrases(reDistinctiveFacts, text, 15, 2000)
	if strings.Contains(got, " | ") {
		t.Errorf("duplicate phrases should collapse to one, got %q", got)
	}
}

func TestRulingInstructionClamped(t *testing.T) {
	text := "Tuomiolauselma\n" + strings.Repeat("pitkä tuomiolauselman virke. ", 50)
	got := rulingInstruction(text)
	if len(got) > maxRulingInstructionChars {
		t.Errorf("ruling instruction not clamped: %d chars", len(got))
	}
	if got == "" {
		t.Error("expected a ruling instruction")
	}
}

func TestReasoningExcerptOldFormat(t *testing.T) {
	text := "Vanha ratkaisuseloste vuodelta 1959.\n" +
		"KORKEIN OIKEUS\n" +
		"katsoi, että kanne oli näytetty toteen ja että vastaajan oli korvattava vahinko täysimääräisesti.\n" +
		"Ratkaisuun osallistuneet: oikeusneuvokset Hakulinen ja Lehtonen\n"

	got := reasoningExcerpt(text, 1500)
	if !strings.Contains(got, "näytetty toteen") {
		t.Errorf("excerpt = %q", got)
	}
	if strings.Contains(got, "Ratkaisuun osallistuneet") {
		t.Error("excerpt leaked past the judges line")
	}
}

func TestAppliedProvisionsWholeTextFallback(t *testing.T) {
	// No reasoning heading at all: the scan covers the whole text.
	text := "Asiassa sovellettiin vahingonkorvauslain 5 luvun 2 §:n säännöstä."
	got := appliedProvisions(text)
	if !strings.Contains(got, "vahingonkorvauslain 5 luku 2 §") {
		t.Errorf("applied provisions = %q", got)
	}
}

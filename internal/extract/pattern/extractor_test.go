package pattern

import (
	"testing"
)

func sampleDecision() string {
	return "KKO:2024:15\n" +
		"ECLI:FI:KKO:2024:15\n" +
		"Antopäivä\n7.1.2024\n" +
		"Asiasanat\nVuokrasopimus\nVahingonkorvaus\n" +
		"Tapausvuosi\n2024\n" +
		"Asian käsittely alemmissa oikeuksissa\n" +
		"Helsingin käräjäoikeus hylkäsi kanteen. Helsingin hovioikeus ei muuttanut ratkaisua.\n" +
		"Muutoksenhaku Korkeimmassa oikeudessa\n" +
		"A vaati, että hovioikeuden tuomio kumotaan.\n" +
		"Perustelut\n" +
		"Korkein oikeus viittaa ratkaisuun KKO 2018:49 ja katsoo, että vastuu on näytetty.\n" +
		"Tuomiolauselma\n" +
		"Hovioikeuden tuomion lopputulosta ei muuteta.\n" +
		"The case has been resolved by legal advisors Koskinen, Virtanen and Mäkinen. Rapporteur Laine."
}

func TestExtract(t *testing.T) {
	rec := Extract(sampleDecision(), "KKO:2024:15")
	if rec == nil {
		t.Fatal("expected a record")
	}

	if rec.Metadata.CaseID != "KKO:2024:15" {
		t.Errorf("case id = %q", rec.Metadata.CaseID)
	}
	if rec.Metadata.ECLI != "ECLI:FI:KKO:2024:15" {
		t.Errorf("ECLI = %q", rec.Metadata.ECLI)
	}
	if rec.Metadata.DateOfIssue != "2024-01-07" {
		t.Errorf("date = %q", rec.Metadata.DateOfIssue)
	}
	if len(rec.Metadata.Judges) != 3 {
		t.Errorf("judges = %v", rec.Metadata.Judges)
	}
	if rec.Metadata.Rapporteur != "Laine" {
		t.Errorf("rapporteur = %q", rec.Metadata.Rapporteur)
	}
	if len(rec.Sections) < 4 {
		t.Errorf("expected at least 4 sections, got %d", len(rec.Sections))
	}
	if !contains(rec.References.CitedCases, "KKO 2018:49") {
		t.Errorf("cited cases = %v", rec.References.CitedCases)
	}
}

func TestExtractBlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n"} {
		if rec := Extract(input, "KKO:2024:15"); rec != nil {
			t.Errorf("input %q: expected nil record", input)
		}
	}
}

func TestResolveCaseID(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		caseID string
		want   string
	}{
		{"explicit id wins", "KKO:1999:1 jotain", "KKO:2024:15", "KKO:2024:15"},
		{"derived from head", "KKO:2024:15\nratkaisuseloste", "", "KKO:2024:15"},
		{"spaced form in head", "KKO : 2024 : 15\nteksti", "", "KKO:2024:15"},
		{"sentinel", "teksti ilman tunnistetta", "", SentinelCaseID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCaseID(tt.text, tt.caseID); got != tt.want {
				t.Errorf("resolveCaseID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSectionsAllPublicOrInternal(t *testing.T) {
	rec := Extract(sampleDecision(), "")
	if rec == nil {
		t.Fatal("expected a record")
	}
	for _, s := range rec.Sections {
		if s.Content == "" {
			t.Errorf("section %q has empty content", s.Title)
		}
		if s.Type == "" {
			t.Errorf("section %q has empty type", s.Title)
		}
	}
	// Case id derived from the document head.
	if rec.Metadata.CaseID != "KKO:2024:15" {
		t.Errorf("derived case id = %q", rec.Metadata.CaseID)
	}
}

func TestExtractLowerCourts(t *testing.T) {
	text := "Asian käsittely alemmissa oikeuksissa\n" +
		"Helsingin District Court judgment 12.3.2021 no. 21/11452 hylkäsi kanteen.\n" +
		"Helsingin Court of Appeal judgment 18.11.2022 no. 22/1604 ei muuttanut ratkaisua.\n"

	lc := extractLowerCourts(text)
	if lc.DistrictCourt == nil {
		t.Fatal("expected a district court decision")
	}
	if lc.DistrictCourt.Name != "Helsingin" {
		t.Errorf("district court name = %q", lc.DistrictCourt.Name)
	}
	if lc.DistrictCourt.Date != "12-3-2021" {
		t.Errorf("district court date = %q", lc.DistrictCourt.Date)
	}
	if lc.DistrictCourt.Number != "21/11452" {
		t.Errorf("district court number = %q", lc.DistrictCourt.Number)
	}

	if lc.AppealCourt == nil {
		t.Fatal("expected an appeal court decision")
	}
	if lc.AppealCourt.Number != "22/1604" {
		t.Errorf("appeal court number = %q", lc.AppealCourt.Number)
	}
}

func TestExtractLowerCourtsAbsent(t *testing.T) {
	lc := extractLowerCourts("ei mainintoja alemmista oikeuksista")
	if lc.DistrictCourt != nil || lc.AppealCourt != nil {
		t.Errorf("expected nil courts, got %+v", lc)
	}
}

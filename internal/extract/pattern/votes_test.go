package pattern

import "testing"

func TestExtractVoteExplicitLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		total      int
		dissenting int
		strength   string
	}{
		{"finnish", "Perustelut\ntekstiä\nÄänestys 4-1", 5, 1, "4-1"},
		{"english", "Reasoning\ntext\nVote 3-2", 5, 2, "3-2"},
		{"three way", "Vote 3-1-1", 5, 1, "3-1-1"},
		{"unanimous not stated", "pelkkää tekstiä", 0, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, dissenting, strength := extractVote(tt.text)
			if total != tt.total || dissenting != tt.dissenting || strength != tt.strength {
				t.Errorf("extractVote() = (%d, %d, %q), want (%d, %d, %q)",
					total, dissenting, strength, tt.total, tt.dissenting, tt.strength)
			}
		})
	}
}

func TestVoteFromFinnishJudgesLine(t *testing.T) {
	text := "Asian ovat ratkaisseet oikeusneuvokset Koskinen, Virtanen (eri mieltä), " +
		"Mäkinen, Laine ja Niemi. Esittelijä Salo."

	total, dissenting, strength := voteFromFinnishJudgesLine(text)
	if total != 5 || dissenting != 1 || strength != "4-1" {
		t.Errorf("got (%d, %d, %q), want (5, 1, \"4-1\")", total, dissenting, strength)
	}
}

func TestVoteFromFinnishJudgesLineUnanimous(t *testing.T) {
	text := "Asian ovat ratkaisseet oikeusneuvokset Koskinen, Virtanen ja Mäkinen. Esittelijä Salo."

	total, dissenting, strength := voteFromFinnishJudgesLine(text)
	if total != 3 || dissenting != 0 || strength != "3-0" {
		t.Errorf("got (%d, %d, %q), want (3, 0, \"3-0\")", total, dissenting, strength)
	}
}

func TestVoteFromOldJudgesLine(t *testing.T) {
	text := "Ratkaisuun osallistuneet: oikeusneuvokset Hakulinen, Lehtonen ja Castrén\n\n" +
		"Eri mieltä olevan jäsenen lausunto\n" +
		"Oikeusneuvos Lehtonen: Katson, että valitus olisi tullut hyväksyä.\n"

	total, dissenting, strength := voteFromOldJudgesLine(text)
	if total != 3 || dissenting != 1 || strength != "2-1" {
		t.Errorf("got (%d, %d, %q), want (3, 1, \"2-1\")", total, dissenting, strength)
	}
}

func TestVoteFromJudgeCount(t *testing.T) {
	total, dissenting, strength := voteFromJudgeCount([]string{"A", "B", "C", "D", "E"}, true)
	if total != 5 || dissenting != 1 || strength != "4-1" {
		t.Errorf("got (%d, %d, %q), want (5, 1, \"4-1\")", total, dissenting, strength)
	}

	total, dissenting, strength = voteFromJudgeCount([]string{"A", "B", "C"}, false)
	if total != 3 || dissenting != 0 || strength != "3-0" {
		t.Errorf("got (%d, %d, %q), want (3, 0, \"3-0\")", total, dissenting, strength)
	}

	if _, _, strength := voteFromJudgeCount(nil, false); strength != "" {
		t.Errorf("empty judges list should yield no vote, got %q", strength)
	}
}

func TestFormatVote(t *testing.T) {
	if got := formatVote(5, 0); got != "5-0" {
		t.Errorf("formatVote(5, 0) = %q", got)
	}
	if got := formatVote(5, 2); got != "3-2" {
		t.Errorf("formatVote(5, 2) = %q", got)
	}
}

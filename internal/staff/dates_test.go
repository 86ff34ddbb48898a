package staff

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2023-01-10")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if FormatDate(d) != "2023-01-10" {
		t.Fatalf("FormatDate = %q", FormatDate(d))
	}
	if _, err := ParseDate("10/01/2023"); err == nil {
		t.Fatal("non-ISO date should fail to parse")
	}
}

func TestNormalizeHelpers(t *testing.T) {
	cases := []struct{ in, word, title string }{
		{"  por TURNOS ", "Por turnos", "Por Turnos"},
		{"medicina general", "Medicina general", "Medicina General"},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := normalizeWord(tc.in); got != tc.word {
			t.Fatalf("normalizeWord(%q) = %q, want %q", tc.in, got, tc.word)
		}
		if got := normalizeTitle(tc.in); got != tc.title {
			t.Fatalf("normalizeTitle(%q) = %q, want %q", tc.in, got, tc.title)
		}
	}
}

func TestAge(t *testing.T) {
	birth := time.Now().AddDate(-30, 0, 0)
	if got := Age(birth); got != 30 {
		t.Fatalf("Age = %d, want 30", got)
	}
	notYet := time.Now().AddDate(-30, 0, 1)
	if got := Age(notYet); got != 29 {
		t.Fatalf("Age before birthday = %d, want 29", got)
	}
}

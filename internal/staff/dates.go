package staff

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the storage format for all dates (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// ParseDate parses a stored ISO-8601 date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha invalida %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders a date in the storage format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func today() time.Time {
	return dateOnly(time.Now())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isFutureDate(t time.Time) bool {
	return dateOnly(t).After(today())
}

// Age returns completed years since birth.
func Age(birth time.Time) int {
	now := today()
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func daysUntil(t time.Time) int {
	return int(dateOnly(t).Sub(today()).Hours() / 24)
}

// normalizeWord trims and capitalizes only the first letter, so catalog
// literals like "Por turnos" or "Fin de contrato" compare uniformly no
// matter how the value was typed.
func normalizeWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// normalizeTitle trims and capitalizes every word, matching multi-word
// specialty literals like "Medicina General".
func normalizeTitle(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NormalizeEnum trims a catalog literal and capitalizes only its first
// letter, the form the catalogs and the stored data use.
func NormalizeEnum(s string) string {
	return normalizeWord(s)
}

// NormalizeSpecialty trims and title-cases a specialty literal.
func NormalizeSpecialty(s string) string {
	return normalizeTitle(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

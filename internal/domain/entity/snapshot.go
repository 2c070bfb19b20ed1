package entity

import (
	"strings"
	"time"
	"unicode"
)

const (
	// InitialSequence помечает Snapshot 0 — состояние сразу после навигации.
	InitialSequence = -1

	TimestampLayout = "20060102_150405"

	maxLabelLen = 60
)

type Snapshot struct {
	Sequence       int
	SourceLabel    string
	Markup         string
	TableFragments []string
	Timestamp      string
	Screenshot     *Screenshot
}

func (s Snapshot) IsInitial() bool {
	return s.Sequence == InitialSequence
}

func RunTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// SanitizeLabel превращает текст элемента в безопасную часть имени файла.
// Пробелы и прочие символы заменяются на '_', буквы любых алфавитов сохраняются.
func SanitizeLabel(text string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, strings.TrimSpace(text))

	if runes := []rune(s); len(runes) > maxLabelLen {
		s = string(runes[:maxLabelLen])
	}
	s = strings.Trim(s, "_")
	if s == "" {
		return "element"
	}
	return s
}

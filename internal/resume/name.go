package resume

import (
	"strings"
	"unicode"
)

const (
	nameLines    = 10
	nameMaxWords = 5
	// digits among the first runes usually mean a phone or a date line
	namePrefixRunes = 3
)

func (e *Extractor) findName(lines []string) string {
	if len(lines) > nameLines {
		lines = lines[:nameLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || hasDigitPrefix(line) {
			continue
		}

		lower := strings.ToLower(line)
		if containsAny(lower, e.vocab.NameSkipWords) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 1 || len(words) > nameMaxWords {
			continue
		}
		if allCapitalized(words) {
			return line
		}
	}

	return ""
}

func hasDigitPrefix(line string) bool {
	i := 0
	for _, r := range line {
		if i == namePrefixRunes {
			break
		}
		if unicode.IsDigit(r) {
			return true
		}
		i++
	}
	return false
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

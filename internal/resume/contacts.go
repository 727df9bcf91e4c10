package resume

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`[+]?[(]?[0-9]{1,4}[)]?[-\s./0-9]{7,}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	urlPattern      = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+|www\\.[^\\s<>\"{}|\\\\^`\\[\\]]+")
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

func findEmails(flat string) []string {
	return dedupe(emailPattern.FindAllString(flat, -1))
}

func findPhones(flat string) []string {
	var phones []string
	for _, match := range phonePattern.FindAllString(flat, -1) {
		digits := countDigits(match)
		if digits < minPhoneDigits || digits > maxPhoneDigits {
			continue
		}
		phones = append(phones, strings.TrimSpace(match))
	}
	return dedupe(phones)
}

// findLinks returns profile links first, then every other URL.
func findLinks(flat string) []string {
	var links []string
	for _, pattern := range []*regexp.Regexp{linkedinPattern, githubPattern} {
		for _, match := range pattern.FindAllString(flat, -1) {
			links = append(links, withScheme(match))
		}
	}
	links = append(links, urlPattern.FindAllString(flat, -1)...)
	return dedupe(links)
}

func withScheme(link string) string {
	if strings.HasPrefix(strings.ToLower(link), "http") {
		return link
	}
	return "https://" + link
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// dedupe drops repeated values and keeps the first occurrence order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

package resume

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const shortSkillLength = 3

type skillMatcher struct {
	skill   string
	pattern *regexp.Regexp
}

// compileSkills builds one case-insensitive pattern per skill. A skill that
// starts or ends with punctuation, like c++ or c#, cannot use \b on that side,
// so it is anchored to the text edge or a non-word character instead.
func compileSkills(skills []string) []skillMatcher {
	matchers := make([]skillMatcher, 0, len(skills))
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		matchers = append(matchers, skillMatcher{
			skill:   skill,
			pattern: regexp.MustCompile(skillPattern(skill)),
		})
	}
	return matchers
}

func skillPattern(skill string) string {
	first, _ := utf8.DecodeRuneInString(skill)
	last, _ := utf8.DecodeLastRuneInString(skill)

	prefix := `(?:^|\W)`
	if isWordRune(first) {
		prefix = `\b`
	}
	suffix := `(?:\W|$)`
	if isWordRune(last) {
		suffix = `\b`
	}

	return `(?i)` + prefix + regexp.QuoteMeta(skill) + suffix
}

func isWordRune(r rune) bool {
	return r == '_' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func (e *Extractor) findSkills(text string) []string {
	lower := strings.ToLower(text)
	// cases.Caser keeps state between calls and is not safe for concurrent use
	title := cases.Title(language.English)

	var found []string
	for _, m := range e.skills {
		if m.pattern.MatchString(lower) {
			found = append(found, SkillLabel(m.skill, title))
		}
	}

	slices.Sort(found)
	return slices.Compact(found)
}

// SkillLabel renders a vocabulary entry for display: title case for entries
// longer than three characters, upper case otherwise.
func SkillLabel(skill string, title cases.Caser) string {
	if utf8.RuneCountInString(skill) > shortSkillLength {
		return title.String(skill)
	}
	return strings.ToUpper(skill)
}

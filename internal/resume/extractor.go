// Package resume turns normalized resume text into a structured Record.
package resume

import (
	"strings"

	"github.com/spigell/resumesense/internal/textutil"
)

// Extractor finds contacts, name, skills and sections in resume text. The
// compiled patterns are read-only, so one Extractor may serve many goroutines.
type Extractor struct {
	vocab     Vocabulary
	skills    []skillMatcher
	maxLength int
}

// ExtractorOption customizes an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxTextLength caps the number of bytes examined. Longer input is cut on
// a rune boundary. A non-positive value disables the cap.
func WithMaxTextLength(n int) ExtractorOption {
	return func(e *Extractor) {
		e.maxLength = n
	}
}

// NewExtractor compiles the vocabulary. The vocabulary is copied.
func NewExtractor(vocab Vocabulary, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		vocab:     vocab.clone(),
		maxLength: textutil.DefaultMaxLength,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.skills = compileSkills(e.vocab.Skills)

	return e
}

// Extract builds a Record from text. It never fails; fields with nothing to
// report stay empty and the summary falls back to NoSummary.
func (e *Extractor) Extract(text string) Record {
	text = textutil.Truncate(text, e.maxLength)
	flat := textutil.Flatten(text)
	lines := strings.Split(text, "\n")
	sections := e.segment(lines)

	r := Record{
		Name:       e.findName(lines),
		Emails:     orEmpty(findEmails(flat)),
		Phones:     orEmpty(findPhones(flat)),
		Links:      orEmpty(findLinks(flat)),
		Skills:     orEmpty(e.findSkills(text)),
		Education:  orEmpty(sections.Education),
		Experience: orEmpty(sections.Experience),
	}
	r.Summary = r.Summarize()

	return r
}

// Emails returns the distinct email addresses in text, in order of appearance.
func (e *Extractor) Emails(text string) []string {
	return findEmails(e.flat(text))
}

// Phones returns the distinct phone numbers in text with 10 to 15 digits.
func (e *Extractor) Phones(text string) []string {
	return findPhones(e.flat(text))
}

// Links returns LinkedIn and GitHub profiles followed by other URLs.
func (e *Extractor) Links(text string) []string {
	return findLinks(e.flat(text))
}

// Name returns the candidate name guessed from the first lines of text.
func (e *Extractor) Name(text string) string {
	return e.findName(strings.Split(textutil.Truncate(text, e.maxLength), "\n"))
}

// Skills returns the sorted display labels of the vocabulary skills in text.
func (e *Extractor) Skills(text string) []string {
	return e.findSkills(textutil.Truncate(text, e.maxLength))
}

// Sections returns the education and experience lines of text.
func (e *Extractor) Sections(text string) Sections {
	return e.segment(strings.Split(textutil.Truncate(text, e.maxLength), "\n"))
}

func (e *Extractor) flat(text string) string {
	return textutil.Flatten(textutil.Truncate(text, e.maxLength))
}

// orEmpty keeps empty fields as [] rather than null in JSON output.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

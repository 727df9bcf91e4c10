// Package matcher scores how well resume text covers the keywords of a job
// description.
package matcher

import (
	"slices"

	"github.com/spigell/resumesense/internal/textutil"
)

// Result is the outcome of one match. Scores are fractions in [0, 1].
type Result struct {
	OverallScore    float64  `json:"overall_score" yaml:"overall_score"`
	SkillScore      float64  `json:"skill_score" yaml:"skill_score"`
	MatchingSkills  []string `json:"matching_skills" yaml:"matching_skills"`
	MissingSkills   []string `json:"missing_skills" yaml:"missing_skills"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Matcher compares keyword sets. It is immutable after New and safe for
// concurrent use.
type Matcher struct {
	stopwords      []string
	extraStopwords []string
	techTerms      []string
	strong         float64
	moderate       float64
	maxLength      int

	keywords *KeywordExtractor
}

// Option customizes a Matcher.
type Option func(*Matcher)

// WithStopwords replaces the default stopword list.
func WithStopwords(words []string) Option {
	return func(m *Matcher) {
		m.stopwords = slices.Clone(words)
	}
}

// WithExtraStopwords adds words to the stopword list.
func WithExtraStopwords(words ...string) Option {
	return func(m *Matcher) {
		m.extraStopwords = append(m.extraStopwords, words...)
	}
}

// WithTechTerms replaces the terms found by substring search.
func WithTechTerms(terms []string) Option {
	return func(m *Matcher) {
		m.techTerms = slices.Clone(terms)
	}
}

// WithThresholds sets the score boundaries of the strong and moderate tiers.
// Invalid pairs are ignored, including a zero strong threshold, which would
// rate every match as strong.
func WithThresholds(strong, moderate float64) Option {
	return func(m *Matcher) {
		if strong <= 0 || moderate < 0 || strong > 1 || moderate > strong {
			return
		}
		m.strong = strong
		m.moderate = moderate
	}
}

// WithMaxTextLength caps the bytes read from each input.
func WithMaxTextLength(n int) Option {
	return func(m *Matcher) {
		m.maxLength = n
	}
}

// New creates a Matcher with the built-in stopwords and tech terms.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		stopwords: DefaultStopwords(),
		techTerms: DefaultTechTerms(),
		strong:    DefaultStrongThreshold,
		moderate:  DefaultModerateThreshold,
		maxLength: textutil.DefaultMaxLength,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.keywords = NewKeywordExtractor(append(slices.Clone(m.stopwords), m.extraStopwords...), m.techTerms)

	return m
}

// Keywords returns the sorted keyword list of text.
func (m *Matcher) Keywords(text string) []string {
	return sortedKeys(m.keywords.Extract(textutil.Truncate(text, m.maxLength)))
}

// Match scores resumeText against jobText. The overall score equals the
// skill score: the share of job keywords that also occur in the resume.
func (m *Matcher) Match(resumeText, jobText string) Result {
	job := m.keywords.Extract(textutil.Truncate(jobText, m.maxLength))
	if len(job) == 0 {
		return Result{
			MatchingSkills:  []string{},
			MissingSkills:   []string{},
			Recommendations: []string{RecommendEmptyJob},
		}
	}

	resume := m.keywords.Extract(textutil.Truncate(resumeText, m.maxLength))

	matching := []string{}
	missing := []string{}
	for kw := range job {
		if _, ok := resume[kw]; ok {
			matching = append(matching, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	slices.Sort(matching)
	slices.Sort(missing)

	score := float64(len(matching)) / float64(len(job))
	r := Result{
		OverallScore:   score,
		SkillScore:     score,
		MatchingSkills: matching,
		MissingSkills:  missing,
	}
	r.Recommendations = m.recommend(r)

	return r
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

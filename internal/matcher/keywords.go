package matcher

import (
	"regexp"
	"slices"
	"strings"
)

const minKeywordLength = 3

var tokenPattern = regexp.MustCompile(`\b[a-z][a-z+#.]+\b`)

var defaultStopwords = []string{
	"the", "a", "an", "and", "or", "but", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
	"used", "to", "of", "in", "for", "on", "with", "at", "by", "from", "as",
	"into", "through", "during", "before", "after", "above", "below", "between",
	"under", "again", "further", "then", "once", "here", "there", "when", "where",
	"why", "how", "all", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "just",
	"also", "now", "year", "years", "experience", "work", "working", "team", "using",
	"ability", "strong", "excellent", "good", "great", "knowledge", "skills", "skill",
	"required", "requirements", "looking", "seeking", "ideal", "candidate", "role",
	"position", "job", "company", "including", "etc", "i.e", "e.g", "well", "new",
}

var defaultTechTerms = []string{
	"c++", "c#", ".net", "node.js", "next.js", "vue.js", "react.js",
	"ci/cd", "sql", "nosql", "aws", "gcp", "api",
}

// DefaultStopwords returns a copy of the built-in stopword list.
func DefaultStopwords() []string {
	return slices.Clone(defaultStopwords)
}

// DefaultTechTerms returns a copy of the terms detected by substring search.
func DefaultTechTerms() []string {
	return slices.Clone(defaultTechTerms)
}

// KeywordExtractor reduces text to a set of lowercase keywords.
type KeywordExtractor struct {
	stopwords map[string]struct{}
	techTerms []string
}

// NewKeywordExtractor copies stopwords and techTerms, lowercased.
func NewKeywordExtractor(stopwords, techTerms []string) *KeywordExtractor {
	k := &KeywordExtractor{
		stopwords: make(map[string]struct{}, len(stopwords)),
		techTerms: make([]string, 0, len(techTerms)),
	}

	for _, w := range stopwords {
		k.stopwords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, term := range techTerms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			k.techTerms = append(k.techTerms, term)
		}
	}

	return k
}

// Extract returns the keyword set of text. Tokens shorter than three
// characters and stopwords are dropped. Tech terms are added when they occur
// anywhere in the text, even inside a longer word.
func (k *KeywordExtractor) Extract(text string) map[string]struct{} {
	lower := strings.ToLower(text)
	keywords := make(map[string]struct{})

	for _, token := range tokenPattern.FindAllString(lower, -1) {
		if len(token) < minKeywordLength {
			continue
		}
		if _, stop := k.stopwords[token]; stop {
			continue
		}
		keywords[token] = struct{}{}
	}

	for _, term := range k.techTerms {
		if strings.Contains(lower, term) {
			keywords[term] = struct{}{}
		}
	}

	return keywords
}

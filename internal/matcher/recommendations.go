package matcher

import "strings"

const (
	DefaultStrongThreshold   = 0.7
	DefaultModerateThreshold = 0.4

	recommendedKeywords = 5
	minMatchingKeywords = 5
)

// Recommendation messages.
const (
	RecommendStrong      = "Strong match! Your resume aligns well with this position."
	RecommendModerate    = "Good potential match. Consider highlighting more relevant skills."
	RecommendWeak        = "Resume could be improved for this specific role."
	RecommendMoreTerms   = "Try to include more specific technical terms from the job description."
	RecommendEmptyJob    = "Job description appears to be empty or too short."
	recommendAddKeywords = "Consider adding these keywords: "
)

func (m *Matcher) recommend(r Result) []string {
	var recs []string

	switch {
	case r.OverallScore >= m.strong:
		recs = append(recs, RecommendStrong)
	case r.OverallScore >= m.moderate:
		recs = append(recs, RecommendModerate)
	default:
		recs = append(recs, RecommendWeak)
	}

	if len(r.MissingSkills) > 0 {
		top := r.MissingSkills
		if len(top) > recommendedKeywords {
			top = top[:recommendedKeywords]
		}
		recs = append(recs, recommendAddKeywords+strings.Join(top, ", "))
	}

	if len(r.MatchingSkills) < minMatchingKeywords {
		recs = append(recs, RecommendMoreTerms)
	}

	return recs
}

// Package analytics aggregates extracted resumes into corpus-level counts.
package analytics

import (
	"cmp"
	"errors"
	"slices"

	"github.com/spigell/resumesense/internal/resume"
)

// DefaultTopN is the number of entries kept per ranking when topN is not positive.
const DefaultTopN = 10

// ErrNoRecords is returned when there is nothing to summarize.
var ErrNoRecords = errors.New("no resumes provided")

// Count is one label with its number of occurrences.
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Summary describes a set of resumes.
type Summary struct {
	TotalResumes  int     `json:"total_resumes" yaml:"total_resumes"`
	TopSkills     []Count `json:"top_skills" yaml:"top_skills"`
	TopEducation  []Count `json:"top_education" yaml:"top_education"`
	WithEmail     int     `json:"with_email" yaml:"with_email"`
	WithPhone     int     `json:"with_phone" yaml:"with_phone"`
	WithLinks     int     `json:"with_links" yaml:"with_links"`
	AverageSkills float64 `json:"average_skills" yaml:"average_skills"`
}

// Summarize counts skills and education entries across records. Every record
// contributes each distinct label once.
func Summarize(records []resume.Record, topN int) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrNoRecords
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	var (
		s         = Summary{TotalResumes: len(records)}
		skills    = make(map[string]int)
		education = make(map[string]int)
		total     int
	)

	for _, r := range records {
		countDistinct(skills, r.Skills)
		countDistinct(education, r.Education)
		total += len(r.Skills)

		if len(r.Emails) > 0 {
			s.WithEmail++
		}
		if len(r.Phones) > 0 {
			s.WithPhone++
		}
		if len(r.Links) > 0 {
			s.WithLinks++
		}
	}

	s.TopSkills = top(skills, topN)
	s.TopEducation = top(education, topN)
	s.AverageSkills = float64(total) / float64(len(records))

	return s, nil
}

func countDistinct(counts map[string]int, labels []string) {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		counts[l]++
	}
}

// top orders by count descending, then label ascending.
func top(counts map[string]int, n int) []Count {
	out := make([]Count, 0, len(counts))
	for label, c := range counts {
		out = append(out, Count{Label: label, Count: c})
	}

	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

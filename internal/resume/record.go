package resume

import (
	"fmt"
	"strings"
)

// NoSummary is the summary of a record with no populated fields.
const NoSummary = "No summary available"

const summarySkills = 5

// Record is the structured form of a resume. Every field may be empty.
type Record struct {
	Name       string   `json:"name" yaml:"name"`
	Emails     []string `json:"emails" yaml:"emails"`
	Phones     []string `json:"phones" yaml:"phones"`
	Links      []string `json:"links" yaml:"links"`
	Skills     []string `json:"skills" yaml:"skills"`
	Education  []string `json:"education" yaml:"education"`
	Experience []string `json:"experience" yaml:"experience"`
	Summary    string   `json:"summary" yaml:"summary"`
}

// Summarize builds the one-line digest from the other fields:
// name, top skills, education and experience counts joined by " | ".
func (r *Record) Summarize() string {
	var parts []string

	if r.Name != "" {
		parts = append(parts, "Candidate: "+r.Name)
	}

	if len(r.Skills) > 0 {
		top := r.Skills
		if len(top) > summarySkills {
			top = top[:summarySkills]
		}
		parts = append(parts, "Top Skills: "+strings.Join(top, ", "))
	}

	if len(r.Education) > 0 {
		parts = append(parts, fmt.Sprintf("Education entries: %d", len(r.Education)))
	}

	if len(r.Experience) > 0 {
		parts = append(parts, fmt.Sprintf("Experience entries: %d", len(r.Experience)))
	}

	if len(parts) == 0 {
		return NoSummary
	}

	return strings.Join(parts, " | ")
}

// HasSkill reports whether the record lists skill, ignoring case.
func (r *Record) HasSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	for _, s := range r.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

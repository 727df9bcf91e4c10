package ranking

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/spigell/resumesense/internal/matcher"
	"github.com/spigell/resumesense/internal/resume"
)

// Candidate is one resume scored against a job description.
type Candidate struct {
	ID     string         `json:"id" yaml:"id"`
	Source string         `json:"source" yaml:"source"`
	Record resume.Record  `json:"record" yaml:"record"`
	Match  matcher.Result `json:"match" yaml:"match"`
}

// NewCandidate assigns a fresh ID.
func NewCandidate(source string, record resume.Record, match matcher.Result) *Candidate {
	return &Candidate{
		ID:     uuid.NewString(),
		Source: source,
		Record: record,
		Match:  match,
	}
}

// Score is the overall match score.
func (c *Candidate) Score() float64 {
	return c.Match.OverallScore
}

// Candidates is an ordered collection of candidates.
type Candidates struct {
	Items []*Candidate `json:"items" yaml:"items"`
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

// IDs returns the candidate IDs in collection order.
func (c *Candidates) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		ids = append(ids, candidate.ID)
	}
	return ids
}

// Exclude removes the candidates with the given IDs and returns the IDs that
// were actually removed. Order of the remaining candidates is preserved.
func (c *Candidates) Exclude(ids []string) []string {
	targets := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		targets[id] = struct{}{}
	}

	var excluded []string
	c.Items = slices.DeleteFunc(c.Items, func(candidate *Candidate) bool {
		if _, ok := targets[candidate.ID]; ok {
			excluded = append(excluded, candidate.ID)
			return true
		}
		return false
	})
	return excluded
}

// SortByScore orders candidates by overall score, best first. Equal scores
// keep source order.
func (c *Candidates) SortByScore() {
	slices.SortStableFunc(c.Items, func(a, b *Candidate) int {
		if s := cmp.Compare(b.Score(), a.Score()); s != 0 {
			return s
		}
		return cmp.Compare(a.Source, b.Source)
	})
}

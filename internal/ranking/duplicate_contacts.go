package ranking

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type duplicateContactsFilter struct {
	disabled bool
	reason   string
}

// NewDuplicateContacts creates a filter that keeps one candidate per email
// address. Candidates must already be sorted, so the best score survives.
func NewDuplicateContacts() Filter {
	return &duplicateContactsFilter{}
}

func (f *duplicateContactsFilter) Name() string { return "duplicate_contacts" }

func (f *duplicateContactsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *duplicateContactsFilter) IsEnabled() bool { return !f.disabled }

func (f *duplicateContactsFilter) Validate(*Config) error { return nil }

func (f *duplicateContactsFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	seen := make(map[string]string)

	var duplicates []string
	for _, candidate := range c.Items {
		var kept string
		for _, email := range candidate.Record.Emails {
			if id, ok := seen[strings.ToLower(email)]; ok {
				kept = id
				break
			}
		}

		if kept != "" {
			deps.log().Debug("duplicate candidate",
				zap.String("candidate", candidate.ID),
				zap.String("source", candidate.Source),
				zap.String("kept", kept),
			)
			duplicates = append(duplicates, candidate.ID)
			continue
		}

		for _, email := range candidate.Record.Emails {
			seen[strings.ToLower(email)] = candidate.ID
		}
	}

	excluded := c.Exclude(duplicates)
	if len(excluded) > 0 {
		deps.log().Info("excluding candidates sharing an email address",
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *duplicateContactsFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}

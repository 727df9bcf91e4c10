package ranking

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type requiredSkillsFilter struct {
	disabled bool
	reason   string
	skills   []string
}

// NewRequiredSkills creates a filter that drops candidates lacking any of the configured skills.
func NewRequiredSkills() Filter {
	return &requiredSkillsFilter{}
}

func (f *requiredSkillsFilter) Name() string { return "required_skills" }

func (f *requiredSkillsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *requiredSkillsFilter) IsEnabled() bool { return !f.disabled }

func (f *requiredSkillsFilter) Validate(cfg *Config) error {
	f.skills = nil
	if cfg == nil {
		return nil
	}
	for _, skill := range cfg.RequiredSkills {
		if skill = strings.TrimSpace(skill); skill != "" {
			f.skills = append(f.skills, skill)
		}
	}
	return nil
}

func (f *requiredSkillsFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	if len(f.skills) == 0 {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	var lacking []string
	for _, candidate := range c.Items {
		for _, skill := range f.skills {
			if !candidate.Record.HasSkill(skill) {
				lacking = append(lacking, candidate.ID)
				break
			}
		}
	}

	excluded := c.Exclude(lacking)
	if len(excluded) > 0 {
		deps.log().Info("excluding candidates without required skills",
			zap.Strings("required_skills", f.skills),
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *requiredSkillsFilter) Status() Status {
	details := map[string]string{}
	if len(f.skills) > 0 {
		details["skills"] = strings.Join(f.skills, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

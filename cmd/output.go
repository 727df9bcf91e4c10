package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/spigell/resumesense/internal/analytics"
	"github.com/spigell/resumesense/internal/matcher"
	"github.com/spigell/resumesense/internal/ranking"
	"github.com/spigell/resumesense/internal/resume"
)

const notAvailable = "N/A"

// render writes v in the requested format. Text output is produced by text.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func table(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return notAvailable
	}
	return strings.Join(values, ", ")
}

func orNA(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

func writeRecord(w io.Writer, title string, r resume.Record) error {
	fmt.Fprintf(w, "Resume Analysis: %s\n\n", title)

	if err := table(w, [][2]string{
		{"Name", orNA(r.Name)},
		{"Email(s)", joinOrNA(r.Emails)},
		{"Phone(s)", joinOrNA(r.Phones)},
		{"Links", joinOrNA(r.Links)},
		{fmt.Sprintf("Skills (%d)", len(r.Skills)), joinOrNA(r.Skills)},
		{"Education", fmt.Sprintf("%d entries", len(r.Education))},
		{"Experience", fmt.Sprintf("%d entries", len(r.Experience))},
	}); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", r.Summary)
	return err
}

func percent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

func writeMatch(w io.Writer, r matcher.Result) error {
	if err := table(w, [][2]string{
		{"Overall Match Score", percent(r.OverallScore)},
		{"Skill Score", percent(r.SkillScore)},
		{"Matching Skills", joinOrNA(r.MatchingSkills)},
		{"Missing Skills", joinOrNA(r.MissingSkills)},
	}); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRecommendations:")
	for _, rec := range r.Recommendations {
		if _, err := fmt.Fprintf(w, "  - %s\n", rec); err != nil {
			return err
		}
	}
	return nil
}

func writeRanking(w io.Writer, c *ranking.Candidates) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSCORE\tFILE\tNAME\tMISSING")
	for i, candidate := range c.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			percent(candidate.Score()),
			candidate.Source,
			orNA(candidate.Record.Name),
			joinOrNA(candidate.Match.MissingSkills),
		)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s analytics.Summary) error {
	if err := table(w, [][2]string{
		{"Total resumes", fmt.Sprint(s.TotalResumes)},
		{"With email", fmt.Sprint(s.WithEmail)},
		{"With phone", fmt.Sprint(s.WithPhone)},
		{"With links", fmt.Sprint(s.WithLinks)},
		{"Average skills", fmt.Sprintf("%.1f", s.AverageSkills)},
	}); err != nil {
		return err
	}

	for _, section := range []struct {
		title  string
		counts []analytics.Count
	}{
		{"Top skills", s.TopSkills},
		{"Top education", s.TopEducation},
	} {
		fmt.Fprintf(w, "\n%s:\n", section.title)
		rows := make([][2]string, 0, len(section.counts))
		for _, c := range section.counts {
			rows = append(rows, [2]string{"  " + c.Label, fmt.Sprint(c.Count)})
		}
		if err := table(w, rows); err != nil {
			return err
		}
	}
	return nil
}

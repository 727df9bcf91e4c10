package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resumesense/internal/ranking"
)

type rankOutput struct {
	Filters    []ranking.Status     `json:"filters" yaml:"filters"`
	Candidates []*ranking.Candidate `json:"candidates" yaml:"candidates"`
}

var rankCmd = &cobra.Command{
	Use:   "rank RESUME...",
	Short: "Rank resumes against a job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rank(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("jd", "", "job description text or path to a file (asked interactively when omitted)")
	rankCmd.Flags().Float64("minimum-score", 0, "drop candidates scoring below this fraction")
	rankCmd.Flags().StringSlice("required-skills", nil, "drop candidates missing any of these skills")
	rankCmd.Flags().Bool("keep-duplicates", false, "do not collapse candidates sharing an email address")
	rankCmd.Flags().StringP("kind", "k", "", "resume document kind, overrides the file extension")

	viperBind(rankCmd, "ranking.minimum-score", "minimum-score")
	viperBind(rankCmd, "ranking.required-skills", "required-skills")
}

func rank(cmd *cobra.Command, paths []string) {
	ctx := context.Background()
	s := newService("rank")

	kind, err := kindFlag(cmd.Flag("kind").Value.String())
	if err != nil {
		s.logger.Fatal("parsing --kind", zap.Error(err))
	}

	jd, err := jobDescriptionValue(cmd.Flag("jd").Value.String(), cmd.Flags().Changed("jd"), os.Stdin)
	if err != nil {
		s.logger.Fatal("reading job description", zap.Error(err))
	}

	jobText, err := s.loadJobDescription(ctx, jd)
	if err != nil {
		s.logger.Fatal("loading job description", zap.Error(err), zap.String("hint", errorHint(err)))
	}

	docs, err := s.processDocuments(ctx, paths, kind)
	if err != nil {
		s.logger.Fatal("processing documents", zap.Error(err))
	}

	ok, failed, err := requireSucceeded(docs)
	if err != nil {
		s.logger.Fatal("no resume could be ranked", zap.Error(err), zap.Int("failed", failed), zap.String("hint", errorHint(err)))
	}
	if failed > 0 {
		s.logger.Warn("some resumes were skipped", zap.Int("failed", failed))
	}

	candidates := &ranking.Candidates{}
	for _, d := range ok {
		candidates.Items = append(candidates.Items, ranking.NewCandidate(d.Path, d.Record, s.matcher.Match(d.Text, jobText)))
	}

	keepDuplicates, _ := cmd.Flags().GetBool("keep-duplicates")
	steps := s.rankingFilters(keepDuplicates)

	ranked, err := ranking.Run(ctx, s.rankingConfig(), ranking.Deps{Logger: s.logger}, steps, candidates)
	if err != nil {
		s.logger.Fatal("ranking failed", zap.Error(err))
	}

	if ranked.Len() == 0 {
		s.logger.Info("no candidates left after filters")
	}

	out := rankOutput{Filters: ranking.Describe(steps), Candidates: ranked.Items}
	if err := render(os.Stdout, s.config.Output, out, func(w io.Writer) error {
		return writeRanking(w, ranked)
	}); err != nil {
		s.logger.Fatal("writing output", zap.Error(err))
	}
}

func (s *service) rankingConfig() *ranking.Config {
	return &ranking.Config{
		MinimumScore:   s.config.Ranking.MinimumScore,
		RequiredSkills: s.config.Ranking.RequiredSkills,
	}
}

func (s *service) rankingFilters(keepDuplicates bool) []ranking.Filter {
	steps := ranking.DefaultFilters()

	switch {
	case keepDuplicates:
		ranking.DisableByName(steps, "duplicate_contacts", "keep-duplicates flag is set")
	case !s.config.Ranking.DedupeContacts:
		ranking.DisableByName(steps, "duplicate_contacts", "disabled in config")
	}

	return steps
}

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match RESUME",
	Short: "Match a resume against a job description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		match(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("jd", "", "job description text or path to a file (asked interactively when omitted)")
	matchCmd.Flags().StringP("kind", "k", "", "resume document kind, overrides the file extension")
}

func match(cmd *cobra.Command, path string) {
	ctx := context.Background()
	s := newService("match")

	kind, err := kindFlag(cmd.Flag("kind").Value.String())
	if err != nil {
		s.logger.Fatal("parsing --kind", zap.Error(err))
	}

	resumeText, err := s.extractText(ctx, path, kind)
	if err != nil {
		s.logger.Fatal("extracting resume text", zap.Error(err), zap.String("hint", errorHint(err)))
	}

	jd, err := jobDescriptionValue(cmd.Flag("jd").Value.String(), cmd.Flags().Changed("jd"), os.Stdin)
	if err != nil {
		s.logger.Fatal("reading job description", zap.Error(err))
	}

	jobText, err := s.loadJobDescription(ctx, jd)
	if err != nil {
		s.logger.Fatal("loading job description", zap.Error(err), zap.String("hint", errorHint(err)))
	}

	result := s.matcher.Match(resumeText, jobText)
	s.logger.Debug("match finished",
		zap.Float64("overall_score", result.OverallScore),
		zap.Int("matching", len(result.MatchingSkills)),
		zap.Int("missing", len(result.MissingSkills)),
	)

	if err := render(os.Stdout, s.config.Output, result, func(w io.Writer) error {
		return writeMatch(w, result)
	}); err != nil {
		s.logger.Fatal("writing output", zap.Error(err))
	}
}

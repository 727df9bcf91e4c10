package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resumesense/internal/analytics"
	"github.com/spigell/resumesense/internal/resume"
)

var statsCmd = &cobra.Command{
	Use:   "stats RESUME...",
	Short: "Aggregate skills and education across resumes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stats(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntP("top", "n", analytics.DefaultTopN, "number of entries in each top list")
	statsCmd.Flags().StringP("kind", "k", "", "document kind, overrides the file extension")
}

func stats(cmd *cobra.Command, paths []string) {
	ctx := context.Background()
	s := newService("stats")

	kind, err := kindFlag(cmd.Flag("kind").Value.String())
	if err != nil {
		s.logger.Fatal("parsing --kind", zap.Error(err))
	}

	docs, err := s.processDocuments(ctx, paths, kind)
	if err != nil {
		s.logger.Fatal("processing documents", zap.Error(err))
	}

	ok, failed := succeeded(docs)
	records := make([]resume.Record, 0, len(ok))
	for _, d := range ok {
		records = append(records, d.Record)
	}

	top, _ := cmd.Flags().GetInt("top")
	summary, err := analytics.Summarize(records, top)
	if err != nil {
		s.logger.Fatal("summarizing resumes", zap.Error(err), zap.Int("failed", failed))
	}

	if err := render(os.Stdout, s.config.Output, summary, func(w io.Writer) error {
		return writeSummary(w, summary)
	}); err != nil {
		s.logger.Fatal("writing output", zap.Error(err))
	}
}

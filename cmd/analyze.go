package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resumesense/internal/resume"
)

type analyzeOutput struct {
	File   string        `json:"file" yaml:"file"`
	Record resume.Record `json:"resume" yaml:"resume"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Extract contacts, skills, education and experience from resumes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("kind", "k", "", "document kind, overrides the file extension")
}

func analyze(cmd *cobra.Command, paths []string) {
	ctx := context.Background()
	s := newService("analyze")

	kind, err := kindFlag(cmd.Flag("kind").Value.String())
	if err != nil {
		s.logger.Fatal("parsing --kind", zap.Error(err))
	}

	docs, err := s.processDocuments(ctx, paths, kind)
	if err != nil {
		s.logger.Fatal("processing documents", zap.Error(err))
	}

	ok, failed, err := requireSucceeded(docs)
	if err != nil {
		s.logger.Fatal("no document could be analyzed", zap.Error(err), zap.Int("failed", failed), zap.String("hint", errorHint(err)))
	}

	out := make([]analyzeOutput, 0, len(ok))
	for _, d := range ok {
		out = append(out, analyzeOutput{File: d.Path, Record: d.Record})
	}

	var v any = out
	if len(out) == 1 {
		v = out[0].Record
	}

	if err := render(os.Stdout, s.config.Output, v, func(w io.Writer) error {
		for i, d := range ok {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := writeRecord(w, filepath.Base(d.Path), d.Record); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		s.logger.Fatal("writing output", zap.Error(err))
	}

	if failed > 0 {
		s.logger.Warn("some documents were skipped", zap.Int("failed", failed), zap.Int("analyzed", len(ok)))
	}
}

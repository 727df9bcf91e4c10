package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resumesense/internal/logger"
)

const previewLength = 2000

type parseOutput struct {
	File       string `json:"file" yaml:"file"`
	Characters int    `json:"characters" yaml:"characters"`
	Text       string `json:"text" yaml:"text"`
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Extract the text of a resume (pdf, docx, txt, html)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolP("raw", "r", false, "print only the extracted text")
	parseCmd.Flags().StringP("kind", "k", "", "document kind, overrides the file extension (pdf, word-document, plain-text, html)")
}

func parse(cmd *cobra.Command, path string) {
	ctx := context.Background()
	s := newService("parse")

	kind, err := kindFlag(cmd.Flag("kind").Value.String())
	if err != nil {
		s.logger.Fatal("parsing --kind", zap.Error(err))
	}

	text, err := s.extractText(ctx, path, kind)
	if err != nil {
		s.logger.Fatal("extracting text", zap.Error(err), zap.String("hint", errorHint(err)))
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Println(text)
		return
	}

	out := parseOutput{File: path, Characters: utf8.RuneCountInString(text), Text: text}
	if err := render(os.Stdout, s.config.Output, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Extracted Text from %s (%d characters)\n\n%s\n",
			filepath.Base(path), out.Characters, logger.TruncateForLog(text, previewLength))
		return err
	}); err != nil {
		s.logger.Fatal("writing output", zap.Error(err))
	}
}

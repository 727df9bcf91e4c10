package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/spigell/resumesense/internal/source"
	"github.com/spigell/resumesense/internal/textextract"
)

const jobDescriptionName = "job description"

var errNoJobDescription = errors.New("job description is required")

// jobDescriptionValue returns the --jd value. A flag given explicitly is used
// as is, even when blank. Without the flag the value is asked for
// interactively on a terminal, otherwise it is read from stdin.
func jobDescriptionValue(flag string, set bool, stdin *os.File) (string, error) {
	if set || strings.TrimSpace(flag) != "" {
		return flag, nil
	}

	if isTerminal(stdin) {
		prompt := promptui.Prompt{
			Label: "Job description (text or path to a file)",
			Validate: func(in string) error {
				if strings.TrimSpace(in) == "" {
					return errNoJobDescription
				}
				return nil
			},
		}
		return prompt.Run()
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading %s from stdin: %w", jobDescriptionName, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errNoJobDescription
	}
	return string(data), nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// loadJobDescription resolves value as inline text or a file. Documents other
// than plain text go through the text extractor. A blank job description is
// returned as "" so the matcher can report it.
func (s *service) loadJobDescription(ctx context.Context, value string) (string, error) {
	src := source.Resolve(jobDescriptionName, value)

	if src.File != "" {
		kind, err := textextract.KindFromPath(src.File)
		if err == nil && kind != textextract.KindPlainText {
			text, err := s.text.ExtractFileAs(ctx, src.File, kind)
			if err != nil {
				return "", err
			}
			src = source.Source{Name: src.Name, Value: text}
		}
	}

	text, err := source.Load(src)
	if errors.Is(err, source.ErrEmpty) {
		s.logger.Warn("job description is empty", zap.Error(err))
		return "", nil
	}
	return text, err
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resumesense/internal/logger"
	"github.com/spigell/resumesense/internal/resume"
	"github.com/spigell/resumesense/internal/textextract"
)

// document is one processed input file.
type document struct {
	Path   string
	Text   string
	Record resume.Record
	Err    error
}

// processDocuments extracts text and entities from every path, running at
// most workers extractions at a time. Results keep the order of paths. A
// failing document is reported in its Err field and does not stop the others.
func (s *service) processDocuments(ctx context.Context, paths []string, kind textextract.Kind) ([]document, error) {
	docs := make([]document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			docs[i].Path = path

			text, err := s.extractText(ctx, path, kind)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				docs[i].Err = err
				logger.WithDocument(s.logger, path, kind.String()).Error("processing document", zap.Error(err))
				return nil
			}

			docs[i].Text = text
			docs[i].Record = s.entities.Extract(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// succeeded returns the documents without errors and the number of failures.
func succeeded(docs []document) ([]document, int) {
	ok := make([]document, 0, len(docs))
	for _, d := range docs {
		if d.Err == nil {
			ok = append(ok, d)
		}
	}
	return ok, len(docs) - len(ok)
}

var errNothingProcessed = errors.New("no document could be processed")

// requireSucceeded is succeeded for commands that need at least one document.
// When every document failed the first failure is wrapped, so errorHint still
// recognizes it.
func requireSucceeded(docs []document) ([]document, int, error) {
	ok, failed := succeeded(docs)
	switch {
	case len(ok) > 0:
		return ok, failed, nil
	case len(docs) == 0:
		return nil, 0, errNothingProcessed
	}
	return nil, failed, fmt.Errorf("%w: %w", errNothingProcessed, docs[0].Err)
}

// errorHint returns a short user-facing hint for known extraction errors.
func errorHint(err error) string {
	switch {
	case errors.Is(err, textextract.ErrNotFound):
		return "check the file path"
	case errors.Is(err, textextract.ErrUnsupportedKind):
		return "supported formats are pdf, docx, doc, txt, md and html; use --kind to override"
	case errors.Is(err, textextract.ErrExtractionFailure):
		return "the document could not be read; it may be scanned, encrypted or corrupted"
	}
	return ""
}

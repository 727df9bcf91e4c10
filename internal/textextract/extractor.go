package textextract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resumesense/internal/logger"
	"go.uber.org/zap"
)

const previewLength = 120

// Backend reads text out of one document format.
type Backend interface {
	Name() string
	// Available reports whether the backend can run in the current environment,
	// e.g. whether an external binary it depends on is installed.
	Available() bool
	Extract(ctx context.Context, data []byte) (string, error)
}

// Extractor turns document bytes into normalized text. For every kind it holds an
// ordered chain of backends; the first available backend that returns non-empty
// text wins. It keeps no per-call state and is safe for concurrent use.
type Extractor struct {
	logger  *zap.Logger
	chains  map[Kind][]Backend
	tempDir string
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithBackends replaces the backend chain used for kind.
func WithBackends(kind Kind, backends ...Backend) Option {
	return func(e *Extractor) {
		e.chains[kind] = backends
	}
}

// WithTempDir sets the directory used by backends that must spool data to disk.
func WithTempDir(dir string) Option {
	return func(e *Extractor) {
		e.tempDir = dir
	}
}

// New creates an Extractor with the default backend chains.
func New(log *zap.Logger, opts ...Option) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Extractor{
		logger: log,
		chains: make(map[Kind][]Backend),
	}

	for _, opt := range opts {
		opt(e)
	}

	spool := &docconvBackend{tempDir: e.tempDir}
	defaults := map[Kind][]Backend{
		KindPDF:       {&ledongthucBackend{}, &einoBackend{}, &pdftotextBackend{spool}},
		KindWord:      {&ooxmlBackend{}, &docconvWordBackend{spool}},
		KindPlainText: {&plainBackend{}},
		KindHTML:      {&htmlBackend{}},
	}
	for kind, chain := range defaults {
		if _, ok := e.chains[kind]; !ok {
			e.chains[kind] = chain
		}
	}

	return e
}

// ExtractFile reads path and extracts its text using the kind derived from the
// file extension.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	kind, err := KindFromPath(path)
	if err != nil {
		return "", err
	}

	return e.ExtractFileAs(ctx, path, kind)
}

// ExtractFileAs reads path and extracts its text as the given kind.
func (e *Extractor) ExtractFileAs(ctx context.Context, path string, kind Kind) (string, error) {
	if _, ok := e.chains[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: reading %s: %w", ErrExtractionFailure, path, err)
	}

	return e.extract(ctx, data, kind, logger.WithDocument(e.logger, path, kind.String()))
}

// Extract returns the normalized text of data read as kind.
func (e *Extractor) Extract(ctx context.Context, data []byte, kind Kind) (string, error) {
	return e.extract(ctx, data, kind, logger.WithDocument(e.logger, "", kind.String()))
}

func (e *Extractor) extract(ctx context.Context, data []byte, kind Kind, log *zap.Logger) (string, error) {
	chain, ok := e.chains[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	var (
		errs      []error
		succeeded bool
	)

	for _, backend := range chain {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		blog := log.With(zap.String(logger.FieldBackend, backend.Name()))
		if !backend.Available() {
			blog.Debug("backend is not available, skipping")
			continue
		}

		text, err := runBackend(ctx, backend, data)
		if err != nil {
			blog.Warn("backend failed, trying the next one", zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
			continue
		}

		succeeded = true
		normalized := Normalize(text)
		if normalized == "" {
			blog.Debug("backend returned empty text, trying the next one")
			continue
		}

		blog.Debug("text extracted",
			zap.Int("characters", utf8.RuneCountInString(normalized)),
			zap.String("preview", logger.TruncateForLog(normalized, previewLength)),
		)
		return normalized, nil
	}

	if succeeded {
		log.Info("document has no extractable text")
		return "", nil
	}

	if len(errs) == 0 {
		return "", fmt.Errorf("%w: no backend available for %s", ErrExtractionFailure, kind)
	}

	return "", fmt.Errorf("%w: %w", ErrExtractionFailure, errors.Join(errs...))
}

// runBackend calls the backend once. Some PDF readers panic on malformed
// streams; a panic is reported as that backend's error.
func runBackend(ctx context.Context, backend Backend, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reader panic: %v", r)
		}
	}()

	text, err = backend.Extract(ctx, data)
	return text, err
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

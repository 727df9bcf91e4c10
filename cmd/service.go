package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resumesense/internal/logger"
	"github.com/spigell/resumesense/internal/matcher"
	"github.com/spigell/resumesense/internal/resume"
	"github.com/spigell/resumesense/internal/textextract"
)

// service wires the extractors and the matcher for one command run.
type service struct {
	logger   *zap.Logger
	config   *Config
	text     *textextract.Extractor
	entities *resume.Extractor
	matcher  *matcher.Matcher
}

// newService creates the logger and builds every component from the config.
// Unrecoverable errors terminate the process.
func newService(command string) *service {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	l = logger.WithFields(l, zap.String(logger.FieldRunID, uuid.NewString()))

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Debug("starting", zap.String("command", command), zap.String("version", version))

	// do not bother error since there is a valid decoded config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return buildService(l, config)
}

func buildService(l *zap.Logger, config *Config) *service {
	return &service{
		logger: l,
		config: config,
		text:   textextract.New(l, textextract.WithTempDir(config.Extract.TempDir)),
		entities: resume.NewExtractor(
			resume.DefaultVocabulary().With(config.Vocabulary.ExtraSkills...),
			resume.WithMaxTextLength(config.MaxTextLength),
		),
		matcher: matcher.New(
			matcher.WithExtraStopwords(config.Matcher.ExtraStopwords...),
			matcher.WithThresholds(config.Matcher.StrongThreshold, config.Matcher.ModerateThreshold),
			matcher.WithMaxTextLength(config.MaxTextLength),
		),
	}
}

// extractText reads a document. An empty kind derives the kind from the
// file extension.
func (s *service) extractText(ctx context.Context, path string, kind textextract.Kind) (string, error) {
	if kind == "" {
		return s.text.ExtractFile(ctx, path)
	}
	return s.text.ExtractFileAs(ctx, path, kind)
}

// kindFlag parses the optional --kind flag value.
func kindFlag(value string) (textextract.Kind, error) {
	if value == "" {
		return "", nil
	}
	return textextract.ParseKind(value)
}

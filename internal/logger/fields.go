package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldFile is the structured log field key for the source document path.
	FieldFile = "file"
	// FieldKind is the structured log field key for the declared document kind.
	FieldKind = "kind"
	// FieldBackend is the structured log field key for the text extraction backend.
	FieldBackend = "backend"
	// FieldRunID is the structured log field key that ties together all entries of one command run.
	FieldRunID = "run_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// DocumentFields returns standard zap fields that describe a source document.
// Empty values are ignored to keep log entries compact when information is missing.
func DocumentFields(file, kind string) []zap.Field {
	return StringFields(
		StringField{Key: FieldFile, Value: file},
		StringField{Key: FieldKind, Value: kind},
	)
}

// WithDocument attaches the document fields to the provided logger.
func WithDocument(logger *zap.Logger, file, kind string) *zap.Logger {
	return WithFields(logger, DocumentFields(file, kind)...)
}

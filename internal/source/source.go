// Package source resolves text inputs that may be given inline or as a file.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmpty is returned when a source resolves to blank text.
var ErrEmpty = errors.New("empty input")

// Source describes how to load a text value.
type Source struct {
	// Name is used in error messages to give more context about the input.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file containing the text. When set it takes
	// precedence over Value.
	File string
}

// Load returns the resolved text from the provided source. When File is set
// it takes precedence over Value. The returned text is always trimmed. An
// error wrapping ErrEmpty is returned when neither File nor Value contain text.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "input"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	text := strings.TrimSpace(src.Value)
	if text == "" {
		if src.File != "" {
			return "", fmt.Errorf("%w: %s file %q", ErrEmpty, name, src.File)
		}
		return "", fmt.Errorf("%w: %s is not provided", ErrEmpty, name)
	}

	return text, nil
}

// Resolve builds a Source from a flag value that is either inline text or a
// path. A value naming an existing regular file is read as a file.
func Resolve(name, valueOrPath string) Source {
	if IsFile(valueOrPath) {
		return Source{Name: name, File: valueOrPath}
	}
	return Source{Name: name, Value: valueOrPath}
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	path = strings.TrimSpace(path)
	if path == "" || strings.Contains(path, "\n") {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

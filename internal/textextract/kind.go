package textextract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the declared format of a source document.
type Kind string

const (
	KindPDF       Kind = "pdf"
	KindWord      Kind = "word-document"
	KindPlainText Kind = "plain-text"
	KindHTML      Kind = "html"
)

var (
	// ErrUnsupportedKind is returned for a document kind outside the supported set.
	ErrUnsupportedKind = errors.New("unsupported document kind")
	// ErrNotFound is returned when the referenced source does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrExtractionFailure is returned when no backend could read the document.
	ErrExtractionFailure = errors.New("text extraction failed")
)

var extensions = map[string]Kind{
	".pdf":  KindPDF,
	".docx": KindWord,
	".doc":  KindWord,
	".txt":  KindPlainText,
	".text": KindPlainText,
	".md":   KindPlainText,
	".html": KindHTML,
	".htm":  KindHTML,
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindPDF, KindWord, KindPlainText, KindHTML}
}

// ParseKind accepts a kind name ("pdf", "word-document", ...) or a file
// extension with or without the leading dot.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if name == string(k) {
			return k, nil
		}
	}

	if name != "" && !strings.HasPrefix(name, ".") {
		name = "." + name
	}
	if k, ok := extensions[name]; ok {
		return k, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// KindFromPath maps a file name to its kind by extension.
func KindFromPath(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if k, ok := extensions[ext]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: extension %q of %s", ErrUnsupportedKind, ext, filepath.Base(path))
}

func (k Kind) String() string {
	return string(k)
}

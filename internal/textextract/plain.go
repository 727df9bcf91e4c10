package textextract

import (
	"context"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// plainBackend decodes plain text as UTF-8. A byte order mark selects UTF-16
// or is stripped; invalid byte sequences are dropped. It never fails.
type plainBackend struct{}

func (b *plainBackend) Name() string { return "plain-text" }

func (b *plainBackend) Available() bool { return true }

func (b *plainBackend) Extract(_ context.Context, data []byte) (string, error) {
	return decodePlain(data), nil
}

func decodePlain(data []byte) string {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		out = data
	}
	return strings.ToValidUTF8(string(out), "")
}

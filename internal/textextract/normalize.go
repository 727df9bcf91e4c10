package textextract

import (
	"regexp"
	"strings"
	"unicode"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Normalize turns extractor output into the canonical text form consumed by
// entity extraction and matching. Line structure is preserved:
//   - CRLF and CR become LF;
//   - NUL and other C0/C1 control characters are removed (LF is kept);
//   - runs of horizontal whitespace inside a line become one space and lines are trimmed;
//   - three or more consecutive line breaks become exactly one blank line;
//   - the result is trimmed.
//
// The function is deterministic and idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.IsControl(r), r == '\uFEFF':
			// dropped
		default:
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	text = strings.Join(lines, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

package textextract

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty",
			input:  "",
			expect: "",
		},
		{
			name:   "unifies line endings",
			input:  "Jane Doe\r\nEngineer\rBerlin",
			expect: "Jane Doe\nEngineer\nBerlin",
		},
		{
			name:   "strips control characters",
			input:  "Ja\x00ne\x07 Doe\x1b\u0085\u009f",
			expect: "Jane Doe",
		},
		{
			name:   "collapses horizontal whitespace and trims lines",
			input:  "  Skills:\t\tGo,   Python  \n   Docker ",
			expect: "Skills: Go, Python\nDocker",
		},
		{
			name:   "collapses three or more blank lines",
			input:  "Education\n\n\n\n\nMIT\n\nExperience",
			expect: "Education\n\nMIT\n\nExperience",
		},
		{
			name:   "whitespace-only lines count as blank",
			input:  "A\n \t \n  \n\t\nB",
			expect: "A\n\nB",
		},
		{
			name:   "drops byte order mark",
			input:  "\ufeffResume",
			expect: "Resume",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Normalize(tt.input))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"\x00\x01\x02 header \r\n\r\n\r\n\r\n body \x7f\x80\x9f",
		strings.Repeat("line\n", 5) + strings.Repeat("\n", 10) + "tail\f\v",
		"\t\t\n\n\n\n\n\t",
		"naïve café · résumé next",
	}

	for _, input := range inputs {
		out := Normalize(input)

		for _, r := range out {
			if r != '\n' && unicode.IsControl(r) {
				t.Fatalf("control character %U left in %q", r, out)
			}
		}
		assert.NotContains(t, out, "\n\n\n")
		assert.Equal(t, strings.TrimSpace(out), out)
		assert.Equal(t, out, Normalize(out), "normalize must be idempotent")
	}
}

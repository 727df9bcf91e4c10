package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []byte
		expect string
	}{
		{
			name:   "utf-8",
			input:  []byte("Résumé"),
			expect: "Résumé",
		},
		{
			name:   "invalid sequences are dropped",
			input:  []byte("Py\xc3thon\xff"),
			expect: "Python",
		},
		{
			name:   "utf-8 bom is stripped",
			input:  []byte("\xef\xbb\xbfJane"),
			expect: "Jane",
		},
		{
			name:   "utf-16le with bom",
			input:  []byte{0xff, 0xfe, 'G', 0, 'o', 0},
			expect: "Go",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, decodePlain(tt.input))
		})
	}
}

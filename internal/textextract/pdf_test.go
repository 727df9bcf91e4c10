package textextract

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resumesense/internal/resume"
)

// testResumeContent draws one line per Td move. The TJ line separates its
// two words by kerning only, the way most layout engines emit word gaps.
const testResumeContent = `BT
/F1 12 Tf
72 720 Td
(Jane Alice Doe) Tj
0 -20 Td
(Education) Tj
0 -20 Td
(BSc Computer Science) Tj
0 -20 Td
[(Work) -300 (Experience)] TJ
0 -20 Td
(Engineer at Acme) Tj
ET`

const testResumeLines = "Jane Alice Doe\nEducation\nBSc Computer Science\nWork Experience\nEngineer at Acme"

// buildPDF writes a single-page PDF with an uncompressed content stream and a
// Helvetica font, computing the xref offsets as it goes.
func buildPDF(t *testing.T, content string) []byte {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestLedongthucBackendKeepsLines(t *testing.T) {
	data := buildPDF(t, testResumeContent)

	text, err := (&ledongthucBackend{}).Extract(context.Background(), data)
	require.NoError(t, err)

	assert.Contains(t, text, testResumeLines)
}

func TestPDFChainKeepsLinesAndWordSpacing(t *testing.T) {
	data := buildPDF(t, testResumeContent)

	text, err := New(nil).Extract(context.Background(), data, KindPDF)
	require.NoError(t, err)

	assert.Contains(t, text, testResumeLines)
	assert.NotContains(t, text, "WorkExperience")
}

func TestPDFResumeSections(t *testing.T) {
	data := buildPDF(t, testResumeContent)

	text, err := New(nil).Extract(context.Background(), data, KindPDF)
	require.NoError(t, err)

	rec := resume.NewExtractor(resume.DefaultVocabulary()).Extract(text)
	assert.Equal(t, "Jane Alice Doe", rec.Name)
	assert.Equal(t, []string{"BSc Computer Science"}, rec.Education)
	assert.Equal(t, []string{"Engineer at Acme"}, rec.Experience)
}

func TestEinoBackendReadsFixture(t *testing.T) {
	data := buildPDF(t, testResumeContent)

	text, err := (&einoBackend{}).Extract(context.Background(), data)
	require.NoError(t, err)

	assert.Contains(t, text, "Engineer at Acme")
}

func glyphs(x, y, size, width float64, s string) []pdf.Text {
	out := make([]pdf.Text, 0, len(s))
	for _, r := range s {
		out = append(out, pdf.Text{FontSize: size, X: x, Y: y, W: width, S: string(r)})
		x += width
	}
	return out
}

func TestTextLineRender(t *testing.T) {
	tests := []struct {
		name   string
		glyphs []pdf.Text
		want   string
	}{
		{
			name:   "adjacent glyphs form one word",
			glyphs: glyphs(72, 700, 10, 5, "Golang"),
			want:   "Golang",
		},
		{
			name:   "gap between runs becomes a space",
			glyphs: append(glyphs(72, 700, 10, 5, "Go"), glyphs(90, 700, 10, 5, "Rust")...),
			want:   "Go Rust",
		},
		{
			name:   "explicit space glyph is not doubled",
			glyphs: append(glyphs(72, 700, 10, 5, "Go "), glyphs(95, 700, 10, 5, "Rust")...),
			want:   "Go Rust",
		},
		{
			name:   "runs drawn out of order are sorted by position",
			glyphs: append(glyphs(120, 700, 10, 5, "Berlin"), glyphs(72, 700, 10, 5, "Acme")...),
			want:   "Acme Berlin",
		},
		{
			name:   "zero width glyphs keep stream order",
			glyphs: glyphs(72, 700, 12, 0, "Jane Doe"),
			want:   "Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := &textLine{glyphs: tt.glyphs}
			assert.Equal(t, tt.want, line.render())
		})
	}
}

func TestFindLineTolerance(t *testing.T) {
	top := &textLine{y: 700}
	bottom := &textLine{y: 680}
	lines := []*textLine{top, bottom}

	assert.Same(t, top, findLine(lines, pdf.Text{FontSize: 12, Y: 701.5}))
	assert.Same(t, bottom, findLine(lines, pdf.Text{FontSize: 12, Y: 679}))
	assert.Nil(t, findLine(lines, pdf.Text{FontSize: 12, Y: 690}))
}

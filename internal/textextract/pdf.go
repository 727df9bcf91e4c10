package textextract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"sort"
	"strings"

	einopdf "github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoparser "github.com/cloudwego/eino/components/document/parser"
	"github.com/ledongthuc/pdf"
)

// ledongthucBackend reads the PDF text layer glyph by glyph and rebuilds the
// visual lines from glyph positions, so section headers stay on lines of their
// own.
type ledongthucBackend struct{}

func (b *ledongthucBackend) Name() string { return "ledongthuc-pdf" }

func (b *ledongthucBackend) Available() bool { return true }

func (b *ledongthucBackend) Extract(_ context.Context, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil || isBlank(text) {
			text, err = page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("page %d: %w", i, err)
			}
		}

		out.WriteString(text)
		out.WriteString("\n\n")
	}

	return out.String(), nil
}

const (
	// glyphs whose baselines differ by less than this share a line
	lineTolerance = 0.3
	// a horizontal gap wider than this starts a new word
	wordGap = 0.15
)

type textLine struct {
	y      float64
	glyphs []pdf.Text
}

// pageText groups the page glyphs into lines by baseline, orders lines top
// to bottom and glyphs left to right, and puts a space where the gap between
// two glyphs is wide enough to separate words.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read content: %v", r)
		}
	}()

	var lines []*textLine
	for _, g := range page.Content().Text {
		if g.S == "" || g.S == "\n" || g.S == "\r" {
			continue
		}
		line := findLine(lines, g)
		if line == nil {
			line = &textLine{y: g.Y}
			lines = append(lines, line)
		}
		line.glyphs = append(line.glyphs, g)
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, line.render())
	}

	return strings.Join(rendered, "\n"), nil
}

func findLine(lines []*textLine, g pdf.Text) *textLine {
	tolerance := math.Max(g.FontSize*lineTolerance, 1)
	for i := len(lines) - 1; i >= 0; i-- {
		if math.Abs(lines[i].y-g.Y) <= tolerance {
			return lines[i]
		}
	}
	return nil
}

func (l *textLine) render() string {
	// Fonts without a width table report zero widths, so glyphs of one string
	// share an X and only the stream order tells them apart.
	sort.SliceStable(l.glyphs, func(i, j int) bool { return l.glyphs[i].X < l.glyphs[j].X })

	var b strings.Builder
	for i, g := range l.glyphs {
		if i > 0 {
			prev := l.glyphs[i-1]
			gap := g.X - (prev.X + prev.W)
			if gap > math.Max(g.FontSize, prev.FontSize)*wordGap && !isBlank(prev.S) && !isBlank(g.S) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}

	return strings.TrimRight(b.String(), " \t")
}

// einoBackend is the general-purpose reader used when the text-layer reader
// fails or finds nothing.
type einoBackend struct{}

func (b *einoBackend) Name() string { return "eino-pdf" }

func (b *einoBackend) Available() bool { return true }

func (b *einoBackend) Extract(ctx context.Context, data []byte) (string, error) {
	p, err := einopdf.NewPDFParser(ctx, &einopdf.Config{ToPages: false})
	if err != nil {
		return "", fmt.Errorf("create eino pdf parser: %w", err)
	}

	docs, err := p.Parse(ctx, bytes.NewReader(data), einoparser.WithURI("memory://document.pdf"))
	if err != nil {
		return "", fmt.Errorf("eino parse: %w", err)
	}
	if len(docs) == 0 {
		return "", errors.New("eino parser returned no documents")
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		parts = append(parts, doc.Content)
	}

	return strings.Join(parts, "\n\n"), nil
}

// pdftotextBackend delegates to poppler's pdftotext through docconv. It is
// only available when the binary is installed.
type pdftotextBackend struct {
	spool *docconvBackend
}

func (b *pdftotextBackend) Name() string { return "docconv-pdftotext" }

func (b *pdftotextBackend) Available() bool {
	_, err := exec.LookPath("pdftotext")
	return err == nil
}

func (b *pdftotextBackend) Extract(ctx context.Context, data []byte) (string, error) {
	return b.spool.convert(ctx, data, ".pdf")
}

package textextract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"code.sajari.com/docconv"
	"github.com/nguyenthenguyen/docx"
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}

	errLegacyWord = errors.New("legacy binary .doc is not an OOXML document")
)

// ooxmlBackend reads word/document.xml. Paragraph text comes first in document
// order, then the text of every table cell row by row. Tables are appended
// rather than interleaved because their position relative to the surrounding
// paragraphs is not reliably recoverable.
type ooxmlBackend struct{}

func (b *ooxmlBackend) Name() string { return "ooxml" }

func (b *ooxmlBackend) Available() bool { return true }

func (b *ooxmlBackend) Extract(_ context.Context, data []byte) (string, error) {
	if bytes.HasPrefix(data, oleMagic) {
		return "", errLegacyWord
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, cells, err := walkDocumentXML(doc.Editable().GetContent())
	if err != nil {
		return "", err
	}

	return strings.Join(append(paragraphs, cells...), "\n"), nil
}

// walkDocumentXML returns the non-empty body paragraphs and the non-empty table
// cells. Nested tables contribute to the enclosing top-level cell.
func walkDocumentXML(content string) (paragraphs, cells []string, err error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		tableDepth int
		inText     bool
		para       strings.Builder
		cellParas  []string
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tc":
				if tableDepth == 1 {
					cellParas = cellParas[:0]
				}
			case "p":
				para.Reset()
			case "t":
				inText = true
			case "tab":
				para.WriteString("\t")
			case "br", "cr":
				para.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				text := para.String()
				if isBlank(text) {
					continue
				}
				if tableDepth == 0 {
					paragraphs = append(paragraphs, text)
				} else {
					cellParas = append(cellParas, text)
				}
			case "tc":
				if tableDepth == 1 && len(cellParas) > 0 {
					cells = append(cells, strings.Join(cellParas, "\n"))
				}
			case "tbl":
				tableDepth--
			}
		}
	}

	return paragraphs, cells, nil
}

// docconvBackend spools the document to a temporary file and lets docconv pick
// the converter by extension. The file is removed on every return path.
type docconvBackend struct {
	tempDir string
}

func (b *docconvBackend) convert(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(b.tempDir, "resumesense-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("docconv: %w", err)
	}

	return res.Body, nil
}

// docconvWordBackend is the Word fallback. It also covers legacy .doc files
// when docconv's external converters are installed.
type docconvWordBackend struct {
	spool *docconvBackend
}

func (b *docconvWordBackend) Name() string { return "docconv-word" }

func (b *docconvWordBackend) Available() bool { return true }

func (b *docconvWordBackend) Extract(ctx context.Context, data []byte) (string, error) {
	ext := ".docx"
	if !bytes.HasPrefix(data, zipMagic) {
		ext = ".doc"
	}
	return b.spool.convert(ctx, data, ext)
}

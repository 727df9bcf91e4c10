package textextract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Alice Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Education</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Python</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>5 years</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Django</w:t></w:r></w:p><w:p><w:r><w:t>REST</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p></w:p>
    <w:p><w:r><w:t>BSc Computer</w:t></w:r><w:r><w:tab/><w:t>Science</w:t></w:r></w:p>
  </w:body>
</w:document>`

const testRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const testContentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct{ name, body string }{
		{"[Content_Types].xml", testContentTypesXML},
		{"word/_rels/document.xml.rels", testRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestWalkDocumentXMLAppendsTablesAfterParagraphs(t *testing.T) {
	paragraphs, cells, err := walkDocumentXML(testDocumentXML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Alice Doe", "Education", "BSc Computer\tScience"}, paragraphs)
	assert.Equal(t, []string{"Python", "5 years", "Django\nREST"}, cells)
}

func TestWalkDocumentXMLRejectsBrokenXML(t *testing.T) {
	_, _, err := walkDocumentXML("<w:document><w:body><w:p>")
	assert.Error(t, err)
}

func TestOOXMLBackend(t *testing.T) {
	e := New(nil, WithBackends(KindWord, &ooxmlBackend{}))

	text, err := e.Extract(context.Background(), buildDocx(t, testDocumentXML), KindWord)
	require.NoError(t, err)
	assert.Equal(t, "Jane Alice Doe\nEducation\nBSc Computer Science\nPython\n5 years\nDjango\nREST", text)
}

func TestOOXMLBackendRejectsLegacyDoc(t *testing.T) {
	legacy := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...)

	_, err := (&ooxmlBackend{}).Extract(context.Background(), legacy)
	assert.ErrorIs(t, err, errLegacyWord)
}

package textextract

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlSpaces = regexp.MustCompile(`\s+`)

var skippedElements = map[string]bool{
	"head": true, "script": true, "style": true, "noscript": true, "template": true, "svg": true,
}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "dd": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

// htmlBackend reads saved job postings. Source formatting whitespace is
// collapsed as a browser would; block elements start new lines.
type htmlBackend struct{}

func (b *htmlBackend) Name() string { return "goquery-html" }

func (b *htmlBackend) Available() bool { return true }

func (b *htmlBackend) Extract(_ context.Context, data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(decodePlain(data))))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var out strings.Builder
	writeHTMLText(&out, doc.Selection)

	return out.String(), nil
}

func writeHTMLText(out *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text":
			out.WriteString(htmlSpaces.ReplaceAllString(c.Text(), " "))
		case strings.HasPrefix(name, "#"), skippedElements[name]:
		case name == "br":
			out.WriteString("\n")
		case blockElements[name]:
			out.WriteString("\n")
			writeHTMLText(out, c)
			out.WriteString("\n")
		default:
			writeHTMLText(out, c)
		}
	})
}

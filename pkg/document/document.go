package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrNoText = errors.New("document has no extractable text")

// Document is the plain text of a PDF split into selectable paragraphs.
type Document struct {
	Path       string
	Title      string
	Pages      []string
	Paragraphs []Paragraph
}

type Paragraph struct {
	Page int // 1-based
	Text string
}

// Load extracts the text of every page of the PDF at path.
func Load(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load PDF file: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	doc := FromPages(path, pages)
	if len(doc.Paragraphs) == 0 {
		return nil, ErrNoText
	}
	return doc, nil
}

// FromPages builds a Document from already extracted page texts.
func FromPages(path string, pages []string) *Document {
	doc := &Document{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Pages: pages,
	}
	for i, page := range pages {
		for _, text := range SplitParagraphs(page) {
			doc.Paragraphs = append(doc.Paragraphs, Paragraph{Page: i + 1, Text: text})
		}
	}
	return doc
}

var (
	paragraphRX = regexp.MustCompile(`\n\s*\n`)
	spaceRX     = regexp.MustCompile(`\s+`)
)

// SplitParagraphs splits on blank lines, or on single newlines when the text
// has no blank line. Whitespace inside a paragraph is collapsed.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var blocks []string
	if paragraphRX.MatchString(text) {
		blocks = paragraphRX.Split(text, -1)
	} else {
		blocks = strings.Split(text, "\n")
	}

	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(spaceRX.ReplaceAllString(b, " "))
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}

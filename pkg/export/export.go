// Package export lays a generated story out as a PDF: a title followed by
// the word-wrapped body. Long bodies flow onto further pages.
//
// The PDF uses the Helvetica core font, which only covers Windows-1252.
// Text outside that code page is written as Unsupported.
package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

const DefaultTitle = "My Alternate Story"

// WrapWidth is the body line width in characters.
const WrapWidth = 90

// Unsupported stands in for each character the core font cannot draw.
const Unsupported = '?'

var ErrEmptyBody = errors.New("nothing to export")

// Encode converts s to the Windows-1252 bytes the core font expects.
// Combining sequences are composed first; emoji variation selectors and
// joiners are dropped.
func Encode(s string) string {
	var b strings.Builder
	for _, r := range norm.NFC.String(s) {
		if r == '\u200d' || unicode.Is(unicode.Variation_Selector, r) {
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
		} else {
			b.WriteByte(Unsupported)
		}
	}
	return b.String()
}

// Write renders the PDF to w.
func Write(w io.Writer, title, body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrEmptyBody
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	for _, line := range strings.Split(wordwrap.String(title, WrapWidth/2), "\n") {
		pdf.CellFormat(0, 8, Encode(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(wordwrap.String(body, WrapWidth), "\n") {
		pdf.CellFormat(0, 5, Encode(line), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

// SaveFile writes "<title>.pdf" into dir and returns its path.
func SaveFile(dir, title, body string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, title+".pdf")

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, title, body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	return path, f.Close()
}

package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	Extract(name string, data []byte) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() Extractor {
	return &textExtractor{}
}

var pdfMagic = []byte("%PDF-")

// Extract dispatches on extension first and falls back to content sniffing,
// so PDFs uploaded with a wrong or missing extension still parse.
func (e *textExtractor) Extract(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".pdf" || bytes.HasPrefix(data, pdfMagic) {
		return extractPdf(data)
	}
	return string(data), nil
}

func extractPdf(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files; one corrupt upload
	// must not take the whole ingestion run down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	if reader.NumPage() == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

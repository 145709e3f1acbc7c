// Package extract converts uploaded document bytes into plain text.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"
)

var pdfMagic = []byte("%PDF-")

// Extractor extracts the text content of uploaded documents.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBytes extracts text from content, picking the decoder from the
// filename extension. PDF and XLSX inputs that cannot be opened fail with
// domain.ErrInvalidDocument. Anything without a recognized extension is
// treated as plain text, matching the original upload contract
// ("PDF, TXT, etc."); extensionless PDF uploads are caught by magic bytes.
func (e *Extractor) ExtractBytes(content []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".xlsx":
		return extractExcel(content)
	case ".txt", ".md", ".csv":
		return extractPlain(content)
	default:
		if bytes.HasPrefix(content, pdfMagic) {
			return extractPDF(content)
		}
		return extractPlain(content)
	}
}

package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"invoicematch/internal/domain"
)

// extractPDF extracts the text layer of a PDF page by page. Pages with no
// extractable text contribute nothing; extracted pages are joined by a line
// break. Bytes that cannot be opened as a PDF fail with
// domain.ErrInvalidDocument.
func extractPDF(content []byte) (text string, err error) {
	// The pdf library panics on some malformed xref tables instead of
	// returning an error; those inputs are still invalid documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", domain.ErrInvalidDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}

	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(pageText)
	}
	return buf.String(), nil
}

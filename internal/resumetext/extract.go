// Package resumetext extracts plain text from uploaded resume files. Only
// the text survives the upload; file bytes are never persisted.
package resumetext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ErrUnsupportedType reports an upload with a MIME type we cannot parse.
type ErrUnsupportedType struct {
	Mime string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Mime)
}

// Extract returns the plain text of a resume file based on its MIME type.
// Supported: text/plain, application/pdf, and docx.
func Extract(mime string, data []byte) (string, error) {
	switch {
	case mime == "text/plain" || strings.HasPrefix(mime, "text/plain;"):
		return string(data), nil
	case mime == "application/pdf":
		return extractPDF(data)
	case mime == mimeDocx:
		return extractDocx(data)
	default:
		return "", &ErrUnsupportedType{Mime: mime}
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}

	return b.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

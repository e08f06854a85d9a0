// Package document extracts plain text from uploaded resume and job
// description files.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtensions lists the file types Extract understands.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// ExtractionError wraps a failure to pull text out of a document.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError indicates a file extension Extract does not handle.
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (supported: %s)", e.Extension, strings.Join(SupportedExtensions, ", "))
}

// FromFile reads a document from disk and extracts its text.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Filename: filepath.Base(path), Err: err}
	}
	return FromBytes(data, filepath.Base(path))
}

// FromBytes extracts text from an in-memory document. The filename is used
// only to select the parser by extension and label errors.
func FromBytes(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDocx(data)
	case ".txt":
		text = string(data)
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}
	if err != nil {
		return "", &ExtractionError{Filename: filename, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ExtractionError{Filename: filename, Err: fmt.Errorf("document contains no extractable text")}
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	return docxTagRe.ReplaceAllString(content, ""), nil
}

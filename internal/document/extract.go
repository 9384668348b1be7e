package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// Kind is a supported upload format.
type Kind string

const (
	KindPDF Kind = "pdf"
	KindTXT Kind = "txt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrRead              = errors.New("unreadable document")
)

// ExtractError reports why a file could not be turned into text.
type ExtractError struct {
	Kind Kind
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Kind == KindPDF {
		return "Error reading PDF: " + e.Err.Error()
	}
	return "Error reading text file: " + e.Err.Error()
}

func (e *ExtractError) Unwrap() []error {
	return []error{ErrRead, e.Err}
}

// KindFromFilename maps the extension after the last dot to a Kind.
func KindFromFilename(name string) (Kind, bool) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", false
	}
	switch Kind(strings.ToLower(name[i+1:])) {
	case KindPDF:
		return KindPDF, true
	case KindTXT:
		return KindTXT, true
	}
	return "", false
}

// Extract reads the file at path and returns its cleaned text.
func Extract(path string, kind Kind) (string, error) {
	switch kind {
	case KindPDF:
		text, err := extractPDF(path)
		if err != nil {
			return "", &ExtractError{Kind: kind, Err: err}
		}
		return Clean(text), nil
	case KindTXT:
		text, err := extractTXT(path)
		if err != nil {
			return "", &ExtractError{Kind: kind, Err: err}
		}
		return Clean(text), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDF joins every page's plain text, one trailing newline per page.
// The parser panics on some malformed inputs, so panics become errors.
func extractPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, rdr, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= rdr.NumPage(); i++ {
		page := rdr.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if pageText == "" {
			continue
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// extractTXT decodes UTF-8 and falls back to ISO-8859-1 for anything else.
func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode as latin-1: %w", err)
	}
	return string(decoded), nil
}

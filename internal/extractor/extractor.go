package extractor

import (
	"bytes"
	"mime"
	"strings"
	"unicode/utf8"

	"studygeni/internal/domain"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain"
)

// ExtractText pulls plain text out of an uploaded document. PDF pages are
// concatenated in order; plain text is decoded as UTF-8 with a Latin-1
// fallback. An empty or whitespace-only result is a client input error,
// distinct from an extraction failure.
func ExtractText(contentType string, data []byte) (string, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	var text string
	var err error
	switch mediaType {
	case ContentTypePDF:
		text, err = extractPDF(data)
	case ContentTypeText:
		text, err = decodeText(data)
	default:
		return "", domain.NewUnsupportedFileError(contentType)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", domain.NewEmptyExtractionError()
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewFileExtractionError("Error processing PDF file", err)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.NewFileExtractionError("Error processing PDF file", err)
		}
		builder.WriteString(pageText)
	}

	return builder.String(), nil
}

func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Latin-1 fallback for legacy text files
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", domain.NewFileExtractionError("Could not decode text file. Ensure it's UTF-8 or Latin-1 encoded.", err)
	}
	return string(decoded), nil
}

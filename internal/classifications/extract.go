package classifications

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPromptChars bounds the extracted text passed to the classifier so a
// large document cannot blow out the prompt.
const maxPromptChars = 12000

// extractText pulls classifiable text out of raw document bytes.
// Unsupported content types yield empty text, which routes the document
// to the filename heuristic instead of the LLM.
func extractText(data []byte, contentType string) (string, error) {
	switch {
	case contentType == "application/pdf":
		return extractPDFText(data)
	case strings.HasPrefix(contentType, "text/"):
		return truncate(string(data)), nil
	default:
		return "", nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return truncate(strings.TrimSpace(buf.String())), nil
}

func truncate(s string) string {
	if len(s) > maxPromptChars {
		return s[:maxPromptChars]
	}
	return s
}

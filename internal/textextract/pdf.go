package textextract

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractPDF concatenates the text of every page, newline separated.
func extractPDF(data []byte) (string, error) {
	path, cleanup, err := writeTempFile(data, ".pdf")
	if err != nil {
		return "", err
	}
	defer cleanup()

	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

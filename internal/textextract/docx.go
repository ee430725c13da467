package textextract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDocx reads word/document.xml through the docx library and reduces
// it to paragraph text, one paragraph per line.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	text := docxTagRe.ReplaceAllString(content, "")

	return strings.TrimRight(html.UnescapeString(text), "\n"), nil
}

package textextract

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// extractImage runs OCR over a JPG/JPEG/PNG upload.
func extractImage(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("loading image for OCR: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("running OCR: %w", err)
	}

	return text, nil
}

// Package textextract turns uploaded resume files into plain text. The
// extraction strategy is selected by the file name's lowercase suffix.
package textextract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType marks a file suffix no strategy can handle. Callers
// map it to a client error; every other failure is a server-side one.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extract dispatches on the file suffix and returns the extracted plain text.
func Extract(ctx context.Context, fileName string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".doc":
		return extractDoc(ctx, data)
	case ".jpg", ".jpeg", ".png":
		return extractImage(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}

// writeTempFile spills data to a uniquely named transient file for the
// strategies whose libraries require a path. The returned cleanup removes
// the file and must run on every exit path.
func writeTempFile(data []byte, suffix string) (string, func(), error) {
	path := filepath.Join(os.TempDir(), "visuscan-"+uuid.NewString()+suffix)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", nil, fmt.Errorf("writing transient file: %w", err)
	}
	return path, func() { os.Remove(path) }, nil
}

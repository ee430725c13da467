package textextract

import (
	"context"
	"fmt"
	"os/exec"
)

// extractDoc handles legacy binary .doc files by shelling out to antiword,
// which prints the document text to stdout as UTF-8.
func extractDoc(ctx context.Context, data []byte) (string, error) {
	path, cleanup, err := writeTempFile(data, ".doc")
	if err != nil {
		return "", err
	}
	defer cleanup()

	out, err := exec.CommandContext(ctx, "antiword", "-m", "UTF-8.txt", path).Output()
	if err != nil {
		return "", fmt.Errorf("running antiword: %w", err)
	}

	return string(out), nil
}

package textextract

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestExtractUnsupportedType(t *testing.T) {
	tests := []string{
		"resume.xyz",
		"resume.txt",
		"resume",
		"archive.zip",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Extract(context.Background(), name, []byte("data"))
			if !errors.Is(err, ErrUnsupportedType) {
				t.Fatalf("expected ErrUnsupportedType for %q, got %v", name, err)
			}
		})
	}
}

func TestExtractSuffixCaseInsensitive(t *testing.T) {
	// Uppercase suffixes must dispatch to a strategy rather than fall
	// through to the unsupported branch. Garbage bytes make the strategy
	// itself fail, which is the distinction being tested.
	_, err := Extract(context.Background(), "RESUME.DOCX", []byte("not a real docx"))
	if err == nil {
		t.Fatal("expected extraction failure for garbage bytes")
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("uppercase .DOCX must not be treated as unsupported: %v", err)
	}
}

func TestExtractFailureWrapsCause(t *testing.T) {
	_, err := Extract(context.Background(), "broken.docx", []byte("garbage"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "DOCX") {
		t.Fatalf("expected wrapped extraction context, got: %v", err)
	}
}

func TestWriteTempFileCleanup(t *testing.T) {
	path, cleanup, err := writeTempFile([]byte("content"), ".pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("transient file should exist: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected content: %q", data)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("transient file should keep the suffix: %s", path)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("transient file should be removed, stat err: %v", err)
	}
}

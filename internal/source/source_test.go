package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadPrefersFile(t *testing.T) {
	path := writeFile(t, "  Go developer\n")

	got, err := Load(Source{Name: "job description", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Go developer" {
		t.Fatalf("expected file content, got %q", got)
	}
}

func TestLoadInlineValue(t *testing.T) {
	got, err := Load(Source{Value: "  Python developer  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Python developer" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(Source{Name: "job description", Value: " \n "})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if !strings.Contains(err.Error(), "job description") {
		t.Fatalf("expected name in error, got %v", err)
	}

	path := writeFile(t, "\n\n")
	_, err = Load(Source{File: path})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for blank file, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Source{File: filepath.Join(t.TempDir(), "missing.txt")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	path := writeFile(t, "Go developer")

	if src := Resolve("jd", path); src.File != path || src.Value != "" {
		t.Fatalf("expected file source, got %+v", src)
	}
	if src := Resolve("jd", "We need a Go developer"); src.File != "" || src.Value != "We need a Go developer" {
		t.Fatalf("expected inline source, got %+v", src)
	}
	if src := Resolve("jd", t.TempDir()); src.File != "" {
		t.Fatalf("directories are not files, got %+v", src)
	}
}

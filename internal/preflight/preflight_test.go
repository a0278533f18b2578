package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"multiview/internal/config"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		wantPassed bool
		wantDetail string
	}{
		{"writable dir", dir, true, "read/write ok"},
		{"missing", filepath.Join(dir, "nope"), false, "does not exist"},
		{"regular file", file, false, "is not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckDirectoryAccess("Target", tt.path)
			if got.Passed != tt.wantPassed {
				t.Fatalf("Passed = %v, want %v (%s)", got.Passed, tt.wantPassed, got.Detail)
			}
			if !strings.Contains(got.Detail, tt.wantDetail) {
				t.Fatalf("Detail = %q, want substring %q", got.Detail, tt.wantDetail)
			}
		})
	}
}

func TestRunAllAndFirstFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Paths.DocsDir = filepath.Join(t.TempDir(), "docs")

	if err := FirstFailure(RunAll(&cfg)); err == nil {
		t.Fatal("expected failure before directories exist")
	} else if !strings.Contains(err.Error(), "Providers directory") {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	results := RunAll(&cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if err := FirstFailure(results); err != nil {
		t.Fatalf("expected all checks to pass: %v", err)
	}
}

package fileutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.txt")

	if err := os.WriteFile(dst, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(dst, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("content mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be renamed away, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMode(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "dst.bin")
	if err := WriteFileAtomic(dst, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %o", info.Mode().Perm())
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "missing", "dst.txt")
	if err := WriteFileAtomic(dst, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestMarshalIndent(t *testing.T) {
	payload := struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}{Name: "Day/Night <ODI> & more", Items: []string{"a", "b"}}

	got, err := MarshalIndent(payload)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"Day/Night <ODI> & more\",\n  \"items\": [\n    \"a\",\n    \"b\"\n  ]\n}\n"
	if string(got) != want {
		t.Fatalf("unexpected encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestRemoveStale(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"keep.json", "old.json", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	removed, err := RemoveStale(dir, ".json", map[string]struct{}{"keep.json": {}})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(removed, []string{"old.json"}) {
		t.Fatalf("unexpected removals: %v", removed)
	}
	for _, name := range []string{"keep.json", "notes.md", "nested.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to survive: %v", name, err)
		}
	}

	removed, err = RemoveStale(filepath.Join(dir, "absent"), ".json", nil)
	if err != nil || len(removed) != 0 {
		t.Fatalf("expected missing dir to be a no-op, got %v %v", removed, err)
	}
}

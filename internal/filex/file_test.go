package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "a", "b")

	got, err := EnsureDir(dir)
	if err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if got != dir {
		t.Errorf("EnsureDir returned %q, want %q", got, dir)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// second call must be a no-op
	if _, err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir (existing): %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")

	if err := WriteFileAtomic(path, []byte(`[]`)); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("content = %q", data)
	}

	// overwrite
	if err := WriteFileAtomic(path, []byte(`[1]`)); err != nil {
		t.Fatalf("WriteFileAtomic (overwrite): %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `[1]` {
		t.Errorf("content after overwrite = %q", data)
	}

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("unexpected leftover files: %v", entries)
	}
}

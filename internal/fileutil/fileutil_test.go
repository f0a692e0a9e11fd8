package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteIfChangedTracked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	wrote, err := WriteIfChangedTracked(path, []byte("{}"))
	if err != nil {
		t.Fatalf("initial write failed: %v", err)
	}
	if !wrote {
		t.Error("expected first write to report a change")
	}

	wrote, err = WriteIfChangedTracked(path, []byte("{}"))
	if err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if wrote {
		t.Error("identical content must not rewrite")
	}

	wrote, err = WriteIfChangedTracked(path, []byte("{\"a\":1}"))
	if err != nil {
		t.Fatalf("changed write failed: %v", err)
	}
	if !wrote {
		t.Error("expected changed content to rewrite")
	}
}

func TestHashFileIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first != second {
		t.Errorf("hash not stable: %q vs %q", first, second)
	}
	if len(first) != 16 {
		t.Errorf("expected 16-char hash prefix, got %q", first)
	}
}

func TestEnsureTrailingNewline(t *testing.T) {
	if got := EnsureTrailingNewline("a"); got != "a\n" {
		t.Errorf("got %q", got)
	}
	if got := EnsureTrailingNewline("a\n"); got != "a\n" {
		t.Errorf("got %q", got)
	}
}

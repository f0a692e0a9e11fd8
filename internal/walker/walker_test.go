package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
}

func walkNames(t *testing.T, root string, opts Options) []string {
	t.Helper()
	records, issues, err := Walk(root, opts)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.RelPath)
	}
	return names
}

func TestWalkUnbounded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "sub", "b.txt"))
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"))

	names := walkNames(t, root, Options{MaxDepth: -1})
	expectSet(t, names, []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"})
}

func TestWalkDepthZeroVisitsOnlyRootFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "b.md"))
	writeFile(t, filepath.Join(root, "sub", "c.txt"))

	names := walkNames(t, root, Options{MaxDepth: 0})
	expectSet(t, names, []string{"a.txt", "b.md"})
}

func TestWalkDepthBoundIsInclusive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "sub", "b.txt"))
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"))

	names := walkNames(t, root, Options{MaxDepth: 1})
	expectSet(t, names, []string{"a.txt", "sub/b.txt"})
}

func TestWalkExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"))
	writeFile(t, filepath.Join(root, "skip.bin"))
	writeFile(t, filepath.Join(root, "KEEP2.TXT"))

	names := walkNames(t, root, Options{MaxDepth: -1, Extensions: []string{".txt"}})
	expectSet(t, names, []string{"keep.txt", "KEEP2.TXT"})
}

func TestWalkSkipsDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, ".git", "config"))
	writeFile(t, filepath.Join(root, "content_index.json"))
	writeFile(t, filepath.Join(root, "organizer-analysis-2026-01-01-00-00-00.log"))

	names := walkNames(t, root, Options{MaxDepth: -1})
	expectSet(t, names, []string{"a.txt"})
}

func TestWalkRecordFields(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "Doc.PDF"))

	records, _, err := Walk(root, Options{MaxDepth: -1})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.Name != "Doc.PDF" {
		t.Errorf("expected name Doc.PDF, got %q", record.Name)
	}
	if record.Ext != ".pdf" {
		t.Errorf("expected lowercased ext .pdf, got %q", record.Ext)
	}
	if !filepath.IsAbs(record.Path) {
		t.Errorf("expected absolute path, got %q", record.Path)
	}
	if record.RelPath != "sub/Doc.PDF" {
		t.Errorf("expected rel path sub/Doc.PDF, got %q", record.RelPath)
	}
}

func expectSet(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(got), got)
	}

	index := make(map[string]bool, len(got))
	for _, item := range got {
		index[item] = true
	}

	for _, item := range want {
		if !index[item] {
			t.Fatalf("expected item %q in %v", item, got)
		}
	}
}

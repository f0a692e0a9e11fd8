package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OrganizeByQuery symlinks every indexed file whose first_text, preview
// or filename contains the case-folded query into targetDir. Returns
// the number of links created plus per-file skip messages; a file that
// disappeared since indexing or a failing link never aborts the rest.
func (ix *Index) OrganizeByQuery(query, targetDir string) (int, []string, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return 0, nil, fmt.Errorf("failed to create target dir %q: %w", targetDir, err)
	}

	query = strings.ToLower(query)

	// Sorted order keeps collision suffixes deterministic.
	paths := make([]string, 0, len(ix.Entries))
	for path := range ix.Entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	linked := 0
	skipped := make([]string, 0)
	for _, path := range paths {
		entry := ix.Entries[path]
		if !entry.matches(query) {
			continue
		}

		if _, err := os.Stat(path); err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: source missing: %v", path, err))
			continue
		}

		dest, err := collisionFreePath(targetDir, filepath.Base(path))
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		if err := os.Symlink(path, dest); err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: link failed: %v", path, err))
			continue
		}
		linked++
	}

	return linked, skipped, nil
}

func (e Entry) matches(query string) bool {
	for _, field := range []string{e.FirstText, e.Preview, e.Filename} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// collisionFreePath appends a numeric suffix before the extension until
// the name is free in dir.
func collisionFreePath(dir, base string) (string, error) {
	dest := filepath.Join(dir, base)
	if _, err := os.Lstat(dest); os.IsNotExist(err) {
		return dest, nil
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; i < 1000; i++ {
		dest = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
		if _, err := os.Lstat(dest); os.IsNotExist(err) {
			return dest, nil
		}
	}
	return "", fmt.Errorf("no free name for %q", base)
}

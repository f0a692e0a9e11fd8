// Package walker enumerates files under a root directory for the
// indexing and planning pipelines.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileRecord describes one file discovered during a walk.
// Records are immutable after creation.
type FileRecord struct {
	Name    string // base name
	Path    string // absolute path
	RelPath string // path relative to the walk root, slash-separated
	Ext     string // lowercased extension, including the dot
	Dir     string // absolute directory containing the file
}

// Issue reports a non-fatal problem for a single walk entry.
type Issue struct {
	Path    string
	Message string
}

// Options controls a walk.
type Options struct {
	// MaxDepth bounds how deep below the root files are collected.
	// 0 means only files directly in the root; -1 means unbounded.
	// The bound is inclusive: entries deeper than MaxDepth are skipped
	// entirely, not just their descendants.
	MaxDepth int

	// Extensions, when non-empty, restricts results to these lowercased
	// extensions (with dot). The index pipeline leaves it empty.
	Extensions []string

	// ExtraRules appends exclusion rules to the defaults.
	ExtraRules []string
}

// defaultRules keeps the walker out of VCS metadata and out of the
// tool's own outputs.
var defaultRules = []string{
	".git/",
	"node_modules/",
	"__pycache__/",
	"content_index.json",
	"organizer-analysis-*",
}

// Walk enumerates files under root according to opts. Ordering follows
// filesystem enumeration order and is not guaranteed stable across
// platforms. Unreadable entries are reported as issues, never as a walk
// failure.
func Walk(root string, opts Options) ([]FileRecord, []Issue, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve root %q: %w", root, err)
	}

	info, err := os.Stat(rootAbs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access %q: %w", rootAbs, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("path %q is not a directory", rootAbs)
	}

	rules := newRuleSet(append(append([]string{}, defaultRules...), opts.ExtraRules...))
	extFilter := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extFilter[strings.ToLower(ext)] = true
	}

	records := make([]FileRecord, 0)
	issues := make([]Issue, 0)

	walkErr := filepath.Walk(rootAbs, func(path string, info os.FileInfo, err error) error {
		if path == rootAbs {
			if err != nil {
				return err
			}
			return nil
		}

		rel, relErr := filepath.Rel(rootAbs, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if err != nil {
			issues = append(issues, Issue{Path: rel, Message: fmt.Sprintf("walk error: %v", err)})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		depth := strings.Count(rel, "/")

		if info.IsDir() {
			if rules.skip(rel, true) {
				return filepath.SkipDir
			}
			if opts.MaxDepth >= 0 && depth+1 > opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if rules.skip(rel, false) {
			return nil
		}
		if opts.MaxDepth >= 0 && depth > opts.MaxDepth {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if len(extFilter) > 0 && !extFilter[ext] {
			return nil
		}

		records = append(records, FileRecord{
			Name:    info.Name(),
			Path:    path,
			RelPath: rel,
			Ext:     ext,
			Dir:     filepath.Dir(path),
		})
		return nil
	})
	if walkErr != nil {
		return nil, issues, fmt.Errorf("failed to walk %q: %w", rootAbs, walkErr)
	}

	return records, issues, nil
}

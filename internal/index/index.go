// Package index persists per-file extraction metadata and answers
// substring queries against it.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/IslamTayeb/LLM-file-organizer/internal/extract"
	"github.com/IslamTayeb/LLM-file-organizer/internal/fileutil"
	"github.com/IslamTayeb/LLM-file-organizer/internal/walker"
)

// IndexFile is the fixed index location inside the base directory.
const IndexFile = "content_index.json"

// Entry is the extracted metadata stored for one file.
type Entry struct {
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	Size      int64  `json:"size"`
	Hash      string `json:"hash,omitempty"`
	FirstText string `json:"first_text"`
	Preview   string `json:"preview"`
	Error     string `json:"error,omitempty"`
}

// Index maps absolute file paths to entries. It is loaded wholesale at
// start and rewritten wholesale at the end of a run; re-indexing
// overwrites entries key by key but never prunes entries for files that
// no longer exist.
type Index struct {
	baseDir string
	Entries map[string]Entry
}

// Load reads the index file under baseDir. A missing file yields an
// empty index; a corrupt one is an error.
func Load(baseDir string) (*Index, error) {
	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base dir %q: %w", baseDir, err)
	}

	ix := &Index{baseDir: baseAbs, Entries: make(map[string]Entry)}

	data, err := os.ReadFile(ix.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return ix, nil
		}
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	if err := json.Unmarshal(data, &ix.Entries); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}
	return ix, nil
}

// Path returns the absolute index file location.
func (ix *Index) Path() string {
	return filepath.Join(ix.baseDir, IndexFile)
}

// Save rewrites the index file. Index I/O failures are fatal for the
// run, unlike per-file extraction failures.
func (ix *Index) Save() error {
	data, err := json.MarshalIndent(ix.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteIfChanged(ix.Path(), data); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

// Update walks directory and refreshes the entry for every file found.
// Extraction failures are recorded on the entry and never abort the
// walk.
func (ix *Index) Update(directory string) (int, []walker.Issue, error) {
	records, issues, err := walker.Walk(directory, walker.Options{MaxDepth: -1})
	if err != nil {
		return 0, issues, err
	}

	extractor := extract.New(extract.IndexLimits())
	for _, record := range records {
		ix.Entries[record.Path] = buildEntry(record, extractor)
	}
	return len(records), issues, nil
}

func buildEntry(record walker.FileRecord, extractor *extract.Extractor) Entry {
	entry := Entry{
		Filename:  record.Name,
		Extension: record.Ext,
	}

	if info, err := os.Stat(record.Path); err == nil {
		entry.Size = info.Size()
	} else {
		entry.Error = fmt.Sprintf("stat failed: %v", err)
		return entry
	}

	if hash, err := fileutil.HashFile(record.Path); err == nil {
		entry.Hash = hash
	}

	result := extractor.Extract(record.Path, record.Ext)
	if result.Err != nil {
		entry.Error = result.Err.Error()
		return entry
	}
	entry.FirstText = result.FirstText
	entry.Preview = result.Preview
	return entry
}

// StaleEntries lists indexed paths that no longer exist on disk. They
// stay in the index by design; callers surface the count so the
// accumulation is visible.
func (ix *Index) StaleEntries() []string {
	stale := make([]string, 0)
	for path := range ix.Entries {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			stale = append(stale, path)
		}
	}
	sort.Strings(stale)
	return stale
}

package model

import (
	"os"
	"sort"
	"time"
)

// Entry describes a single file in a scanned tree: a relative path plus
// a content fingerprint and the file metadata captured at scan time.
type Entry struct {
	Path  string      `json:"path" yaml:"path"`
	Hash  string      `json:"hash" yaml:"hash"`
	Size  uint64      `json:"size" yaml:"size"`
	Mtime time.Time   `json:"mtime" yaml:"mtime"`
	Mode  os.FileMode `json:"mode" yaml:"mode"`
	_     struct{}
}

// Entries represent a collection of entries
type Entries []Entry

// ByPath indexes the entries by relative path.
func (entries Entries) ByPath() map[string]Entry {
	index := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		index[entry.Path] = entry
	}
	return index
}

// Paths returns the sorted relative paths of all entries.
func (entries Entries) Paths() []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	sort.Strings(paths)
	return paths
}

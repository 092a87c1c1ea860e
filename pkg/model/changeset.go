// Copyright © 2018 One Concern

package model

import (
	"fmt"
	"sort"
)

const (
	// ChangeTypeAdd indicates the target exhibits an extra entry
	ChangeTypeAdd ChangeType = iota
	// ChangeTypeModify indicates source and target entries differ
	ChangeTypeModify
	// ChangeTypeDelete indicates the target exhibits a missing entry
	ChangeTypeDelete
)

// ChangeType qualifies a single point of difference between two trees
type ChangeType uint

func (ct ChangeType) String() string {
	changeTypeStrings := map[ChangeType]string{
		ChangeTypeAdd:    "A",
		ChangeTypeModify: "U",
		ChangeTypeDelete: "D",
	}
	return changeTypeStrings[ct]
}

// Change describes a single edit needed to bring the source tree in line
// with the target tree.
type Change struct {
	Type ChangeType `json:"type" yaml:"type"`
	Path string     `json:"path" yaml:"path"`
	// Existing is the source side entry (zero value for adds)
	Existing Entry `json:"existing,omitempty" yaml:"existing,omitempty"`
	// Additional is the target side entry (zero value for deletes)
	Additional Entry `json:"additional,omitempty" yaml:"additional,omitempty"`
	_          struct{}
}

// ChangeSet collects the edits produced by one reconciliation run.
//
// Each relative path appears at most once: attempting to record a second
// change for an already known path fails with ErrDuplicatePath.
type ChangeSet struct {
	changes map[string]Change
}

// NewChangeSet creates an empty changeset
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		changes: make(map[string]Change),
	}
}

// Add records a change. A path may only be recorded once per changeset.
func (cs *ChangeSet) Add(change Change) error {
	if change.Path == "" {
		return ErrPathRequired
	}
	if _, known := cs.changes[change.Path]; known {
		return fmt.Errorf("%q: %w", change.Path, ErrDuplicatePath)
	}
	cs.changes[change.Path] = change
	return nil
}

// Get retrieves the change recorded for a path, if any.
func (cs *ChangeSet) Get(path string) (Change, bool) {
	change, ok := cs.changes[path]
	return change, ok
}

// Len yields the number of recorded changes
func (cs *ChangeSet) Len() int {
	return len(cs.changes)
}

// IsEmpty tells whether the changeset records no change at all
func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.changes) == 0
}

// Changes returns all recorded changes ordered by relative path, so output
// and application order are deterministic.
func (cs *ChangeSet) Changes() []Change {
	result := make([]Change, 0, len(cs.changes))
	for _, change := range cs.changes {
		result = append(result, change)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}

// CountByType tallies the recorded changes per change type
func (cs *ChangeSet) CountByType() map[ChangeType]int {
	counts := make(map[ChangeType]int, 3)
	for _, change := range cs.changes {
		counts[change.Type]++
	}
	return counts
}

func (cs *ChangeSet) String() string {
	counts := cs.CountByType()
	return fmt.Sprintf("%d added, %d modified, %d deleted",
		counts[ChangeTypeAdd], counts[ChangeTypeModify], counts[ChangeTypeDelete])
}

// Copyright © 2018 One Concern

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeSetUniquePaths(t *testing.T) {
	cs := NewChangeSet()
	require.NoError(t, cs.Add(Change{Type: ChangeTypeAdd, Path: "a.txt"}))

	err := cs.Add(Change{Type: ChangeTypeDelete, Path: "a.txt"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePath))
	assert.Equal(t, 1, cs.Len())
}

func TestChangeSetRequiresPath(t *testing.T) {
	cs := NewChangeSet()
	err := cs.Add(Change{Type: ChangeTypeAdd})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathRequired))
}

func TestChangeSetOrdering(t *testing.T) {
	cs := NewChangeSet()
	require.NoError(t, cs.Add(Change{Type: ChangeTypeDelete, Path: "zebra.txt"}))
	require.NoError(t, cs.Add(Change{Type: ChangeTypeAdd, Path: "alpha.txt"}))
	require.NoError(t, cs.Add(Change{Type: ChangeTypeModify, Path: "middle.txt"}))

	changes := cs.Changes()
	require.Len(t, changes, 3)
	assert.Equal(t, "alpha.txt", changes[0].Path)
	assert.Equal(t, "middle.txt", changes[1].Path)
	assert.Equal(t, "zebra.txt", changes[2].Path)
}

func TestChangeSetCounts(t *testing.T) {
	cs := NewChangeSet()
	assert.True(t, cs.IsEmpty())

	require.NoError(t, cs.Add(Change{Type: ChangeTypeAdd, Path: "a"}))
	require.NoError(t, cs.Add(Change{Type: ChangeTypeAdd, Path: "b"}))
	require.NoError(t, cs.Add(Change{Type: ChangeTypeModify, Path: "c"}))
	require.NoError(t, cs.Add(Change{Type: ChangeTypeDelete, Path: "d"}))

	counts := cs.CountByType()
	assert.Equal(t, 2, counts[ChangeTypeAdd])
	assert.Equal(t, 1, counts[ChangeTypeModify])
	assert.Equal(t, 1, counts[ChangeTypeDelete])
	assert.Equal(t, "2 added, 1 modified, 1 deleted", cs.String())
	assert.False(t, cs.IsEmpty())
}

func TestChangeTypeString(t *testing.T) {
	assert.Equal(t, "A", ChangeTypeAdd.String())
	assert.Equal(t, "U", ChangeTypeModify.String())
	assert.Equal(t, "D", ChangeTypeDelete.String())
}

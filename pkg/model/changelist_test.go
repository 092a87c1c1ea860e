// Copyright © 2018 One Concern

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangelistRoundTrip(t *testing.T) {
	cs := NewChangeSet()
	require.NoError(t, cs.Add(Change{
		Type:       ChangeTypeAdd,
		Path:       "b.txt",
		Additional: Entry{Path: "b.txt", Hash: "cafe", Size: 1},
	}))
	require.NoError(t, cs.Add(Change{
		Type:     ChangeTypeDelete,
		Path:     "a.txt",
		Existing: Entry{Path: "a.txt", Hash: "beef", Size: 2},
	}))

	desc := NewChangelistDescriptor("vendor drop 2024-05", Author{Name: "pat", Email: "pat@example.com"}, cs)
	assert.Equal(t, uint64(CurrentChangelistVersion), desc.Version)
	assert.False(t, desc.Timestamp.IsZero())

	b, err := MarshalChangelist(desc)
	require.NoError(t, err)

	decoded, err := UnmarshalChangelist(b)
	require.NoError(t, err)
	assert.Equal(t, desc.Message, decoded.Message)
	assert.Equal(t, desc.Author, decoded.Author)
	require.Len(t, decoded.Changes, 2)

	rebuilt, err := decoded.ChangeSet()
	require.NoError(t, err)
	assert.Equal(t, 2, rebuilt.Len())
	change, ok := rebuilt.Get("b.txt")
	require.True(t, ok)
	assert.Equal(t, "cafe", change.Additional.Hash)
}

func TestAuthorString(t *testing.T) {
	assert.Equal(t, "pat <pat@example.com>", Author{Name: "pat", Email: "pat@example.com"}.String())
	assert.Equal(t, "pat", Author{Name: "pat"}.String())
	assert.Equal(t, "pat@example.com", Author{Email: "pat@example.com"}.String())
}

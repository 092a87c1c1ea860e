// Copyright © 2018 One Concern

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/pkgmerger/pkg/model"
)

func TestStageAndReadBack(t *testing.T) {
	source := testStore(t, map[string]string{"a.txt": "1"})
	target := testStore(t, map[string]string{"a.txt": "2", "b.txt": "x", "c.txt": "x"})
	staging := testStore(t, map[string]string{})

	cs, err := Reconcile(context.Background(), source, target)
	require.NoError(t, err)
	require.Equal(t, 3, cs.Len())

	desc := model.NewChangelistDescriptor("drop", model.Author{Name: "pat"}, cs)
	require.NoError(t, Stage(context.Background(), desc, target, staging))

	// manifest plus one object per distinct fingerprint: b.txt and c.txt
	// share content, so their object is staged once
	keys, err := staging.Keys(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 3)

	has, err := staging.Has(context.Background(), model.GetPathToChangelist())
	require.NoError(t, err)
	assert.True(t, has)

	for _, change := range desc.Changes {
		has, err = staging.Has(context.Background(), model.GetPathToObject(change.Additional.Hash))
		require.NoError(t, err)
		assert.True(t, has, change.Path)
	}

	decoded, err := ReadChangelist(context.Background(), staging)
	require.NoError(t, err)
	assert.Equal(t, "drop", decoded.Message)
	assert.Equal(t, "pat", decoded.Author.Name)
	require.Len(t, decoded.Changes, 3)
}

func TestStageSkipsDeletes(t *testing.T) {
	source := testStore(t, map[string]string{"gone.txt": "bye"})
	target := testStore(t, map[string]string{})
	staging := testStore(t, map[string]string{})

	cs, err := Reconcile(context.Background(), source, target)
	require.NoError(t, err)
	require.Equal(t, 1, cs.Len())

	desc := model.NewChangelistDescriptor("cleanup", model.Author{}, cs)
	require.NoError(t, Stage(context.Background(), desc, target, staging))

	keys, err := staging.Keys(context.Background())
	require.NoError(t, err)
	// only the manifest: deletes carry no content
	require.Len(t, keys, 1)
	assert.Equal(t, model.GetPathToChangelist(), keys[0])
}

func TestReadChangelistMissing(t *testing.T) {
	staging := testStore(t, map[string]string{})

	_, err := ReadChangelist(context.Background(), staging)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrChangelistNotFound))
}

// Copyright © 2018 One Concern

package core

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/storage"
)

func TestScanEntries(t *testing.T) {
	store := testStore(t, map[string]string{
		"a.txt":     "alpha",
		"sub/b.txt": "beta",
	})

	entries, err := Scan(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// deterministic ordering by path
	assert.Equal(t, "a.txt", entries[0].Path)
	assert.Equal(t, "sub/b.txt", entries[1].Path)

	for _, entry := range entries {
		assert.NotEmpty(t, entry.Hash, entry.Path)
		assert.NotZero(t, entry.Size, entry.Path)
	}
	assert.EqualValues(t, len("alpha"), entries[0].Size)
}

func TestScanSameContentSameHash(t *testing.T) {
	store := testStore(t, map[string]string{
		"one.txt": "identical",
		"two.txt": "identical",
	})

	entries, err := Scan(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].Hash, entries[1].Hash)
}

func TestScanConcurrencyBound(t *testing.T) {
	files := make(map[string]string, 50)
	for i := 0; i < 50; i++ {
		files[string(rune('a'+i%26))+"/file"+string(rune('0'+i%10))+".txt"] = "content"
	}
	store := testStore(t, files)

	entries, err := Scan(context.Background(), store, ConcurrencyFactor(3))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

// brokenWalkStore has a readable root but fails while listing entries.
type brokenWalkStore struct {
	walkErr error
}

func (b brokenWalkStore) String() string { return "broken" }

func (b brokenWalkStore) Has(context.Context, string) (bool, error) { return false, nil }

func (b brokenWalkStore) Get(context.Context, string) (io.ReadCloser, error) {
	return nil, storage.ErrNotFound
}

func (b brokenWalkStore) Put(context.Context, string, io.Reader, bool) error { return nil }

func (b brokenWalkStore) Delete(context.Context, string) error { return nil }

func (b brokenWalkStore) Keys(context.Context) ([]string, error) { return nil, b.walkErr }

func (b brokenWalkStore) Clear(context.Context) error { return nil }

func TestScanRootUnavailable(t *testing.T) {
	store := brokenWalkStore{walkErr: storage.ErrStoreUnavailable}

	_, err := Scan(context.Background(), store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrPathUnavailable))
}

func TestScanWalkFailure(t *testing.T) {
	// a failure below the root is not a missing-root condition
	store := brokenWalkStore{walkErr: errors.New("permission denied")}

	_, err := Scan(context.Background(), store)
	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrPathUnavailable))
	assert.Contains(t, err.Error(), "permission denied")
}

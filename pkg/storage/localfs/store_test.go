// Copyright © 2018 One Concern

package localfs

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/oneconcern/pkgmerger/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "nested/seventeentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "fifteentons")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "fifteentons")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStat(t *testing.T) {
	bs := setupStore(t)

	attrs, err := bs.Stat(context.Background(), "sixteentons")
	require.NoError(t, err)
	assert.EqualValues(t, len("this is the text"), attrs.Size)

	_, err = bs.Stat(context.Background(), "fifteentons")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Contains(t, keys, "sixteentons")
	assert.Contains(t, keys, "nested/seventeentons")
}

func TestKeysMissingRoot(t *testing.T) {
	bs := New(afero.NewBasePathFs(afero.NewMemMapFs(), "/no/such/root"))

	_, err := bs.Keys(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
}

func TestDelete(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Delete(context.Background(), "sixteentons"))
	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 1)

	// deleting an absent key is not an error
	require.NoError(t, bs.Delete(context.Background(), "fifteentons"))
}

func TestClear(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Clear(context.Background()))
	k, _ := bs.Keys(context.Background())
	require.Empty(t, k)
}

func TestPut(t *testing.T) {
	bs := setupStore(t)

	content := bytes.NewBufferString("here we go once again")
	err := bs.Put(context.Background(), "deeply/nested/eighteentons", content, storage.NoOverWrite)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "deeply/nested/eighteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "here we go once again", string(b))

	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 3)
}

func TestPutOverwriteSemantics(t *testing.T) {
	bs := setupStore(t)

	err := bs.Put(context.Background(), "sixteentons", bytes.NewBufferString("clobber"), storage.NoOverWrite)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrExists)

	err = bs.Put(context.Background(), "sixteentons", bytes.NewBufferString("clobber"), storage.OverWrite)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "clobber", string(b))
}

func setupStore(t testing.TB) storage.StatStore {
	t.Helper()

	fs := afero.NewMemMapFs()
	f, err := fs.Create("sixteentons")
	require.NoError(t, err)
	_, err = f.WriteString("this is the text")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, fs.MkdirAll("nested", 0700))
	ff, err := fs.Create("nested/seventeentons")
	require.NoError(t, err)
	_, err = ff.WriteString("this is the text for another thing")
	require.NoError(t, err)
	require.NoError(t, ff.Close())

	return New(fs)
}

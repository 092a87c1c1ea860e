// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"os"
	"time"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNotFound errString = "not found"
	ErrExists   errString = "exists already"
	// ErrStoreUnavailable means the store root itself could not be read,
	// as opposed to a failure on some entry within it.
	ErrStoreUnavailable errString = "store unavailable"
)

const (
	// OverWrite an existing object on Put
	OverWrite = false
	// NoOverWrite fails a Put when the key already exists
	NoOverWrite = true
)

// Store implementations know how to read and write file entries in a K/V manner.
//
// Typically this is something file system-like. Keys are slash separated
// relative paths; directories are implicit and carry no entry of their own.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, source io.Reader, exclusive bool) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	Clear(context.Context) error
}

// Attributes carry the file metadata of a stored entry
type Attributes struct {
	Size  int64
	Mtime time.Time
	Mode  os.FileMode
	_     struct{}
}

// StatStore is implemented by stores which can report entry metadata.
type StatStore interface {
	Store
	Stat(ctx context.Context, key string) (Attributes, error)
}

// PipeIO copies the reader to the writer with a fixed size buffer
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	buf := make([]byte, 32*1024)
	return io.CopyBuffer(writer, reader, buf)
}

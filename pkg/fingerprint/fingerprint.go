// Package fingerprint computes content fingerprints as blake2b tree hashes:
// files are cut into fixed size leaves, leaf digests are computed by a pool
// of workers and folded into a single root digest.
package fingerprint

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"sync"

	units "github.com/docker/go-units"
	blake2b "github.com/minio/blake2b-simd"

	"github.com/oneconcern/pkgmerger/pkg/storage"
)

type chunkInput struct {
	part       int
	partBuffer []byte
	lastChunk  bool
}

type chunkOutput struct {
	digest []byte
	part   int
	err    error
}

// Option to tune a Maker
type Option func(*Maker)

// LeafSize overrides the default 5MB leaf size
func LeafSize(sz int64) Option {
	return func(m *Maker) {
		m.leafSize = uint32(sz)
	}
}

// NumberOfWorkers overrides the default worker pool size (NumCPU)
func NumberOfWorkers(no int) Option {
	return func(m *Maker) {
		m.numberOfWorkers = no
	}
}

// Size overrides the inner hash size
func Size(sz uint8) Option {
	return func(m *Maker) {
		m.size = sz
	}
}

// New fingerprint maker
func New(opts ...Option) *Maker {
	m := &Maker{
		leafSize:        uint32(5 * units.MB),
		numberOfWorkers: runtime.NumCPU(),
		size:            64,
	}

	for _, apply := range opts {
		apply(m)
	}
	return m
}

// Maker computes fingerprints
type Maker struct {
	size            uint8
	leafSize        uint32
	numberOfWorkers int
}

// Process computes the fingerprint of the object stored under key
func (m *Maker) Process(ctx context.Context, blobs storage.Store, key string) ([]byte, error) {
	r, err := blobs.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return m.ProcessReader(ctx, r)
}

// ProcessReader computes the fingerprint of a stream
func (m *Maker) ProcessReader(ctx context.Context, r io.Reader) ([]byte, error) {
	var wg sync.WaitGroup
	chunks := make(chan chunkInput)
	results := make(chan chunkOutput)

	for i := 0; i < m.numberOfWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.processChunk(chunks, results)
		}()
	}

	readErrC := make(chan error, 1)
	go func() {
		defer close(chunks)
		var pending *chunkInput
		for part := 0; ; part++ {
			if err := ctx.Err(); err != nil {
				readErrC <- err
				return
			}
			partBuffer := make([]byte, m.leafSize)
			n, e := io.ReadFull(r, partBuffer)
			if n > 0 {
				if pending != nil {
					chunks <- *pending
				}
				pending = &chunkInput{part: part, partBuffer: partBuffer[:n]}
			}
			if e == io.EOF || e == io.ErrUnexpectedEOF {
				break
			}
			if e != nil {
				readErrC <- e
				return
			}
		}
		if pending != nil {
			pending.lastChunk = true
			chunks <- *pending
		}
		close(readErrC)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// collect digests keyed by chunk number
	// (the number of chunks is unknown upfront for a stream)
	digestHash := make(map[int][]byte)
	var chunkErr error
	for res := range results {
		if res.err != nil && chunkErr == nil {
			chunkErr = res.err
		}
		digestHash[res.part] = res.digest
	}
	if chunkErr != nil {
		return nil, chunkErr
	}
	if err, ok := <-readErrC; ok && err != nil {
		return nil, err
	}

	// concatenate chunk digests in chunk order
	sz := int(m.size)
	b := make([]byte, len(digestHash)*sz)
	for index, val := range digestHash {
		offset := sz * index
		copy(b[offset:offset+sz], val)
	}

	rootBlake, err := blake2b.New(&blake2b.Config{
		Size: blake2b.Size,
		Tree: &blake2b.Tree{
			Fanout:        0,
			MaxDepth:      2,
			LeafSize:      m.leafSize,
			NodeOffset:    0,
			NodeDepth:     1,
			InnerHashSize: m.size,
			IsLastNode:    true,
		},
	})
	if err != nil {
		return nil, err
	}

	rootBlake.Reset()
	if _, err = io.Copy(rootBlake, bytes.NewBuffer(b)); err != nil {
		return nil, err
	}

	return rootBlake.Sum(nil), nil
}

// Worker routine computing the digest of one leaf
func (m *Maker) processChunk(rx <-chan chunkInput, tx chan<- chunkOutput) {
	for c := range rx {
		blake, err := blake2b.New(&blake2b.Config{
			Size: blake2b.Size,
			Tree: &blake2b.Tree{
				Fanout:        0,
				MaxDepth:      2,
				LeafSize:      m.leafSize,
				NodeOffset:    uint64(c.part),
				NodeDepth:     0,
				InnerHashSize: m.size,
				IsLastNode:    c.lastChunk,
			},
		})
		if err != nil {
			tx <- chunkOutput{part: c.part, err: err}
			continue
		}

		blake.Reset()
		if _, err = io.Copy(blake, bytes.NewBuffer(c.partBuffer)); err != nil {
			tx <- chunkOutput{part: c.part, err: err}
			continue
		}
		tx <- chunkOutput{digest: blake.Sum(nil), part: c.part}
	}
}

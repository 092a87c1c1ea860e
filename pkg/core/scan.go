// Copyright © 2018 One Concern

package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/storage"
)

// Scan walks all file entries of a store and fingerprints them with a
// bounded pool of workers.
//
// Entries matching a skip pattern, directories and symbolic links carry no
// entry. Scan fails on the first error encountered and returns no partial
// result; cancelling the context abandons the scan.
func Scan(ctx context.Context, store storage.Store, opts ...Option) (model.Entries, error) {
	s := defaultSettings(opts...)

	keys, err := store.Keys(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrStoreUnavailable) {
			return nil, fmt.Errorf("%w: scanning %s: %v", model.ErrPathUnavailable, store, err)
		}
		return nil, fmt.Errorf("scanning %s: %w", store, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		entries  model.Entries
		firstErr error
	)
	setErr := func(e error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = e
			cancel()
		}
		mu.Unlock()
	}

	sem := make(chan struct{}, s.concurrency)
	for _, key := range keys {
		if skipKey(key, s.skipPatterns) {
			s.logger.Debug("skipping", zap.String("path", key))
			continue
		}

		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				setErr(ctx.Err())
				return
			}

			entry, err := scanOne(ctx, store, key, &s)
			if err != nil {
				setErr(fmt.Errorf("scanning %q: %w", key, err))
				return
			}

			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	s.logger.Debug("scanned tree", zap.String("store", store.String()), zap.Int("entries", len(entries)))
	return entries, nil
}

func scanOne(ctx context.Context, store storage.Store, key string, s *settings) (model.Entry, error) {
	fp, err := s.maker.Process(ctx, store, key)
	if err != nil {
		return model.Entry{}, err
	}

	entry := model.Entry{
		Path: key,
		Hash: fmt.Sprintf("%x", fp),
	}
	if ss, ok := store.(storage.StatStore); ok {
		attrs, err := ss.Stat(ctx, key)
		if err != nil {
			return model.Entry{}, err
		}
		entry.Size = uint64(attrs.Size)
		entry.Mtime = attrs.Mtime
		entry.Mode = attrs.Mode
	}
	return entry, nil
}

func skipKey(key string, patterns []string) bool {
	base := filepath.Base(key)
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

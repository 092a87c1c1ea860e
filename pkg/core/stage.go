// Copyright © 2018 One Concern

package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/storage"
)

// Stage persists a changelist into a staging store: one content object per
// added or modified entry, keyed by fingerprint, plus a YAML manifest.
// Objects already present in the staging store are reused.
func Stage(ctx context.Context, desc model.ChangelistDescriptor, target, staging storage.Store, opts ...Option) error {
	s := defaultSettings(opts...)

	for _, change := range desc.Changes {
		if change.Type == model.ChangeTypeDelete {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		key := model.GetPathToObject(change.Additional.Hash)
		rdr, err := target.Get(ctx, change.Path)
		if err != nil {
			return fmt.Errorf("reading %q from %s: %w", change.Path, target, err)
		}
		err = staging.Put(ctx, key, rdr, storage.NoOverWrite)
		if cerr := rdr.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			if errors.Is(err, storage.ErrExists) {
				s.logger.Debug("object already staged", zap.String("hash", change.Additional.Hash))
				continue
			}
			return fmt.Errorf("staging object for %q: %w", change.Path, err)
		}
	}

	b, err := model.MarshalChangelist(desc)
	if err != nil {
		return fmt.Errorf("marshaling changelist: %w", err)
	}
	if err := staging.Put(ctx, model.GetPathToChangelist(), bytes.NewReader(b), storage.OverWrite); err != nil {
		return fmt.Errorf("writing changelist manifest: %w", err)
	}

	s.logger.Info("staged changelist",
		zap.String("staging", staging.String()),
		zap.Int("changes", len(desc.Changes)),
	)
	return nil
}

// ReadChangelist loads the changelist manifest from a staging store
func ReadChangelist(ctx context.Context, staging storage.Store) (model.ChangelistDescriptor, error) {
	rdr, err := staging.Get(ctx, model.GetPathToChangelist())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.ChangelistDescriptor{}, model.ErrChangelistNotFound
		}
		return model.ChangelistDescriptor{}, err
	}
	defer rdr.Close()

	b, err := io.ReadAll(rdr)
	if err != nil {
		return model.ChangelistDescriptor{}, err
	}
	return model.UnmarshalChangelist(b)
}

// Copyright © 2018 One Concern

package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/storage"
)

// Apply transforms the source tree according to the changeset: adds and
// modifies copy content over from the target tree, deletes remove the source
// entry. After a successful apply the source contents match the target's.
//
// With verification enabled (the default), content copied for an add or
// modify is re-fingerprinted first: a mismatch with the fingerprint captured
// at reconcile time means the target changed underneath us and fails the
// apply with model.ErrConflictingFingerprint.
func Apply(ctx context.Context, cs *model.ChangeSet, source, target storage.Store, opts ...Option) error {
	s := defaultSettings(opts...)

	for _, change := range cs.Changes() {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch change.Type {
		case model.ChangeTypeAdd, model.ChangeTypeModify:
			if s.verify {
				fp, err := s.maker.Process(ctx, target, change.Path)
				if err != nil {
					return fmt.Errorf("verifying %q: %w", change.Path, err)
				}
				if fmt.Sprintf("%x", fp) != change.Additional.Hash {
					return fmt.Errorf("%q: %w", change.Path, model.ErrConflictingFingerprint)
				}
			}

			rdr, err := target.Get(ctx, change.Path)
			if err != nil {
				return fmt.Errorf("reading %q from %s: %w", change.Path, target, err)
			}
			err = source.Put(ctx, change.Path, rdr, storage.OverWrite)
			if cerr := rdr.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("writing %q to %s: %w", change.Path, source, err)
			}
			s.logger.Info("applied change",
				zap.String("op", change.Type.String()),
				zap.String("path", change.Path),
			)

		case model.ChangeTypeDelete:
			if err := source.Delete(ctx, change.Path); err != nil {
				return fmt.Errorf("deleting %q from %s: %w", change.Path, source, err)
			}
			s.logger.Info("applied change",
				zap.String("op", change.Type.String()),
				zap.String("path", change.Path),
			)
		}
	}
	return nil
}

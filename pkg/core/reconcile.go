// Copyright © 2018 One Concern

package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/storage"
)

// Reconcile computes the changeset needed to bring the source tree in line
// with the target tree:
//
//   - a path present in target but not source yields an Add
//   - a path present in both with differing fingerprints yields a Modify
//   - a path present in source but not target yields a Delete
//
// An unreadable root fails with model.ErrPathUnavailable and no partial
// changeset is ever returned.
func Reconcile(ctx context.Context, source, target storage.Store, opts ...Option) (*model.ChangeSet, error) {
	s := defaultSettings(opts...)

	sourceEntries, err := Scan(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	targetEntries, err := Scan(ctx, target, opts...)
	if err != nil {
		return nil, err
	}

	cs, err := diffEntries(sourceEntries, targetEntries)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reconciled trees",
		zap.String("source", source.String()),
		zap.String("target", target.String()),
		zap.String("changes", cs.String()),
	)
	return cs, nil
}

// diffEntries diffs two entry collections into a changeset
func diffEntries(existing, additional model.Entries) (*model.ChangeSet, error) {
	cs := model.NewChangeSet()
	entriesExisting := existing.ByPath()
	entriesAdditional := additional.ByPath()

	for path, entryExisting := range entriesExisting {
		entryAdditional, ok := entriesAdditional[path]
		if ok {
			if entryAdditional.Hash != entryExisting.Hash {
				if err := cs.Add(model.Change{
					Type:       model.ChangeTypeModify,
					Path:       path,
					Existing:   entryExisting,
					Additional: entryAdditional,
				}); err != nil {
					return nil, err
				}
			}
		} else {
			if err := cs.Add(model.Change{
				Type:     model.ChangeTypeDelete,
				Path:     path,
				Existing: entryExisting,
			}); err != nil {
				return nil, err
			}
		}
	}
	for path, entryAdditional := range entriesAdditional {
		if _, ok := entriesExisting[path]; !ok {
			if err := cs.Add(model.Change{
				Type:       model.ChangeTypeAdd,
				Path:       path,
				Additional: entryAdditional,
			}); err != nil {
				return nil, err
			}
		}
	}
	return cs, nil
}

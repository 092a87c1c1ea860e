// Package vcs defines the changelist submission facility and a dry-run
// implementation. The git backend lives in the gitsubmit sub-package.
package vcs

import (
	"context"

	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/model"
)

// Submitter implementations turn an applied changelist into a submitted
// unit of version-control edits, returning a backend specific submission id.
type Submitter interface {
	Submit(ctx context.Context, desc model.ChangelistDescriptor) (string, error)
}

// NewDryRun yields a submitter which only reports what would be submitted
func NewDryRun(logger *zap.Logger) Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dryRun{logger: logger}
}

type dryRun struct {
	logger *zap.Logger
}

func (d *dryRun) Submit(_ context.Context, desc model.ChangelistDescriptor) (string, error) {
	if len(desc.Changes) == 0 {
		return "", model.ErrEmptyChangeSet
	}
	for _, change := range desc.Changes {
		d.logger.Info("would submit",
			zap.String("op", change.Type.String()),
			zap.String("path", change.Path),
		)
	}
	d.logger.Info("dry run: changelist not submitted", zap.String("message", desc.Message))
	return "dry-run", nil
}

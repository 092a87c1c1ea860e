package vcs

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/pkgmerger/pkg/dlogger"
	"github.com/oneconcern/pkgmerger/pkg/model"
)

func TestDryRunSubmit(t *testing.T) {
	var buf bytes.Buffer
	logger, err := dlogger.GetLoggerWithSink(dlogger.LogLevelInfo, &buf)
	require.NoError(t, err)

	desc := model.ChangelistDescriptor{
		Message: "vendor drop",
		Changes: []model.Change{
			{Type: model.ChangeTypeAdd, Path: "a.txt"},
			{Type: model.ChangeTypeDelete, Path: "b.txt"},
		},
	}

	id, err := NewDryRun(logger).Submit(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, "dry-run", id)
	assert.Contains(t, buf.String(), "a.txt")
	assert.Contains(t, buf.String(), "b.txt")
	assert.Contains(t, buf.String(), "not submitted")
}

func TestDryRunEmpty(t *testing.T) {
	_, err := NewDryRun(nil).Submit(context.Background(), model.ChangelistDescriptor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrEmptyChangeSet)
}

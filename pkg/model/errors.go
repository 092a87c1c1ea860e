// Copyright © 2018 One Concern

package model

type errorString string

func (e errorString) Error() string {
	return string(e)
}

const (
	// ErrPathUnavailable is returned when a reconciliation root is missing or unreadable
	ErrPathUnavailable errorString = "path unavailable"

	// ErrPathRequired is returned whenever a relative path is expected but not provided
	ErrPathRequired errorString = "path is required"

	// ErrDuplicatePath is returned when a path is recorded twice in a changeset
	ErrDuplicatePath errorString = "path already recorded in changeset"

	// ErrConflictingFingerprint is returned when a file no longer matches the
	// fingerprint captured at reconcile time
	ErrConflictingFingerprint errorString = "conflicting fingerprint"

	// ErrEmptyChangeSet is returned when a submission is attempted with no changes
	ErrEmptyChangeSet errorString = "changeset is empty"

	// ErrChangelistNotFound is returned when no staged changelist manifest exists
	ErrChangelistNotFound errorString = "changelist not found"
)

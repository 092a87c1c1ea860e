// Copyright © 2018 One Concern

// Package storage abstracts the file trees the reconciler works on behind a
// flat key/value store of relative paths, so scanning, staging and applying
// run the same against a real directory or an in-memory filesystem.
package storage

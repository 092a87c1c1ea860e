// Copyright © 2018 One Concern

// Package model describes the data model for package reconciliation:
// fingerprinted file entries, changesets and changelist descriptors.
package model

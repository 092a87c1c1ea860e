// Copyright © 2018 One Concern

// Package core implements the reconciliation engine: scanning trees into
// fingerprinted entries, diffing them into changesets, staging changelists
// and applying changesets back onto a tree.
package core

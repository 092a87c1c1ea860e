// Package gitsubmit submits changelists as git commits: every edit in the
// changeset is staged in the worktree index and committed with the
// changelist message and author.
package gitsubmit

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/vcs"
)

// Option to tune the submitter
type Option func(*Submitter)

// Logger injects a zap logger. Defaults to a nop logger.
func Logger(l *zap.Logger) Option {
	return func(s *Submitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// PathPrefix roots all changeset paths at a directory relative to the
// repository worktree, for source trees nested inside a larger repository.
func PathPrefix(prefix string) Option {
	return func(s *Submitter) {
		s.prefix = path.Clean(filepath.ToSlash(prefix))
	}
}

// Submitter stages and commits changelists in a git worktree
type Submitter struct {
	repo     *git.Repository
	worktree *git.Worktree
	prefix   string
	logger   *zap.Logger
}

var _ vcs.Submitter = &Submitter{}

// Open the repository whose worktree contains the given directory and build
// a submitter for it. The directory may be anywhere below the repository
// root: changeset paths are rerooted accordingly.
func Open(dir string, opts ...Option) (*Submitter, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %q: %w", dir, err)
	}

	s, err := New(repo, opts...)
	if err != nil {
		return nil, err
	}

	if s.prefix == "" || s.prefix == "." {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(s.worktree.Filesystem.Root(), abs)
		if err != nil {
			return nil, fmt.Errorf("locating %q within worktree: %w", dir, err)
		}
		s.prefix = path.Clean(filepath.ToSlash(rel))
	}
	return s, nil
}

// New builds a submitter for an already open repository
func New(repo *git.Repository, opts ...Option) (*Submitter, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository has no worktree: %w", err)
	}

	s := &Submitter{
		repo:     repo,
		worktree: worktree,
		logger:   zap.NewNop(),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s, nil
}

// Submit stages every change of the changelist in the index and commits.
// The returned submission id is the commit hash.
func (s *Submitter) Submit(ctx context.Context, desc model.ChangelistDescriptor) (string, error) {
	if len(desc.Changes) == 0 {
		return "", model.ErrEmptyChangeSet
	}

	for _, change := range desc.Changes {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		pth := s.reroot(change.Path)
		switch change.Type {
		case model.ChangeTypeAdd, model.ChangeTypeModify:
			if _, err := s.worktree.Add(pth); err != nil {
				return "", fmt.Errorf("staging %q: %w", pth, err)
			}
		case model.ChangeTypeDelete:
			if _, err := s.worktree.Remove(pth); err != nil {
				// untracked files have nothing to remove, matching git rm behavior
				if errors.Is(err, index.ErrEntryNotFound) {
					s.logger.Debug("path not tracked, nothing to remove", zap.String("path", pth))
					continue
				}
				return "", fmt.Errorf("removing %q: %w", pth, err)
			}
		}
		s.logger.Debug("staged change",
			zap.String("op", change.Type.String()),
			zap.String("path", pth),
		)
	}

	commit, err := s.worktree.Commit(desc.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  desc.Author.Name,
			Email: desc.Author.Email,
			When:  desc.Timestamp,
		},
	})
	if err != nil {
		return "", fmt.Errorf("committing changelist: %w", err)
	}

	s.logger.Info("submitted changelist",
		zap.String("commit", commit.String()),
		zap.String("message", desc.Message),
	)
	return commit.String(), nil
}

func (s *Submitter) reroot(p string) string {
	p = filepath.ToSlash(p)
	if s.prefix == "" || s.prefix == "." {
		return p
	}
	return path.Join(s.prefix, p)
}

// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/core"
	"github.com/oneconcern/pkgmerger/pkg/dlogger"
	"github.com/oneconcern/pkgmerger/pkg/model"
	"github.com/oneconcern/pkgmerger/pkg/storage"
	"github.com/oneconcern/pkgmerger/pkg/storage/localfs"
)

const defaultStagingPath = ".pkgmerger/stage"

// localStore opens a directory as a store, failing upfront when the root is
// missing or not a directory.
func localStore(dir string) (storage.StatStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: set the flag or add it to the config file", model.ErrPathRequired)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", model.ErrPathUnavailable, dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", model.ErrPathUnavailable, dir)
	}
	return localfs.New(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// stagingStore opens the staging area, creating it when absent.
func stagingStore(dir string) (storage.StatStore, error) {
	if dir == "" {
		dir = defaultStagingPath
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", model.ErrPathUnavailable, dir, err)
	}
	return localfs.New(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

func mustLogger() *zap.Logger {
	logger, err := dlogger.GetLogger(mergerFlags.root.logLevel)
	if err != nil {
		wrapFatalln("invalid log level", err)
		return zap.NewNop()
	}
	return logger
}

func coreOpts(logger *zap.Logger) []core.Option {
	opts := []core.Option{core.Logger(logger)}
	if mergerFlags.merge.ConcurrencyFactor > 0 {
		opts = append(opts, core.ConcurrencyFactor(mergerFlags.merge.ConcurrencyFactor))
	}
	if len(mergerFlags.merge.SkipPatterns) > 0 {
		opts = append(opts, core.SkipPatterns(mergerFlags.merge.SkipPatterns...))
	}
	return opts
}

// changelistAuthor resolves the changelist author from flags and config,
// falling back on the current OS user.
func changelistAuthor() model.Author {
	author := model.Author{
		Name:  mergerFlags.author.Name,
		Email: mergerFlags.author.Email,
	}
	if author.Name == "" {
		author.Name = os.Getenv("USER")
	}
	return author
}

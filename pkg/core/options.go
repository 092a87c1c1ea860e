// Copyright © 2018 One Concern

package core

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/oneconcern/pkgmerger/pkg/fingerprint"
)

// defaultSkipPatterns mirrors the file types the merger has always ignored
// in package drops (compiled artifacts shipped next to their sources).
var defaultSkipPatterns = []string{"*.pyc"}

type settings struct {
	logger       *zap.Logger
	concurrency  int
	skipPatterns []string
	maker        *fingerprint.Maker
	verify       bool
}

// Option to tune core operations
type Option func(*settings)

// Logger injects a zap logger. Defaults to a nop logger.
func Logger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// ConcurrencyFactor bounds the number of concurrent fingerprint computations
func ConcurrencyFactor(factor int) Option {
	return func(s *settings) {
		if factor > 0 {
			s.concurrency = factor
		}
	}
}

// SkipPatterns replaces the default skip patterns. Patterns match against
// the base name of each scanned file.
func SkipPatterns(patterns ...string) Option {
	return func(s *settings) {
		s.skipPatterns = patterns
	}
}

// FingerprintMaker overrides the default fingerprint maker
func FingerprintMaker(m *fingerprint.Maker) Option {
	return func(s *settings) {
		if m != nil {
			s.maker = m
		}
	}
}

// Verify toggles fingerprint verification when applying changes.
// Enabled by default: a file changed underneath us since the reconcile
// run fails the apply rather than propagating unknown content.
func Verify(enabled bool) Option {
	return func(s *settings) {
		s.verify = enabled
	}
}

func defaultSettings(opts ...Option) settings {
	s := settings{
		logger:       zap.NewNop(),
		concurrency:  2 * runtime.NumCPU(),
		skipPatterns: defaultSkipPatterns,
		maker:        fingerprint.New(),
		verify:       true,
	}
	for _, apply := range opts {
		apply(&s)
	}
	return s
}

package source

import (
	"github.com/bethropolis/acacls/internal/pattern"
	"github.com/bethropolis/acacls/internal/utils"
	"github.com/spf13/afero"
)

// Option functions for configuration
type Option func(*Resolver)

func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		if fs != nil {
			r.fs = fs
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithEngine(engine pattern.Engine) Option {
	return func(r *Resolver) {
		if engine != "" {
			r.engine = engine
		}
	}
}

// WithFileNames overrides the local pattern file names. Empty names keep
// the defaults.
func WithFileNames(hidden, ignore string) Option {
	return func(r *Resolver) {
		if hidden != "" {
			r.hiddenFile = hidden
		}
		if ignore != "" {
			r.ignoreFile = ignore
		}
	}
}

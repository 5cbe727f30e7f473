package walker

import (
	"context"

	"github.com/bethropolis/acacls/internal/utils"
	"github.com/spf13/afero"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger utils.Logger
	Fs     afero.Fs
	// Context is checked between entries.
	Context context.Context
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:  utils.NoopLogger{},
		Fs:      afero.NewOsFs(),
		Context: context.Background(),
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithFs sets the filesystem to enumerate
func WithFs(fs afero.Fs) Option {
	return func(opts *WalkOptions) {
		if fs != nil {
			opts.Fs = fs
		}
	}
}

// WithContext sets the context for cancellation
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

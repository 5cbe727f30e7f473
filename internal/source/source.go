// Package source locates and loads the pattern files that apply to a
// directory and merges them into a visibility.DirectoryContext.
//
// For each category the global file (named by an environment variable)
// comes first and the local file in the directory second. Both are
// additive. A missing file contributes nothing; an unreadable one is
// reported as a warning and also contributes nothing.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bethropolis/acacls/internal/pattern"
	"github.com/bethropolis/acacls/internal/utils"
	"github.com/bethropolis/acacls/internal/visibility"
	"github.com/spf13/afero"
)

const (
	// GlobalHiddenVar names the file of patterns hidden in every directory.
	GlobalHiddenVar = "LS_GLOBAL_HIDDEN"
	// GlobalIgnoreVar names the file of patterns ignored in every directory.
	GlobalIgnoreVar = "LS_GLOBAL_IGNORE"

	DefaultHiddenFile = ".hidden"
	DefaultIgnoreFile = ".ignore"
)

// ErrPatternFileUnreadable marks a pattern file that exists but could not
// be read. It never aborts a listing.
var ErrPatternFileUnreadable = errors.New("pattern file unreadable")

// PathLookup resolves a named configuration path, typically from the
// environment. ok is false when the name is unset or empty.
type PathLookup interface {
	LookupPath(name string) (path string, ok bool)
}

// LookupFunc adapts a function to PathLookup.
type LookupFunc func(name string) (string, bool)

func (f LookupFunc) LookupPath(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(name)
}

// Resolver builds DirectoryContexts. Global files are read on first use
// and reused for every directory of the invocation.
type Resolver struct {
	fs         afero.Fs
	lookup     PathLookup
	logger     utils.Logger
	engine     pattern.Engine
	hiddenFile string
	ignoreFile string

	globalsLoaded bool
	globalHidden  *pattern.PatternSet
	globalIgnored *pattern.PatternSet

	warnings []error
}

// New creates a Resolver reading from the OS filesystem by default.
func New(lookup PathLookup, opts ...Option) *Resolver {
	r := &Resolver{
		fs:         afero.NewOsFs(),
		lookup:     lookup,
		logger:     utils.NoopLogger{},
		engine:     pattern.EngineGlob,
		hiddenFile: DefaultHiddenFile,
		ignoreFile: DefaultIgnoreFile,
	}
	if r.lookup == nil {
		r.lookup = LookupFunc(nil)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the context for dir.
func (r *Resolver) Resolve(dir string) *visibility.DirectoryContext {
	r.loadGlobals()

	localHidden := r.load(filepath.Join(dir, r.hiddenFile), pattern.OriginLocal)
	localIgnored := r.load(filepath.Join(dir, r.ignoreFile), pattern.OriginLocal)

	ctx := visibility.NewDirectoryContext(dir,
		pattern.Union(r.globalHidden, localHidden),
		pattern.Union(r.globalIgnored, localIgnored),
	)
	r.logger.Debug("source.Resolve: %s: %d hidden, %d ignored patterns",
		dir, ctx.Hidden.Len(), ctx.Ignored.Len())
	return ctx
}

// Warnings returns the recoverable errors met so far. Each wraps
// ErrPatternFileUnreadable.
func (r *Resolver) Warnings() []error {
	out := make([]error, len(r.warnings))
	copy(out, r.warnings)
	return out
}

func (r *Resolver) loadGlobals() {
	if r.globalsLoaded {
		return
	}
	r.globalsLoaded = true

	if path, ok := r.lookup.LookupPath(GlobalHiddenVar); ok && path != "" {
		r.globalHidden = r.load(path, pattern.OriginGlobal)
	} else {
		r.logger.Debug("source: %s not set", GlobalHiddenVar)
	}
	if path, ok := r.lookup.LookupPath(GlobalIgnoreVar); ok && path != "" {
		r.globalIgnored = r.load(path, pattern.OriginGlobal)
	} else {
		r.logger.Debug("source: %s not set", GlobalIgnoreVar)
	}
}

func (r *Resolver) load(path string, kind pattern.OriginKind) *pattern.PatternSet {
	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("source: no pattern file at %s", path)
			return pattern.Empty()
		}
		return r.unreadable(path, err)
	}
	if info.IsDir() {
		return r.unreadable(path, errors.New("is a directory"))
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return r.unreadable(path, err)
	}

	return pattern.Parse(string(data), pattern.Origin{Kind: kind, Path: path},
		pattern.WithEngine(r.engine),
		pattern.WithLogger(r.logger),
	)
}

func (r *Resolver) unreadable(path string, cause error) *pattern.PatternSet {
	err := fmt.Errorf("source: %w: %s: %v", ErrPatternFileUnreadable, path, cause)
	r.warnings = append(r.warnings, err)
	r.logger.Warn("Ignoring pattern file %s: %v", path, cause)
	return pattern.Empty()
}

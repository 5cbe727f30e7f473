package walker

import (
	"fmt"

	"github.com/bethropolis/acacls/internal/visibility"
	"github.com/spf13/afero"
)

// Walk enumerates the immediate entries of ctx.Dir once and classifies
// each at level. It does not descend into subdirectories. "." and ".."
// are not reported since the filesystem does not list them.
func Walk(ctx *visibility.DirectoryContext, level visibility.Level, opts ...Option) (*Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	infos, err := afero.ReadDir(options.Fs, ctx.Dir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to read directory '%s': %w", ctx.Dir, err)
	}

	options.Logger.Debug("walker.Walk: %s has %d entries (level %s)", ctx.Dir, len(infos), level)

	result := &Result{Dir: ctx.Dir, Entries: make([]Entry, 0, len(infos))}
	tracker := NewSkippedTracker(len(infos))

	for _, info := range infos {
		select {
		case <-options.Context.Done():
			return nil, options.Context.Err()
		default:
		}

		entry := Entry{Name: info.Name(), IsDir: info.IsDir()}
		result.Entries = append(result.Entries, entry)

		d := visibility.Classify(entry.Name, level, ctx)
		if d.Visible {
			continue
		}

		reason := reasonFor(entry.Name, d.Category, ctx)
		options.Logger.Debug("walker.Walk: withholding %q: %s", entry.Name, reason)
		tracker.Track(ctx.Dir, entry.Name, reason, entry.IsDir)
	}

	result.Skipped = tracker.Items()
	return result, nil
}

// Package walker enumerates the immediate entries of a directory and
// sorts them into visible and withheld using a visibility.DirectoryContext.
package walker

import (
	"github.com/bethropolis/acacls/internal/visibility"
)

// Entry is one directory entry.
type Entry struct {
	Name  string
	IsDir bool
}

// SkippedReason clarifies why an entry was withheld from the listing.
type SkippedReason string

const (
	ReasonHiddenDotfile SkippedReason = "Hidden (Dotfile)"
	ReasonHiddenRule    SkippedReason = "Hidden (Pattern Rule)"
	ReasonIgnoredRule   SkippedReason = "Ignored (Pattern Rule)"
)

// reasonFor maps a withheld entry to the rule that withheld it.
func reasonFor(name string, cat visibility.Category, ctx *visibility.DirectoryContext) SkippedReason {
	if cat == visibility.Ignored {
		return ReasonIgnoredRule
	}
	if ctx != nil && ctx.Hidden.Matches(name) {
		return ReasonHiddenRule
	}
	return ReasonHiddenDotfile
}

// SkippedItem holds information about a withheld entry.
type SkippedItem struct {
	Dir    string        `json:"dir"`
	Name   string        `json:"name"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects withheld entries in enumeration order.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(dir, name string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Dir: dir, Name: name, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}

// Result is the outcome of Walk for one directory.
type Result struct {
	Dir     string
	Entries []Entry
	Skipped []SkippedItem
}

// Names returns the names of all enumerated entries.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		names = append(names, e.Name)
	}
	return names
}

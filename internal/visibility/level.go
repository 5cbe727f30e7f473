// Package visibility decides which directory entries a listing shows.
//
// A Level says how much of the hidden/ignored hierarchy is requested; a
// DirectoryContext holds the resolved pattern sets for one directory; the
// classifier combines the two. Matching never depends on the Level, so a
// Category computed once stays valid whatever Level is asked for.
package visibility

import (
	"fmt"
	"strings"
)

// Level is ordered from least to most permissive. The zero value,
// HideHidden, is the default and the identity for Merge.
type Level int

const (
	// HideHidden shows neither hidden nor ignored entries.
	HideHidden Level = iota
	// HideIgnored shows hidden entries but not ignored ones.
	HideIgnored
	// ShowAll shows everything, including "." and "..".
	ShowAll
)

func (l Level) String() string {
	switch l {
	case HideHidden:
		return "hide-hidden"
	case HideIgnored:
		return "hide-ignored"
	case ShowAll:
		return "show-all"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Merge returns the more permissive of a and b. It is associative,
// commutative and idempotent, so flags can be folded in any order.
func Merge(a, b Level) Level {
	if b > a {
		return b
	}
	return a
}

// Merge is the method form of Merge.
func (l Level) Merge(other Level) Level {
	return Merge(l, other)
}

// MergeAll folds levels starting from HideHidden.
func MergeAll(levels ...Level) Level {
	acc := HideHidden
	for _, l := range levels {
		acc = Merge(acc, l)
	}
	return acc
}

// FromShortFlag maps a character of a short flag cluster. ok is false
// for characters that are not visibility flags.
func FromShortFlag(c rune) (level Level, ok bool) {
	switch c {
	case 'a':
		return HideIgnored, true
	case 'A':
		return ShowAll, true
	}
	return HideHidden, false
}

// FromLongFlag maps a whole argument token. Only exact matches count;
// "--all" and "--almost-all" are left to the listing command.
func FromLongFlag(token string) (level Level, ok bool) {
	switch token {
	case "--show-hidden":
		return HideIgnored, true
	case "--show-ignored":
		return ShowAll, true
	}
	return HideHidden, false
}

// ParseLevel accepts the names produced by String.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hide-hidden":
		return HideHidden, nil
	case "hide-ignored":
		return HideIgnored, nil
	case "show-all":
		return ShowAll, nil
	}
	return HideHidden, fmt.Errorf("visibility: unknown level %q", name)
}

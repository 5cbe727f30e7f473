package visibility

import (
	"strings"

	"github.com/bethropolis/acacls/internal/pattern"
)

// GNU ls flags. ls only knows "show dotfiles" (-A) and "show dotfiles
// plus . and .." (-a); everything finer goes through --ignore.
const (
	FlagAlmostAll = "-A"
	FlagAll       = "-a"
	IgnorePrefix  = "--ignore="
)

// ExclusionArguments derives the ls arguments that make ls itself hide
// what level hides, from the patterns in ctx:
//
//	HideHidden:  --ignore for every ignored, then every hidden pattern
//	HideIgnored: -A, then --ignore for every ignored pattern
//	ShowAll:     -a
//
// Rules are rewritten for ls's fnmatch (see pattern.FnmatchForms). Once
// -A makes ls list dotfiles, ignored rules also get their dotfile forms.
// Negated rules cannot be expressed as --ignore and are skipped; entry
// mode (EntryExclusions) handles them exactly.
func ExclusionArguments(level Level, ctx *DirectoryContext) []string {
	if ctx == nil {
		ctx = NewDirectoryContext("", nil, nil)
	}
	if level >= ShowAll {
		return []string{FlagAll}
	}

	var args []string
	if level == HideIgnored {
		args = append(args, FlagAlmostAll)
		args = appendIgnores(args, ctx.Ignored, true)
		return dedupe(args)
	}
	args = appendIgnores(args, ctx.Ignored, false)
	args = appendIgnores(args, ctx.Hidden, false)
	return dedupe(args)
}

// EntryExclusions is the exact variant of ExclusionArguments: given the
// enumerated entries of ctx.Dir, it emits a literal --ignore for each
// entry the level hides. At HideHidden, dotfiles are left to ls, which
// hides them by default.
func EntryExclusions(level Level, ctx *DirectoryContext, names []string) []string {
	var args []string
	switch {
	case level >= ShowAll:
		return []string{FlagAll}
	case level == HideIgnored:
		args = append(args, FlagAlmostAll)
	}

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		if level == HideHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !Classify(name, level, ctx).Visible {
			args = append(args, IgnorePrefix+EscapeGlob(name))
		}
	}
	return dedupe(args)
}

// MergeExclusions concatenates argument lists computed for several
// directories, dropping repeats.
func MergeExclusions(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return dedupe(all)
}

// EscapeGlob quotes the fnmatch metacharacters in a literal filename.
func EscapeGlob(name string) string {
	if !strings.ContainsAny(name, `*?[\`) {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func appendIgnores(args []string, set *pattern.PatternSet, dotfiles bool) []string {
	for _, p := range set.Patterns() {
		if p.Negated {
			continue
		}
		for _, g := range p.FnmatchForms(dotfiles) {
			args = append(args, IgnorePrefix+g)
		}
	}
	return args
}

func dedupe(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(args))
	out := args[:0:0]
	for _, a := range args {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// Package pattern parses visibility pattern files (.hidden, .ignore and
// their global counterparts) into ordered sets of filename match rules.
//
// Matching is pluggable through the Matcher interface. The default glob
// engine covers the basic gitignore glob forms; the gitignore engine adds
// negation for users who opt in.
package pattern

import (
	"fmt"

	"github.com/bethropolis/acacls/internal/utils"
)

// OriginKind says whether a pattern came from a per-directory file or a
// file referenced by the environment.
type OriginKind int

const (
	OriginLocal OriginKind = iota
	OriginGlobal
)

func (k OriginKind) String() string {
	if k == OriginGlobal {
		return "global"
	}
	return "local"
}

// Origin identifies the file a pattern was read from.
type Origin struct {
	Kind OriginKind
	Path string
}

func (o Origin) String() string {
	if o.Path == "" {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Path)
}

// Pattern is one rule from a pattern file.
type Pattern struct {
	// Glob is the normalized rule: surrounding whitespace and any
	// leading or trailing '/' removed.
	Glob   string
	Origin Origin
	// Line is the 1-based line number in the source file.
	Line int
	// Negated is only ever set by the gitignore engine, for '!' rules.
	Negated bool
	// Engine is the matcher the rule was compiled for.
	Engine Engine
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s (%s:%d)", p.Glob, p.Origin, p.Line)
}

// Matcher decides whether a bare filename matches a compiled rule list.
type Matcher interface {
	Match(name string) bool
}

// PatternSet is an ordered, immutable collection of patterns for one
// category. A set built by Union keeps one matcher per source, and a name
// matches the set when any source matches it: sources are additive.
type PatternSet struct {
	patterns []Pattern
	matchers []Matcher
}

// Empty returns a set that matches nothing.
func Empty() *PatternSet {
	return &PatternSet{}
}

// Matches reports whether name matches any pattern in the set.
func (s *PatternSet) Matches(name string) bool {
	if s == nil {
		return false
	}
	for _, m := range s.matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the patterns in file order.
func (s *PatternSet) Patterns() []Pattern {
	if s == nil {
		return nil
	}
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Len returns the number of patterns.
func (s *PatternSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Union concatenates sets in argument order. Nil sets are skipped.
func Union(sets ...*PatternSet) *PatternSet {
	out := &PatternSet{}
	for _, s := range sets {
		if s == nil {
			continue
		}
		out.patterns = append(out.patterns, s.patterns...)
		out.matchers = append(out.matchers, s.matchers...)
	}
	return out
}

type options struct {
	engine Engine
	logger utils.Logger
}

// Option configures Parse.
type Option func(*options)

// WithEngine selects the matching engine.
func WithEngine(e Engine) Option {
	return func(o *options) {
		if e != "" {
			o.engine = e
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

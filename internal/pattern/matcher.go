package pattern

import (
	"fmt"
	"strings"

	"github.com/bethropolis/acacls/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/gobwas/glob"
)

// Engine names a Matcher implementation.
type Engine string

const (
	// EngineGlob supports '*', '?', '**', character classes and braces.
	EngineGlob Engine = "glob"
	// EngineGitignore delegates to a gitignore parser and honours '!'.
	EngineGitignore Engine = "gitignore"
)

// ParseEngine validates an engine name from configuration.
func ParseEngine(name string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(name))); e {
	case "", EngineGlob:
		return EngineGlob, nil
	case EngineGitignore:
		return e, nil
	default:
		return "", fmt.Errorf("pattern: unknown matching engine %q", name)
	}
}

func compile(engine Engine, patterns []Pattern, rules []string, origin Origin, logger utils.Logger) Matcher {
	if engine == EngineGitignore {
		return newGitignoreMatcher(rules, origin, logger)
	}
	return newGlobMatcher(patterns, logger)
}

// globMatcher holds one compiled glob per pattern. Patterns gobwas/glob
// rejects (an unterminated '[' for instance) fall back to equality.
type globMatcher struct {
	globs    []glob.Glob
	literals map[string]struct{}
}

func newGlobMatcher(patterns []Pattern, logger utils.Logger) *globMatcher {
	m := &globMatcher{literals: make(map[string]struct{})}
	for _, p := range patterns {
		g, err := glob.Compile(p.Glob, '/')
		if err != nil {
			logger.Debug("pattern: %s is not a valid glob, matching literally: %v", p, err)
			m.literals[p.Glob] = struct{}{}
			continue
		}
		m.globs = append(m.globs, g)
	}
	return m
}

func (m *globMatcher) Match(name string) bool {
	if _, ok := m.literals[name]; ok {
		return true
	}
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// gitignoreMatcher evaluates the whole source file at once so later '!'
// rules can re-include names matched by earlier ones.
type gitignoreMatcher struct {
	ignore gitignore.GitIgnore
}

func newGitignoreMatcher(rules []string, origin Origin, logger utils.Logger) *gitignoreMatcher {
	reader := strings.NewReader(strings.Join(rules, "\n"))
	ignore := gitignore.New(reader, "", func(e gitignore.Error) bool {
		logger.Debug("pattern: gitignore engine skipped a rule in %s: %v", origin, e)
		return true
	})
	return &gitignoreMatcher{ignore: ignore}
}

// Match tries the name as a file first and then as a directory, so a
// directory-only rule such as "build/" still hides an entry named build.
func (m *gitignoreMatcher) Match(name string) bool {
	match := m.ignore.Relative(name, false)
	if match == nil {
		match = m.ignore.Relative(name, true)
	}
	return match != nil && match.Ignore()
}

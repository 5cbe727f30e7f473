package pattern

import (
	"strings"

	"github.com/bethropolis/acacls/internal/utils"
)

// Parse reads pattern file contents. Blank lines and lines starting with
// '#' are skipped; every other line becomes one Pattern, in file order.
// Parse never fails: a rule the engine cannot compile is matched as a
// literal filename.
func Parse(contents string, origin Origin, opts ...Option) *PatternSet {
	o := options{engine: EngineGlob, logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	var patterns []Pattern
	var rules []string
	for i, raw := range strings.Split(contents, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := Pattern{Origin: origin, Line: i + 1, Engine: o.engine}
		body := line
		if o.engine == EngineGitignore && strings.HasPrefix(body, "!") {
			p.Negated = true
			body = body[1:]
		}
		p.Glob = normalize(body)
		if p.Glob == "" {
			o.logger.Debug("pattern.Parse: skipping empty rule at %s:%d", origin, i+1)
			continue
		}

		patterns = append(patterns, p)
		rules = append(rules, line)
	}

	if len(patterns) == 0 {
		return Empty()
	}
	o.logger.Debug("pattern.Parse: %d rules from %s (engine %s)", len(patterns), origin, o.engine)

	return &PatternSet{
		patterns: patterns,
		matchers: []Matcher{compile(o.engine, patterns, rules, origin, o.logger)},
	}
}

// normalize strips the anchoring and directory-only markers. Only bare
// names of immediate directory entries are ever matched, so "/build/"
// and "build" mean the same thing here.
func normalize(rule string) string {
	return strings.Trim(rule, "/")
}

package pattern

import (
	"strings"

	"github.com/gobwas/glob"
)

// FnmatchForms rewrites p into globs for fnmatch(3), which is how GNU ls
// applies --ignore. Brace alternatives become separate globs, since
// fnmatch has no braces. With dotfiles set, each glob also gets forms with
// an explicit leading '.': fnmatch runs with FNM_PERIOD, so a leading
// wildcard never matches a dotfile, while the matchers here do.
func (p Pattern) FnmatchForms(dotfiles bool) []string {
	globs := []string{p.Glob}
	if p.Engine != EngineGitignore {
		globs = expandBraces(p.Glob)
	}

	var out []string
	for _, g := range globs {
		out = append(out, g)
		if dotfiles {
			out = append(out, dotForms(g)...)
		}
	}
	return out
}

// dotForms returns fnmatch globs that together match exactly the dotfiles
// g matches without the leading period rule.
func dotForms(g string) []string {
	if g == "" {
		return nil
	}
	switch g[0] {
	case '.':
		return []string{g}
	case '\\':
		if len(g) > 1 && g[1] == '.' {
			return []string{g}
		}
	case '?':
		return []string{"." + g[1:]}
	case '[':
		end := classEnd(g)
		if end < 0 {
			return nil
		}
		class, err := glob.Compile(g[:end+1])
		if err != nil || !class.Match(".") {
			return nil
		}
		return []string{"." + g[end+1:]}
	case '*':
		// The star either covers the leading '.' or matches nothing.
		rest := strings.TrimLeft(g, "*")
		return append([]string{".*" + rest}, dotForms(rest)...)
	}
	return nil
}

// classEnd returns the index of the ']' closing the class at g[0].
func classEnd(g string) int {
	i := 1
	if i < len(g) && (g[i] == '!' || g[i] == '^') {
		i++
	}
	if i < len(g) && g[i] == ']' {
		i++
	}
	if j := strings.IndexByte(g[i:], ']'); j >= 0 {
		return i + j
	}
	return -1
}

// expandBraces turns "a{b,c}d" into "abd" and "acd", recursively. An
// unbalanced brace is left as it is.
func expandBraces(g string) []string {
	open, end, depth := -1, -1, 0
	var commas []int
	for i := 0; i < len(g) && end < 0; i++ {
		switch g[i] {
		case '\\':
			i++
		case '{':
			if depth == 0 {
				open = i
				commas = nil
			}
			depth++
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				end = i
			}
		}
	}
	if open < 0 || end < 0 {
		return []string{g}
	}

	prefix, suffix := g[:open], g[end+1:]
	var out []string
	start := open + 1
	for _, stop := range append(commas, end) {
		out = append(out, expandBraces(prefix+g[start:stop]+suffix)...)
		start = stop + 1
	}
	return out
}

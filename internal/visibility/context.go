package visibility

import (
	"strings"

	"github.com/bethropolis/acacls/internal/pattern"
)

// DirectoryContext is the resolved pair of pattern sets for one directory.
// It is built once by the source resolver and never modified.
type DirectoryContext struct {
	Dir     string
	Hidden  *pattern.PatternSet
	Ignored *pattern.PatternSet
}

// NewDirectoryContext substitutes empty sets for nil ones.
func NewDirectoryContext(dir string, hidden, ignored *pattern.PatternSet) *DirectoryContext {
	if hidden == nil {
		hidden = pattern.Empty()
	}
	if ignored == nil {
		ignored = pattern.Empty()
	}
	return &DirectoryContext{Dir: dir, Hidden: hidden, Ignored: ignored}
}

// IsIgnored reports membership in the ignored category. "." and ".." are
// always ignored, whatever the pattern files say.
func (c *DirectoryContext) IsIgnored(name string) bool {
	if name == "." || name == ".." {
		return true
	}
	return c != nil && c.Ignored.Matches(name)
}

// IsHidden reports membership in the hidden category, which includes
// every ignored name even when no hidden file lists it.
func (c *DirectoryContext) IsHidden(name string) bool {
	if strings.HasPrefix(name, ".") || c.IsIgnored(name) {
		return true
	}
	return c != nil && c.Hidden.Matches(name)
}

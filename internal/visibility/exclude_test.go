package visibility

import (
	"testing"

	"github.com/bethropolis/acacls/internal/pattern"
	"github.com/stretchr/testify/assert"
)

func TestExclusionArguments(t *testing.T) {
	ctx := newContext("secret.txt\n*.bak", "build/\n*.o\nsecret.txt")

	tests := []struct {
		level Level
		want  []string
	}{
		{HideHidden, []string{"--ignore=build", "--ignore=*.o", "--ignore=secret.txt", "--ignore=*.bak"}},
		{HideIgnored, []string{"-A", "--ignore=build", "--ignore=*.o", "--ignore=.*.o", "--ignore=.o", "--ignore=secret.txt"}},
		{ShowAll, []string{"-a"}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ExclusionArguments(tt.level, ctx))
		})
	}
}

func TestExclusionArguments_EmptyContext(t *testing.T) {
	ctx := NewDirectoryContext(".", nil, nil)
	assert.Empty(t, ExclusionArguments(HideHidden, ctx))
	assert.Equal(t, []string{"-A"}, ExclusionArguments(HideIgnored, ctx))
	assert.Equal(t, []string{"-a"}, ExclusionArguments(ShowAll, nil))
}

func TestExclusionArguments_SkipsNegatedRules(t *testing.T) {
	origin := pattern.Origin{Kind: pattern.OriginLocal, Path: ".ignore"}
	ignored := pattern.Parse("*.log\n!keep.log", origin, pattern.WithEngine(pattern.EngineGitignore))
	ctx := NewDirectoryContext(".", nil, ignored)

	assert.Equal(t, []string{"-A", "--ignore=*.log", "--ignore=.*.log", "--ignore=.log"}, ExclusionArguments(HideIgnored, ctx))
}

func TestExclusionArguments_FnmatchForms(t *testing.T) {
	ctx := newContext("{notes,todo}.md", "?cache\n{a,b}.o")

	assert.Equal(t,
		[]string{"--ignore=?cache", "--ignore=a.o", "--ignore=b.o", "--ignore=notes.md", "--ignore=todo.md"},
		ExclusionArguments(HideHidden, ctx))
	assert.Equal(t,
		[]string{"-A", "--ignore=?cache", "--ignore=.cache", "--ignore=a.o", "--ignore=b.o"},
		ExclusionArguments(HideIgnored, ctx))
}

func TestEntryExclusions(t *testing.T) {
	ctx := newContext("secret.txt", "build\n**.tmp")
	names := []string{".", "..", ".git", "secret.txt", "build", "a.tmp", "readme.md", "we[ird]*.tmp"}

	assert.Equal(t,
		[]string{"--ignore=secret.txt", "--ignore=build", "--ignore=a.tmp", `--ignore=we\[ird]\*.tmp`},
		EntryExclusions(HideHidden, ctx, names))
	assert.Equal(t,
		[]string{"-A", "--ignore=build", "--ignore=a.tmp", `--ignore=we\[ird]\*.tmp`},
		EntryExclusions(HideIgnored, ctx, names))
	assert.Equal(t, []string{"-a"}, EntryExclusions(ShowAll, ctx, names))
}

func TestEntryExclusions_HonoursNegation(t *testing.T) {
	origin := pattern.Origin{Kind: pattern.OriginLocal, Path: ".ignore"}
	ignored := pattern.Parse("*.log\n!keep.log", origin, pattern.WithEngine(pattern.EngineGitignore))
	ctx := NewDirectoryContext(".", nil, ignored)

	got := EntryExclusions(HideIgnored, ctx, []string{"debug.log", "keep.log"})
	assert.Equal(t, []string{"-A", "--ignore=debug.log"}, got)
}

func TestMergeExclusions(t *testing.T) {
	got := MergeExclusions(
		[]string{"-A", "--ignore=build"},
		nil,
		[]string{"-A", "--ignore=dist", "--ignore=build"},
	)
	assert.Equal(t, []string{"-A", "--ignore=build", "--ignore=dist"}, got)
	assert.Nil(t, MergeExclusions())
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "plain.txt", EscapeGlob("plain.txt"))
	assert.Equal(t, `a\*b\?c\[d]\\e`, EscapeGlob(`a*b?c[d]\e`))
}

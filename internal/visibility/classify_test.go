package visibility

import (
	"testing"

	"github.com/bethropolis/acacls/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(hidden, ignored string) *DirectoryContext {
	return NewDirectoryContext(".",
		pattern.Parse(hidden, pattern.Origin{Kind: pattern.OriginLocal, Path: ".hidden"}),
		pattern.Parse(ignored, pattern.Origin{Kind: pattern.OriginLocal, Path: ".ignore"}),
	)
}

func TestClassify_PlainNamesAlwaysShown(t *testing.T) {
	ctx := newContext("*.bak", "*.o")
	for _, name := range []string{"main.go", "README", "Makefile", "a b c"} {
		for _, level := range allLevels {
			d := Classify(name, level, ctx)
			assert.Equal(t, Shown, d.Category, name)
			assert.True(t, d.Visible, "%s at %s", name, level)
		}
	}
}

func TestClassify_DotEntriesAreIgnored(t *testing.T) {
	ctx := newContext("", "")
	for _, name := range []string{".", ".."} {
		assert.Equal(t, Ignored, Categorize(name, ctx))
		assert.False(t, Classify(name, HideHidden, ctx).Visible)
		assert.False(t, Classify(name, HideIgnored, ctx).Visible)
		assert.True(t, Classify(name, ShowAll, ctx).Visible)
	}

	// Pattern contents cannot change that.
	ctx = newContext("!..", "!.")
	assert.Equal(t, Ignored, Categorize(".", ctx))
	assert.Equal(t, Ignored, Categorize("..", NewDirectoryContext(".", nil, nil)))
}

func TestClassify_Gating(t *testing.T) {
	ctx := newContext("notes.md", "*.o")
	tests := []struct {
		name     string
		category Category
		visible  map[Level]bool
	}{
		{".profile", Hidden, map[Level]bool{HideHidden: false, HideIgnored: true, ShowAll: true}},
		{"notes.md", Hidden, map[Level]bool{HideHidden: false, HideIgnored: true, ShowAll: true}},
		{"main.o", Ignored, map[Level]bool{HideHidden: false, HideIgnored: false, ShowAll: true}},
		{".cache.o", Ignored, map[Level]bool{HideHidden: false, HideIgnored: false, ShowAll: true}},
		{"main.c", Shown, map[Level]bool{HideHidden: true, HideIgnored: true, ShowAll: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for level, want := range tt.visible {
				d := Classify(tt.name, level, ctx)
				assert.Equal(t, tt.category, d.Category)
				assert.Equal(t, want, d.Visible, "at %s", level)
			}
		})
	}
}

func TestClassify_IgnoredImpliesHidden(t *testing.T) {
	ctx := newContext("", "build\n*.tmp\ncache")
	for _, name := range []string{"build", "x.tmp", "cache"} {
		require.True(t, ctx.Ignored.Matches(name))
		assert.False(t, ctx.Hidden.Matches(name), "not in the hidden file itself")
		assert.True(t, ctx.IsHidden(name), name)
		assert.False(t, Classify(name, HideHidden, ctx).Visible)
		assert.False(t, Classify(name, HideIgnored, ctx).Visible)
	}
}

func TestClassify_Scenario(t *testing.T) {
	ctx := newContext("secret.txt", "build/")
	level := MergeAll(HideIgnored)

	names := []string{".", "..", ".git", "secret.txt", "build", "readme.md"}
	want := []Decision{
		{Name: ".", Category: Ignored, Visible: false},
		{Name: "..", Category: Ignored, Visible: false},
		{Name: ".git", Category: Hidden, Visible: true},
		{Name: "secret.txt", Category: Hidden, Visible: true},
		{Name: "build", Category: Ignored, Visible: false},
		{Name: "readme.md", Category: Shown, Visible: true},
	}

	got := ClassifyAll(names, level, ctx)
	assert.Equal(t, want, got)

	var shown []string
	for _, d := range got {
		if d.Visible {
			shown = append(shown, d.Name)
		}
	}
	assert.ElementsMatch(t, []string{".git", "secret.txt", "readme.md"}, shown)
}

func TestClassify_NilContext(t *testing.T) {
	var ctx *DirectoryContext
	assert.Equal(t, Shown, Categorize("main.go", ctx))
	assert.Equal(t, Hidden, Categorize(".env", ctx))
	assert.Equal(t, Ignored, Categorize("..", ctx))
}

package visibility

// Category is the pattern-derived class of a name, independent of Level.
type Category int

const (
	Shown Category = iota
	Hidden
	Ignored
)

func (c Category) String() string {
	switch c {
	case Hidden:
		return "hidden"
	case Ignored:
		return "ignored"
	default:
		return "shown"
	}
}

// VisibleAt gates a category by the requested level.
func (c Category) VisibleAt(level Level) bool {
	switch c {
	case Ignored:
		return level >= ShowAll
	case Hidden:
		return level >= HideIgnored
	default:
		return true
	}
}

// Decision is the outcome of classifying one name.
type Decision struct {
	Name     string
	Category Category
	Visible  bool
}

// Categorize assigns name to the strictest category it belongs to.
func Categorize(name string, ctx *DirectoryContext) Category {
	switch {
	case ctx.IsIgnored(name):
		return Ignored
	case ctx.IsHidden(name):
		return Hidden
	default:
		return Shown
	}
}

// Classify categorizes name and then decides whether level shows it.
func Classify(name string, level Level, ctx *DirectoryContext) Decision {
	cat := Categorize(name, ctx)
	return Decision{Name: name, Category: cat, Visible: cat.VisibleAt(level)}
}

// ClassifyAll classifies names in order.
func ClassifyAll(names []string, level Level, ctx *DirectoryContext) []Decision {
	out := make([]Decision, 0, len(names))
	for _, n := range names {
		out = append(out, Classify(n, level, ctx))
	}
	return out
}

// Package cliargs splits the raw argument vector into the tokens forwarded
// to the listing command and the visibility level requested by -a/-A and
// their long forms.
package cliargs

import (
	"strings"

	"github.com/bethropolis/acacls/internal/visibility"
)

// ParsedArguments is the immutable result of Partition.
type ParsedArguments struct {
	// Forwarded holds the tokens for the listing command, in input order.
	Forwarded []string
	Level     visibility.Level
}

// shortValueFlags are GNU ls short options that take a value. Inside a
// cluster, everything after one of them is that value and is kept as is.
const shortValueFlags = "ITw"

// longValueFlags are GNU ls long options whose value may come in the next
// token.
var longValueFlags = map[string]struct{}{
	"--ignore":          {},
	"--hide":            {},
	"--width":           {},
	"--tabsize":         {},
	"--format":          {},
	"--sort":            {},
	"--time":            {},
	"--time-style":      {},
	"--quoting-style":   {},
	"--indicator-style": {},
	"--block-size":      {},
}

// Partition walks args once, left to right. Long visibility flags are
// consumed. A token starting with a single '-' is a short flag cluster:
// 'a' and 'A' are consumed, stray '-' characters dropped, and the rest is
// forwarded as one token with its leading '-' restored, or not at all if
// nothing is left. Every other token is forwarded unchanged. After a bare
// "--", and for the value of an option that takes one, tokens are
// forwarded without inspection.
func Partition(args []string) ParsedArguments {
	forwarded := make([]string, 0, len(args))
	level := visibility.HideHidden
	endOfFlags := false
	expectValue := false

	for _, arg := range args {
		switch {
		case endOfFlags || expectValue:
			expectValue = false
			forwarded = append(forwarded, arg)
		case arg == "--":
			endOfFlags = true
			forwarded = append(forwarded, arg)
		case isShortCluster(arg):
			rest, l := splitCluster(arg)
			level = level.Merge(l)
			if rest != "" {
				forwarded = append(forwarded, rest)
				expectValue = takesValue(rest)
			}
		default:
			if l, ok := visibility.FromLongFlag(arg); ok {
				level = level.Merge(l)
				continue
			}
			forwarded = append(forwarded, arg)
			expectValue = takesValue(arg)
		}
	}

	return ParsedArguments{Forwarded: forwarded, Level: level}
}

// Operands returns the positional arguments among forwarded tokens:
// non-flag tokens that are not option values, and everything after "--".
func Operands(forwarded []string) []string {
	var operands []string
	endOfFlags := false
	expectValue := false
	for _, tok := range forwarded {
		switch {
		case expectValue:
			expectValue = false
		case endOfFlags:
			operands = append(operands, tok)
		case tok == "--":
			endOfFlags = true
		case strings.HasPrefix(tok, "-") && tok != "-":
			expectValue = takesValue(tok)
		default:
			operands = append(operands, tok)
		}
	}
	return operands
}

// InsertBeforeOperands places extra flags ahead of a "--" terminator so
// the listing command still reads them as options.
func InsertBeforeOperands(forwarded, extra []string) []string {
	out := make([]string, 0, len(forwarded)+len(extra))
	for i, tok := range forwarded {
		if tok == "--" {
			out = append(out, extra...)
			return append(out, forwarded[i:]...)
		}
		out = append(out, tok)
	}
	return append(out, extra...)
}

func isShortCluster(arg string) bool {
	return strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--")
}

func splitCluster(cluster string) (string, visibility.Level) {
	var b strings.Builder
	level := visibility.HideHidden

	for i, c := range cluster {
		if strings.ContainsRune(shortValueFlags, c) {
			b.WriteString(cluster[i:])
			break
		}
		if l, ok := visibility.FromShortFlag(c); ok {
			level = level.Merge(l)
			continue
		}
		if c == '-' {
			continue
		}
		b.WriteRune(c)
	}

	if b.Len() == 0 {
		return "", level
	}
	return "-" + b.String(), level
}

// takesValue reports whether the next token is the value of tok.
func takesValue(tok string) bool {
	if strings.HasPrefix(tok, "--") {
		_, ok := longValueFlags[tok]
		return ok
	}
	if !strings.HasPrefix(tok, "-") {
		return false
	}
	i := strings.IndexAny(tok, shortValueFlags)
	return i == len(tok)-1
}

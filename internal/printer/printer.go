// Package printer writes the dry-run description of a listing: the
// command acacls would execute, either as a shell-ready line or as JSON.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer handles output formatting and writing to the configured output destination
type Printer struct {
	output     io.Writer
	jsonOutput bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output: os.Stdout,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// Plan describes one planned invocation.
type Plan struct {
	Command     string   `json:"command"`
	Args        []string `json:"args"`
	Level       string   `json:"level"`
	Mode        string   `json:"mode"`
	Directories []string `json:"directories"`
}

// PrintPlan outputs the plan.
func (p *Printer) PrintPlan(plan Plan) error {
	if p.jsonOutput {
		if plan.Args == nil {
			plan.Args = []string{}
		}
		if plan.Directories == nil {
			plan.Directories = []string{}
		}
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("printer: failed to encode plan: %w", err)
		}
		_, err = fmt.Fprintf(p.output, "%s\n", data)
		return err
	}

	words := make([]string, 0, len(plan.Args)+1)
	words = append(words, ShellQuote(plan.Command))
	for _, a := range plan.Args {
		words = append(words, ShellQuote(a))
	}
	_, err := fmt.Fprintln(p.output, strings.Join(words, " "))
	return err
}

// ShellQuote single-quotes s when it contains anything a POSIX shell would
// interpret.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./=:,+@%", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

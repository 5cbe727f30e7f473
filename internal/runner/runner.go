// Package runner invokes the downstream listing command with the final
// argument vector and reports its exit status.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bethropolis/acacls/internal/utils"
)

var (
	// ErrCommandMissing means no listing command could be found.
	ErrCommandMissing = errors.New("listing command not found")
	// ErrCommandFailed means the listing command was found but could not
	// be started or did not run to completion.
	ErrCommandFailed = errors.New("listing command failed")
)

// DefaultCommands are tried in order when no command is configured. GNU
// ls is installed as gls where the system ls is not GNU.
var DefaultCommands = []string{"gls", "ls"}

// Runner runs the listing command with inherited standard streams.
type Runner struct {
	command  string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	logger   utils.Logger
	lookPath func(string) (string, error)
}

// New creates a Runner. An empty command selects the first of
// DefaultCommands found on PATH.
func New(command string, opts ...Option) *Runner {
	r := &Runner{
		command:  command,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   utils.NoopLogger{},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the path of the command Run would execute.
func (r *Runner) Resolve() (string, error) {
	candidates := DefaultCommands
	if r.command != "" {
		candidates = []string{r.command}
	}
	for _, name := range candidates {
		path, err := r.lookPath(name)
		if err == nil {
			return path, nil
		}
		r.logger.Debug("runner: %s not usable: %v", name, err)
	}
	return "", fmt.Errorf("runner: %w: tried %v", ErrCommandMissing, candidates)
}

// Run executes the command and returns its exit code. A non-zero exit of
// the command itself is not an error.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	path, err := r.Resolve()
	if err != nil {
		return -1, err
	}

	r.logger.Debug("runner: exec %s %q", path, args)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case ctx.Err() != nil:
		return -1, fmt.Errorf("runner: %w: %v", ErrCommandFailed, ctx.Err())
	case errors.As(err, &exitErr) && exitErr.Exited():
		return exitErr.ExitCode(), nil
	default:
		return -1, fmt.Errorf("runner: %w: %v", ErrCommandFailed, err)
	}
}

package runner

import (
	"io"

	"github.com/bethropolis/acacls/internal/utils"
)

// Option configures a Runner.
type Option func(*Runner)

// WithStreams replaces the inherited standard streams. Nil values keep
// the current stream.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		if stdin != nil {
			r.stdin = stdin
		}
		if stdout != nil {
			r.stdout = stdout
		}
		if stderr != nil {
			r.stderr = stderr
		}
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLookPath replaces exec.LookPath.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.lookPath = fn
		}
	}
}

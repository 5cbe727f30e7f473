package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/acacls/internal/app"
	"github.com/bethropolis/acacls/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, config.Load)
	stop()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, load func() (*config.Config, error)) int {
	code := 0
	cmd := newRootCmd(stdout, stderr, load, &code)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "acacls: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, load func() (*config.Config, error), code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acacls [ls flags...] [paths...]",
		Short: "ls with per-directory hidden and ignored entries",
		Long: `acacls wraps GNU ls. Entries named by .hidden are treated like dotfiles
and entries named by .ignore stay out of the listing unless asked for.

  -a, --show-hidden    also list hidden entries
  -A, --show-ignored   list everything

All other arguments are passed to ls unchanged.`,
		// Every token belongs to ls or the partitioner.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				*code = app.ExitConfigError
				return err
			}
			*code = app.New(cfg, app.WithStreams(stdout, stderr)).Run(cmd.Context(), args)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

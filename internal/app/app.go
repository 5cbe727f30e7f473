package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/bethropolis/acacls/internal/cliargs"
	"github.com/bethropolis/acacls/internal/config"
	"github.com/bethropolis/acacls/internal/logger"
	"github.com/bethropolis/acacls/internal/printer"
	"github.com/bethropolis/acacls/internal/runner"
	"github.com/bethropolis/acacls/internal/source"
	"github.com/bethropolis/acacls/internal/summary"
	"github.com/bethropolis/acacls/internal/visibility"
	"github.com/bethropolis/acacls/internal/walker"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// Exit codes for failures that happen before or instead of running the
// listing command. Otherwise the listing command's own code is returned.
const (
	ExitConfigError    = 2
	ExitCommandFailed  = 126
	ExitCommandMissing = 127
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	runner *runner.Runner
}

// Option configures an App.
type Option func(*App)

// WithStreams redirects the listing and diagnostic output.
func WithStreams(stdout, stderr io.Writer) Option {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// WithFs sets the filesystem pattern files and directories are read from.
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		if fs != nil {
			a.fs = fs
		}
	}
}

// New creates a new App instance
func New(cfg *config.Config, opts ...Option) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	a := &App{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	level := logger.ParseLevel(cfg.LogLevel, logger.LevelWarn)
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	a.log = logger.New(a.stderr, level, cfg.UseColors)

	a.runner = runner.New(cfg.LsCommand,
		runner.WithStreams(nil, a.stdout, a.stderr),
		runner.WithLogger(a.log),
	)
	return a
}

// Run lists according to args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	parsed := cliargs.Partition(args)
	level := a.cfg.DefaultLevel.Merge(parsed.Level)
	a.log.Debug("Visibility level: %s", level)
	a.log.Debug("Forwarded arguments: %q", parsed.Forwarded)

	dirs := a.directories(parsed.Forwarded)

	resolver := source.New(a.cfg,
		source.WithFs(a.fs),
		source.WithLogger(a.log),
		source.WithEngine(a.cfg.Engine),
		source.WithFileNames(a.cfg.HiddenFile, a.cfg.IgnoreFile),
	)

	var exclusions [][]string
	var skipped []walker.SkippedItem
	for _, dir := range dirs {
		dctx := resolver.Resolve(dir)
		args, items := a.exclusionsFor(ctx, dctx, level)
		exclusions = append(exclusions, args)
		skipped = append(skipped, items...)
	}
	if len(dirs) == 0 {
		// Only files were named; ls lists those regardless, but the
		// dotfile flag still has to follow the level.
		exclusions = append(exclusions, visibility.ExclusionArguments(level, nil))
	}

	final := cliargs.InsertBeforeOperands(parsed.Forwarded, visibility.MergeExclusions(exclusions...))

	if a.cfg.DryRun {
		return a.printPlan(final, level, dirs)
	}

	code, err := a.runner.Run(ctx, final)
	if err != nil {
		a.log.Error("%v", err)
		if errors.Is(err, runner.ErrCommandMissing) {
			return ExitCommandMissing
		}
		return ExitCommandFailed
	}

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skipped, a.stderr, a.cfg.UseColors)
	}
	return code
}

// directories picks the operands that name directories. With no operands
// at all the listing command lists ".".
func (a *App) directories(forwarded []string) []string {
	operands := cliargs.Operands(forwarded)
	if len(operands) == 0 {
		return []string{"."}
	}

	var dirs []string
	for _, op := range operands {
		info, err := a.fs.Stat(op)
		if err != nil {
			// The listing command reports missing operands itself.
			a.log.Debug("Operand %q not resolvable: %v", op, err)
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, op)
		}
	}
	return dirs
}

// exclusionsFor computes the exclusion arguments for one directory. In
// entry mode, or when a skipped report was requested, the directory is
// enumerated; if that fails the pattern arguments are used instead.
func (a *App) exclusionsFor(ctx context.Context, dctx *visibility.DirectoryContext, level visibility.Level) ([]string, []walker.SkippedItem) {
	if a.cfg.Mode != config.ModeEntries && !a.cfg.ShowSkipped {
		return visibility.ExclusionArguments(level, dctx), nil
	}

	res, err := walker.Walk(dctx, level,
		walker.WithFs(a.fs),
		walker.WithLogger(a.log),
		walker.WithContext(ctx),
	)
	if err != nil {
		a.log.Warn("Could not enumerate %s, falling back to pattern exclusions: %v", dctx.Dir, err)
		return visibility.ExclusionArguments(level, dctx), nil
	}

	if a.cfg.Mode == config.ModeEntries {
		return visibility.EntryExclusions(level, dctx, res.Names()), res.Skipped
	}
	return visibility.ExclusionArguments(level, dctx), res.Skipped
}

func (a *App) printPlan(args []string, level visibility.Level, dirs []string) int {
	command, err := a.runner.Resolve()
	if err != nil {
		a.log.Warn("%v", err)
		command = a.cfg.LsCommand
		if command == "" {
			command = runner.DefaultCommands[0]
		}
	}

	p := printer.New().WithOutput(a.stdout).WithJSON(a.cfg.DryRunFormat == "json")
	err = p.PrintPlan(printer.Plan{
		Command:     command,
		Args:        args,
		Level:       level.String(),
		Mode:        string(a.cfg.Mode),
		Directories: dirs,
	})
	if err != nil {
		a.log.Error("Failed to print plan: %v", err)
		return 1
	}
	return 0
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/acacls/internal/pattern"
	"github.com/bethropolis/acacls/internal/source"
	"github.com/bethropolis/acacls/internal/visibility"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// Mode selects how exclusions reach the listing command.
type Mode string

const (
	// ModePatterns forwards pattern rules as --ignore arguments.
	ModePatterns Mode = "patterns"
	// ModeEntries enumerates each directory and forwards literal names.
	ModeEntries Mode = "entries"
)

const (
	envPrefix      = "ACACLS"
	configBaseName = "acacls"

	keyLsCommand    = "ls_command"
	keyMode         = "mode"
	keyEngine       = "engine"
	keyDefaultLevel = "default_level"
	keyLogLevel     = "log_level"
	keyVerbose      = "verbose"
	keyNoColor      = "no_color"
	keyShowSkipped  = "show_skipped"
	keyDryRun       = "dry_run"
	keyDryRunFormat = "dry_run_format"
	keyHiddenFile   = "hidden_file"
	keyIgnoreFile   = "ignore_file"
	keyGlobalHidden = "global_hidden"
	keyGlobalIgnore = "global_ignore"
)

// Version of acacls; set at build time with -ldflags.
var Version = "0.1.0"

// Config holds all application configuration settings. acacls has no
// flags of its own, since every flag belongs to the listing command, so
// settings come from ACACLS_* environment variables and an optional
// acacls.yaml in the user config directory.
type Config struct {
	// Listing command; empty means gls, then ls.
	LsCommand string
	Mode      Mode
	Engine    pattern.Engine

	// DefaultLevel is merged with the level -a/-A request.
	DefaultLevel visibility.Level

	// Logging settings
	LogLevel  string
	Verbose   bool
	NoColor   bool
	UseColors bool

	ShowSkipped  bool
	DryRun       bool
	DryRunFormat string

	// Pattern file locations
	HiddenFile   string
	IgnoreFile   string
	GlobalHidden string
	GlobalIgnore string

	Version string
}

// Load reads configuration from the environment and the config file in
// the user config directory.
func Load() (*Config, error) {
	dir := ""
	if base, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(base, configBaseName)
	}
	return LoadFrom(viper.New(), dir)
}

// LoadFrom populates v from the environment and, when configDir is not
// empty, from acacls.yaml inside it, then builds a Config.
func LoadFrom(v *viper.Viper, configDir string) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// The global pattern files keep the variable names users already set.
	if err := v.BindEnv(keyGlobalHidden, source.GlobalHiddenVar); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := v.BindEnv(keyGlobalIgnore, source.GlobalIgnoreVar); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v.SetDefault(keyLsCommand, "")
	v.SetDefault(keyMode, string(ModePatterns))
	v.SetDefault(keyEngine, string(pattern.EngineGlob))
	v.SetDefault(keyDefaultLevel, visibility.HideHidden.String())
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyVerbose, false)
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyShowSkipped, false)
	v.SetDefault(keyDryRun, false)
	v.SetDefault(keyDryRunFormat, "plain")
	v.SetDefault(keyHiddenFile, source.DefaultHiddenFile)
	v.SetDefault(keyIgnoreFile, source.DefaultIgnoreFile)

	if configDir != "" {
		v.SetConfigName(configBaseName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: failed to read %s: %w", configDir, err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		LsCommand:    strings.TrimSpace(v.GetString(keyLsCommand)),
		LogLevel:     v.GetString(keyLogLevel),
		Verbose:      v.GetBool(keyVerbose),
		NoColor:      v.GetBool(keyNoColor),
		ShowSkipped:  v.GetBool(keyShowSkipped),
		DryRun:       v.GetBool(keyDryRun),
		DryRunFormat: strings.ToLower(v.GetString(keyDryRunFormat)),
		HiddenFile:   v.GetString(keyHiddenFile),
		IgnoreFile:   v.GetString(keyIgnoreFile),
		GlobalHidden: v.GetString(keyGlobalHidden),
		GlobalIgnore: v.GetString(keyGlobalIgnore),
		Version:      Version,
	}

	switch m := Mode(strings.ToLower(v.GetString(keyMode))); m {
	case ModePatterns, ModeEntries:
		c.Mode = m
	default:
		return nil, fmt.Errorf("config: unknown mode %q (want %q or %q)", m, ModePatterns, ModeEntries)
	}

	engine, err := pattern.ParseEngine(v.GetString(keyEngine))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.Engine = engine

	level, err := visibility.ParseLevel(v.GetString(keyDefaultLevel))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.DefaultLevel = level

	switch c.DryRunFormat {
	case "plain", "json":
	default:
		return nil, fmt.Errorf("config: unknown dry run format %q", c.DryRunFormat)
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c, nil
}

// LookupPath resolves the global pattern file variables, making Config a
// source.PathLookup.
func (c *Config) LookupPath(name string) (string, bool) {
	var path string
	switch name {
	case source.GlobalHiddenVar:
		path = c.GlobalHidden
	case source.GlobalIgnoreVar:
		path = c.GlobalIgnore
	}
	return path, path != ""
}

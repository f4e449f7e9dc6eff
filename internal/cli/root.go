// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hightemp/iso3166/internal/config"
	"github.com/hightemp/iso3166/internal/countries"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	outputFormat string
	inputFormat  string
	extraFile    string
	concurrency  int
	logLevel     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iso3166 [query]",
	Short: "ISO 3166-1 country codes - lookup countries by name or code",
	Long: `iso3166 resolves countries by English short name, two-letter code,
three-letter code or three-digit numeric code.

For single lookup:
  iso3166 SK
  iso3166 703

For batch processing (read from stdin):
  cat codes.txt | iso3166

Data is the ISO 3166-1 table compiled into the binary. Additional
user-assigned codes can be loaded with --extra-file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLookup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", config.DefaultOutput, "output format: text, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&inputFormat, "format", "auto", "field to match queries against: auto, name, alpha2, alpha3, or numeric")
	rootCmd.PersistentFlags().StringVar(&extraFile, "extra-file", "", "data file with additional entries")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", config.DefaultConcurrency, "parallel batch lookups (max 32)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, or error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCode maps err to a process exit code. Lookup failures are "not
// found"; malformed arguments are "invalid input".
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	switch {
	case errors.Is(err, countries.ErrNotFound), errors.Is(err, countries.ErrFormat):
		return ExitNotFound
	case errors.Is(err, countries.ErrInvalidArgument), errors.Is(err, countries.ErrInvalidFormat):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

// app is the per-invocation state shared by commands.
type app struct {
	cfg      *config.Config
	format   countries.Format
	logger   *zap.Logger
	registry *countries.Registry
}

// setup resolves configuration (flags win over the environment) and builds
// the logger and registry.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, withExitCode(ExitInvalidInput, err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = outputFormat
	}
	if flags.Changed("extra-file") {
		cfg.ExtraFile = extraFile
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, withExitCode(ExitInvalidInput, err)
	}

	format, err := countries.ParseFormat(inputFormat)
	if err != nil {
		return nil, withExitCode(ExitInvalidInput, err)
	}

	level, _ := cfg.Level()
	logger := newLogger(cmd.ErrOrStderr(), level)

	registry, err := countries.NewDefaultRegistry(countries.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if cfg.ExtraFile != "" {
		if err := loadExtraFile(registry, cfg.ExtraFile, logger); err != nil {
			return nil, err
		}
	}

	return &app{cfg: cfg, format: format, logger: logger, registry: registry}, nil
}

func loadExtraFile(registry *countries.Registry, path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open extra file: %w", err)
	}
	defer f.Close()

	n, err := registry.Load(f)
	if err != nil {
		return withExitCode(ExitInvalidInput, fmt.Errorf("load %s: %w", path, err))
	}
	logger.Info("loaded extra entries", zap.String("path", path), zap.Int("count", n))
	return nil
}

// newLogger returns a console logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core).Named(config.AppName)
}

// stdinIsBatch reports whether the command input is piped rather than a
// terminal.
func stdinIsBatch(cmd *cobra.Command) bool {
	in := cmd.InOrStdin()
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

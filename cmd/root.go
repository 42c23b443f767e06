package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yarlson/loadbar/internal/config"
	"github.com/yarlson/loadbar/internal/logger"
	"github.com/yarlson/loadbar/internal/progress"
)

var cfgFile string

// appFs is the filesystem pages, SVG files and outputs are read from and
// written to.
var appFs afero.Fs = afero.NewOsFs()

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// Root command flags
var (
	rootLogLevel string
	rootLogFile  string
)

// NewRootCmd creates the root command for loadbar CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loadbar",
		Short: "Page loading indicator: animated bar or full-page overlay",
		Long: `loadbar drives a page loading indicator. It renders either a thin
animated bar pinned to the top of the page or a full-page overlay with an
SVG placeholder, and animates it until the work it tracks completes.

The indicator can be rendered into an HTML page (render) or shown in the
terminal while a command runs (run).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./loadbar.yaml, then ~/.config/loadbar/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "also write logs to this rotating file")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// settings is the configuration shared by all subcommands.
type settings struct {
	cfg *config.Config
	log zerolog.Logger
}

// loadSettings reads the config file and applies the persistent flags.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if rootLogLevel != "" {
		cfg.Log.Level = rootLogLevel
	}
	if rootLogFile != "" {
		cfg.Log.File = rootLogFile
	}

	log, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Console: cmd.ErrOrStderr(),
		NoColor: !isTerminal(cmd.ErrOrStderr()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &settings{cfg: cfg, log: log}, nil
}

// newController builds a controller for surface using the configured
// timings and logger.
func (s *settings) newController(surface progress.Surface, clock progress.Clock) *progress.Controller {
	ctrl := progress.NewController(progress.ControllerDeps{
		Surface: surface,
		Clock:   clock,
		Logger:  &s.log,
	})
	ctrl.SetTickInterval(s.cfg.Progress.TickInterval)
	ctrl.SetRevealDelay(s.cfg.Progress.RevealDelay)
	return ctrl
}

// applyTypeFlag overrides the display type when the flag was given.
func applyTypeFlag(cmd *cobra.Command, opts *progress.Options, value string) error {
	if !cmd.Flags().Changed("type") {
		return nil
	}
	typ, ok := progress.ParseDisplayType(value)
	if !ok {
		return fmt.Errorf("invalid --type %q (want bar or fullpage)", value)
	}
	opts.Type = typ
	return nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

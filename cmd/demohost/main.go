package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/demohost/internal/config"
)

var (
	cfgPath   string
	verbose   bool
	openDemos []string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "demohost",
	Short: "Terminal host for self-contained UI demos",
	Long: `demohost shows a checklist of demo windows in a side panel and draws the
open ones over the rest of the terminal.

The set of open windows is saved on exit and every autosave interval, and
restored on the next start.

Run without arguments to start the interactive UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logger, err = newLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: $DEMOHOST_CONFIG or ~/.config/demohost/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringArrayVar(&openDemos, "open", nil, "Open a demo by name on start (repeatable)")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(listCmd, resetCmd, configCmd)
}

// newLogger writes JSON logs to the configured file; the terminal belongs to the UI.
func newLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Level != "" {
		level, err := zap.ParseAtomicLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = level
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if lc.Path != "" {
		if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		zc.OutputPaths = []string{lc.Path}
		zc.ErrorOutputPaths = []string{lc.Path}
	}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

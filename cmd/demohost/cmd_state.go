package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/demohost/internal/config"
	"github.com/jask/demohost/internal/database"
	"github.com/jask/demohost/internal/host"
	"github.com/jask/demohost/internal/persist"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered demos and whether they are open",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDemos(cmd.Context(), cmd)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved window state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := contextOrBackground(cmd.Context())
		store, err := persist.Open(ctx, cfg.State.Backend, cfg.State.Path, logger)
		if err != nil {
			return fmt.Errorf("open state: %w", err)
		}
		defer store.Close()
		if err := store.Delete(ctx, persist.StateKey); err != nil {
			return fmt.Errorf("delete state: %w", err)
		}
		if err := store.Flush(ctx); err != nil {
			return fmt.Errorf("flush state: %w", err)
		}
		logger.Info("window state reset", zap.String("state", cfg.State.Path))
		fmt.Fprintln(cmd.OutOrStdout(), "Window state cleared.")
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var forceConfig bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = config.Path()
		}
		if _, err := os.Stat(path); err == nil && !forceConfig {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote "+path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "Overwrite an existing file")
}

func listDemos(ctx context.Context, cmd *cobra.Command) error {
	ctx = contextOrBackground(ctx)
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	store, err := persist.Open(ctx, cfg.State.Backend, cfg.State.Path, logger)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer store.Close()

	st := host.DefaultState()
	if _, err := persist.LoadRecord(ctx, store, persist.StateKey, &st); err != nil {
		logger.Warn("persisted window state unreadable, using defaults", zap.Error(err))
		st = host.DefaultState()
	}
	h := host.New(reg, host.Options{})
	h.Restore(st)

	for _, name := range reg.Names() {
		mark := "[ ]"
		if reg.IsOpen(name) {
			mark = "[x]"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
	}
	for _, name := range reg.Open() {
		if !slices.Contains(reg.Names(), name) {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s (saved, no longer registered)\n", name)
		}
	}
	if id, ok, err := store.GetString(ctx, database.InstallIDKey); err == nil && ok {
		fmt.Fprintf(cmd.OutOrStdout(), "\ninstall id: %s\n", id)
	}
	if sq, ok := store.(*persist.SQLiteStorage); ok && verbose {
		entries, err := sq.Entries(ctx)
		if err != nil {
			return fmt.Errorf("list state rows: %w", err)
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s (%d bytes)\n", e.Key, e.UpdatedAt.Local().Format("2006-01-02 15:04:05"), len(e.Value))
		}
	}
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/demohost/internal/config"
	"github.com/jask/demohost/internal/demo"
	"github.com/jask/demohost/internal/demos"
	"github.com/jask/demohost/internal/host"
	"github.com/jask/demohost/internal/persist"
	"github.com/jask/demohost/internal/tui"
	"github.com/jask/demohost/internal/ui"
)

// newRegistry builds the demo registry and refuses duplicate or empty names.
func newRegistry() (*demo.Registry, error) {
	all := demos.All()
	if err := demo.ValidateNames(all); err != nil {
		return nil, fmt.Errorf("demo registry: %w", err)
	}
	return demo.NewRegistry(all...), nil
}

func newStyle(uc config.UIConfig) ui.Style {
	style := ui.DefaultStyle()
	style.Dark = uc.Theme != "light"
	if uc.WindowWidth > 0 {
		style.WindowWidth = uc.WindowWidth
	}
	return style
}

func runUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	open, err := resolveOpen(reg, openDemos)
	if err != nil {
		return err
	}

	store, err := persist.Open(ctx, cfg.State.Backend, cfg.State.Path, logger)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer store.Close()

	logger.Info("starting",
		zap.String("backend", cfg.State.Backend),
		zap.String("state", cfg.State.Path),
		zap.Int("demos", reg.Len()))

	h := host.New(reg, host.Options{
		SidePanelWidth:        cfg.UI.SidePanelWidth,
		TransparentBackground: cfg.UI.TransparentBackground,
	})
	app := tui.New(ctx, h, ui.NewContext(newStyle(cfg.UI)), store, logger, tui.Options{
		AutosaveInterval: cfg.State.AutosaveInterval,
		RepaintInterval:  cfg.UI.RepaintInterval,
		Open:             open,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if err := app.Save(ctx); err != nil {
		logger.Warn("save window state on exit", zap.Error(err))
	}
	return nil
}

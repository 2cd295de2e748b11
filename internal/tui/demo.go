package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glencjones/edwina/internal/configwatch"
	"github.com/glencjones/edwina/internal/layout"
)

// DemoOptions configure the interactive demo.
type DemoOptions struct {
	Config     *layout.Config
	ConfigPath string
	PaneCount  int
}

// RunDemo starts the interactive bubbletea host. When ConfigPath is set the
// file is watched and layout parameters are reloaded live.
func RunDemo(opts DemoOptions) error {
	params, err := opts.Config.Params()
	if err != nil {
		return err
	}
	active, activeName, err := opts.Config.ActiveFunc()
	if err != nil {
		return err
	}
	paneCount := opts.PaneCount
	if paneCount <= 0 {
		paneCount = 3
	}

	program := tea.NewProgram(
		NewModel(params, active, activeName, paneCount),
		tea.WithAltScreen(),
	)

	if opts.ConfigPath != "" {
		watcher, err := configwatch.Watch(opts.ConfigPath, func() {
			program.Send(reloadConfig(opts.ConfigPath))
		})
		if err != nil {
			slog.Warn("config watch unavailable", "path", opts.ConfigPath, "err", err)
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func reloadConfig(path string) ConfigReloadedMsg {
	cfg, err := layout.LoadConfig(path)
	if err != nil {
		return ConfigReloadedMsg{Err: err}
	}
	params, err := cfg.Params()
	if err != nil {
		return ConfigReloadedMsg{Err: err}
	}
	return ConfigReloadedMsg{Params: params}
}

package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/tally/internal/config"
	"github.com/five82/tally/internal/logging"
	"github.com/five82/tally/internal/state"
	"github.com/five82/tally/internal/ui"
)

// Options configure the tally application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tally/prefs.toml

	// Print writes the list and statistics to Out instead of starting the TUI.
	Print bool
	Group int // 1-based
	Query string
	Out   io.Writer
}

// Run boots tally until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	store, err := state.New(cfg.Table())
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	logger.Info("starting", "groups", store.GroupCount(), "print", opts.Print)

	if opts.Print {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return Print(out, store, cfg.Labels(), opts.Group, opts.Query)
	}

	userPrefs := config.LoadPrefs(opts.PrefsPath, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Labels:    cfg.Labels(),
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		logger.Error("ui exited", "err", err)
		return err
	}
	logger.Info("exiting")
	return nil
}

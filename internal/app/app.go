package app

import (
	"context"
	"fmt"
	"os"

	"github.com/five82/pixwall/internal/config"
	"github.com/five82/pixwall/internal/feed"
	"github.com/five82/pixwall/internal/grid"
	"github.com/five82/pixwall/internal/logging"
	"github.com/five82/pixwall/internal/prefs"
	"github.com/five82/pixwall/internal/state"
	"github.com/five82/pixwall/internal/ui"
)

// Options configure the pixwall application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pixwall/prefs.toml
}

// Run boots the pixwall TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	defer func() { _ = closer.Close() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := feed.NewClient(cfg.FeedURL, cfg.FeedPath, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	device := grid.ParseDevice(cfg.Device, os.LookupEnv)
	logger.Info().
		Str("feed", client.FeedURL()).
		Str("device", device.String()).
		Str("filter", userPrefs.FilterMode().String()).
		Msg("starting pixwall")

	store := &state.Store{}
	StartLoader(ctx, store, client, logger)

	return ui.Run(ui.Options{
		Context:   ctx,
		Source:    client,
		Store:     store,
		Config:    cfg,
		FeedURL:   client.FeedURL(),
		Device:    device,
		ThemeName: userPrefs.Theme,
		Filter:    userPrefs.FilterMode(),
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
}

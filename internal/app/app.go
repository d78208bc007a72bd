package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/feed"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PollEvery  int    // seconds; zero uses the config value
	FilePath   string // read friends from a saved payload instead of the feed
	LogLevel   string // overrides log_level when set
	PrefsPath  string // empty uses prefs.DefaultPath
}

// Run boots the roster TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return fmt.Errorf("parse --log-level: %w", err)
		}
	}

	logger, closer, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	if p, err := prefs.Load(prefsPath); err != nil {
		logger.Warn("preferences unreadable, using config theme", "path", prefsPath, "error", err)
	} else if p.Theme != "" {
		cfg.Theme = p.Theme
	}

	fetcher, source, err := newFetcher(cfg, opts.FilePath)
	if err != nil {
		return err
	}

	interval := cfg.PollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	logger.Info("roster starting", "source", source, "poll", interval)

	store := &state.Store{}

	// Do initial refresh to populate store before UI starts
	_ = refresh(ctx, store, fetcher, logger.With("component", "poller"))

	// Start background poller
	StartPoller(ctx, store, fetcher, interval, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    cfg,
		Source:    source,
		Logger:    logger,
		PrefsPath: prefsPath,
	}
	err = ui.Run(uiOpts)
	logger.Info("roster stopped", "error", err)
	return err
}

func newFetcher(cfg config.Config, filePath string) (feed.Fetcher, string, error) {
	if path := strings.TrimSpace(filePath); path != "" {
		return &feed.File{Path: path}, path, nil
	}
	client, err := feed.NewClient(cfg.FeedURL)
	if err != nil {
		return nil, "", fmt.Errorf("init feed client: %w", err)
	}
	return client, cfg.FeedURL, nil
}

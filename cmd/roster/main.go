package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/roster/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/roster/config.toml)")
	pollSeconds := flag.Int("poll", 0, "refresh interval in seconds (optional, defaults to poll_seconds)")
	filePath := flag.String("file", "", "read friends from a saved /api/friends payload instead of the feed")
	logLevel := flag.String("log-level", "", "override log_level (debug, info, warn, error)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		FilePath:   *filePath,
		LogLevel:   *logLevel,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

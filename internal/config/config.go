package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/roster/internal/roster"
)

// Config holds everything roster reads from config.toml.
type Config struct {
	FeedURL     string
	PollEvery   time.Duration
	Theme       string
	LogFile     string
	LogLevel    slog.Level
	CardWidth   int
	View        View
	Transitions Transitions
}

// View is the selection shown at startup. It is not written back.
type View struct {
	Group roster.Group
	Sort  roster.SortBy
	Style roster.Style
}

// Transitions tunes the crossfade. Zero fades and FPS fall back to the display
// defaults; Settle does so only when negative, since a zero settle is valid.
type Transitions struct {
	FadeIn  time.Duration
	FadeOut time.Duration
	Settle  time.Duration
	FPS     int
}

const (
	defaultConfigPath  = "~/.config/roster/config.toml"
	defaultLogFile     = "~/.local/state/roster/roster.log"
	defaultFeedURL     = "127.0.0.1:7488"
	defaultPollSeconds = 15
	defaultTheme       = "Nightfox"
	defaultCardWidth   = 32
	minCardWidth       = 16
)

type rawConfig struct {
	FeedURL     string `toml:"feed_url"`
	PollSeconds int    `toml:"poll_seconds"`
	Theme       string `toml:"theme"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	CardWidth   int    `toml:"card_width"`
	View        struct {
		Group string `toml:"group"`
		Sort  string `toml:"sort"`
		Style string `toml:"style"`
	} `toml:"view"`
	Transitions struct {
		FadeInMS  int  `toml:"fade_in_ms"`
		FadeOutMS int  `toml:"fade_out_ms"`
		SettleMS  *int `toml:"settle_ms"`
		FPS       int  `toml:"fps"`
	} `toml:"transitions"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		FeedURL:   defaultFeedURL,
		PollEvery: defaultPollSeconds * time.Second,
		Theme:     defaultTheme,
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  slog.LevelInfo,
		CardWidth: defaultCardWidth,
		Transitions: Transitions{
			Settle: -1,
		},
	}
}

// Load locates and parses the roster config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.FeedURL); v != "" {
		cfg.FeedURL = v
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
	}
	if raw.CardWidth > 0 {
		cfg.CardWidth = max(raw.CardWidth, minCardWidth)
	}

	if cfg.View.Group, err = roster.ParseGroup(raw.View.Group); err != nil {
		return Config{}, fmt.Errorf("parse view.group: %w", err)
	}
	if cfg.View.Sort, err = roster.ParseSortBy(raw.View.Sort); err != nil {
		return Config{}, fmt.Errorf("parse view.sort: %w", err)
	}
	if cfg.View.Style, err = roster.ParseStyle(raw.View.Style); err != nil {
		return Config{}, fmt.Errorf("parse view.style: %w", err)
	}

	t := raw.Transitions
	cfg.Transitions.FadeIn = millis(t.FadeInMS)
	cfg.Transitions.FadeOut = millis(t.FadeOutMS)
	if t.SettleMS != nil && *t.SettleMS >= 0 {
		cfg.Transitions.Settle = millis(*t.SettleMS)
	}
	if t.FPS > 0 {
		cfg.Transitions.FPS = t.FPS
	}

	return cfg, nil
}

func millis(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

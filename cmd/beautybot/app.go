package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nkahoots/beauty-bot/internal/config"
	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/scheduler"
	"github.com/nkahoots/beauty-bot/internal/usage"
)

// app holds what every subcommand needs after start-up.
type app struct {
	cfg     *config.Config
	journal *reminder.Journal
	logFile io.Closer
}

func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if noColor {
		cfg.UI.ColoredOutput = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &app{cfg: cfg}

	if cfg.Log.Path != "" {
		f, err := openLogFile(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			log.SetOutput(f)
			a.logFile = f
		}
	}

	if cfg.UsageLog.Enabled {
		if err := usage.Record(cfg.UsageLog.Path, time.Now()); err != nil {
			log.Printf("[usage] Warning: %v", err)
		}
	}

	if cfg.Journal.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
		j, err := reminder.OpenJournal(cfg.Journal.Path)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.journal = j
	}

	return a, nil
}

// remoteNotifiers returns the sinks configured in addition to the terminal.
func (a *app) remoteNotifiers() []scheduler.Notifier {
	tg := a.cfg.Notify.Telegram
	if !tg.Enabled() {
		return nil
	}
	return []scheduler.Notifier{scheduler.NewTelegramSender(tg.BotToken, tg.ChatID)}
}

func (a *app) schedulerOptions() []scheduler.Option {
	if a.journal == nil {
		return nil
	}
	return []scheduler.Option{scheduler.WithJournal(a.journal)}
}

func (a *app) Close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			log.Printf("[journal] Warning: failed to close: %v", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Command mcp-skincare provides an MCP server for skin type content and
// skincare reminders.
//
// Reminders are held in memory and fire while the server runs; the
// notification is written to stderr and, if configured, sent to Telegram.
//
// Usage:
//
//	./mcp-skincare          # Start MCP server (stdio)
//	./mcp-skincare --help   # Show help
//
// Environment:
//
//	BEAUTYBOT_CONFIG  Path to config file (default: ~/.beautybot/config.yaml)
//
// Variables may also come from a .env file in the working directory.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nkahoots/beauty-bot/internal/config"
	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/scheduler"
	"github.com/nkahoots/beauty-bot/internal/skincare"
	"github.com/nkahoots/beauty-bot/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run serves until stdin closes and returns the process exit code. Cleanup
// happens here rather than in main so it is not skipped by os.Exit.
func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			printHelp()
			return 0
		}
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	_ = godotenv.Load()

	configPath := os.Getenv("BEAUTYBOT_CONFIG")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer a.close()

	s := skincare.NewServer(a.sched, a.history)

	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return 1
	}
	return 0
}

// app owns the scheduler and the optional journal behind the server.
type app struct {
	sched   *scheduler.Scheduler
	journal *reminder.Journal
	history skincare.History
}

func newApp(cfg *config.Config) (*app, error) {
	var sinks scheduler.MultiNotifier
	if cfg.Notify.Terminal {
		sinks = append(sinks, ui.NewNotificationBox(os.Stderr, ui.NewFormatter(false)))
	}
	if tg := cfg.Notify.Telegram; tg.Enabled() {
		sinks = append(sinks, scheduler.NewTelegramSender(tg.BotToken, tg.ChatID))
	}

	a := &app{}
	var opts []scheduler.Option
	if cfg.Journal.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
		journal, err := reminder.OpenJournal(cfg.Journal.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open journal: %w", err)
		}
		a.journal = journal
		a.history = journal
		opts = append(opts, scheduler.WithJournal(journal))
	}

	a.sched = scheduler.New(sinks, opts...)
	return a, nil
}

// close drops pending reminders, journaling them as cancelled, then closes
// the journal.
func (a *app) close() {
	a.sched.Stop()
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			log.Printf("[journal] Warning: failed to close: %v", err)
		}
	}
}

func printHelp() {
	fmt.Println(`MCP Skincare Server - Skin type guide and reminders via MCP protocol

USAGE:
    mcp-skincare          Start MCP server (communicates via stdio)
    mcp-skincare --help   Show this help

ENVIRONMENT:
    BEAUTYBOT_CONFIG  Path to configuration file
                      Default: ~/.beautybot/config.yaml

TOOLS:
    list_skin_types         List supported skin types
    get_skin_profile        Products, schedule, tips for a skin type
    schedule_reminder       Set a one-shot reminder (skin_type, date, time, meridiem, roll_forward)
    list_pending_reminders  Reminders armed but not yet fired
    cancel_reminder         Cancel a pending reminder
    reminder_history        Recent scheduled/fired/cancelled events

CONFIGURATION:
    Add to your MCP client config:
    {
      "mcpServers": {
        "skincare": {
          "command": "/path/to/mcp-skincare",
          "args": []
        }
      }
    }`)
}

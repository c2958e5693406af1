package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"
	"github.com/nkahoots/beauty-bot/internal/config"
	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/scheduler"
	"github.com/nkahoots/beauty-bot/internal/skin"
	"github.com/nkahoots/beauty-bot/internal/ui"
)

// History reads past reminder events. *reminder.Journal satisfies it.
type History interface {
	List(ctx context.Context, limit int) ([]reminder.Event, error)
}

type REPL struct {
	config    *config.Config
	scheduler *scheduler.Scheduler
	history   History
	formatter *ui.Formatter
	renderer  *ui.Renderer

	mu sync.Mutex // guards rl; timer goroutines print through it
	rl *readline.Instance

	current skin.SkinType
}

// NewREPL creates the shell. Reminder notifications are printed above the
// prompt and also sent to every extra notifier. journal may be nil.
func NewREPL(cfg *config.Config, journal *reminder.Journal, extra ...scheduler.Notifier) (*REPL, error) {
	rl, err := setupReadline()
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	formatter := ui.NewFormatter(cfg.UI.ColoredOutput)

	r := &REPL{
		config:    cfg,
		rl:        rl,
		formatter: formatter,
		renderer:  ui.NewRenderer(cfg.UI.RenderMarkdown, cfg.UI.ColoredOutput, cfg.UI.WordWrap),
	}

	var sinks scheduler.MultiNotifier
	if cfg.Notify.Terminal {
		sinks = append(sinks, ui.NewNotificationBox(r, formatter))
	}
	sinks = append(sinks, extra...)

	var opts []scheduler.Option
	if journal != nil {
		opts = append(opts, scheduler.WithJournal(journal))
		r.history = journal
	}
	r.scheduler = scheduler.New(sinks, opts...)

	r.refreshPrompt()
	return r, nil
}

// Scheduler exposes the reminder scheduler owned by the shell.
func (r *REPL) Scheduler() *scheduler.Scheduler {
	return r.scheduler
}

// Write prints above the active prompt so asynchronous notifications do not
// garble the line being edited.
func (r *REPL) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var w io.Writer = os.Stdout
	if r.rl != nil {
		w = r.rl.Stdout()
	}
	return w.Write(p)
}

func (r *REPL) Start(ctx context.Context) error {
	defer r.Stop()

	r.displayWelcome()

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == "" {
			continue
		}

		isCommand, command, args := r.parseCommand(input)
		if !isCommand {
			// A bare skin type name selects it.
			if t, err := skin.Parse(input); err == nil {
				command, args = "/skin", string(t)
			} else {
				r.displayInfo("Type /help for available commands.")
				continue
			}
		}

		quit, err := r.handleCommand(ctx, command, args)
		if err != nil && !errors.Is(err, ui.ErrCancelled) {
			r.displayError(err)
		}
		if quit {
			return nil
		}
	}
}

func (r *REPL) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rl != nil {
		r.rl.Close()
		r.rl = nil
	}
}

func (r *REPL) refreshPrompt() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rl != nil {
		r.rl.SetPrompt(r.formatter.FormatPrompt(string(r.current)))
	}
}

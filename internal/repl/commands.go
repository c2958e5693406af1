package repl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/scheduler"
	"github.com/nkahoots/beauty-bot/internal/skin"
	"github.com/nkahoots/beauty-bot/internal/ui"
)

const defaultHistoryLimit = 20

// handleCommand runs one slash command and reports whether the shell should exit.
func (r *REPL) handleCommand(ctx context.Context, command, args string) (bool, error) {
	switch command {
	case "/help", "/h":
		r.displayHelp()
		return false, nil

	case "/readme":
		r.displayMarkdown("# How to Pick Your Skin Type\n\n" + skin.Instructions())
		return false, nil

	case "/types":
		r.displayMarkdown(ui.TypesMarkdown(skin.Catalog()))
		return false, nil

	case "/skin", "/s":
		return false, r.handleSkin(args)

	case "/schedule":
		return false, r.handleSchedule()

	case "/remind", "/r":
		return false, r.handleRemind(ctx)

	case "/pending":
		r.handlePending()
		return false, nil

	case "/cancel":
		return false, r.handleCancel(args)

	case "/history":
		return false, r.handleHistory(ctx, args)

	case "/quit", "/exit", "/q":
		return r.handleQuit(), nil

	default:
		return false, fmt.Errorf("unknown command: %s (type /help for available commands)", command)
	}
}

func (r *REPL) handleSkin(args string) error {
	var t skin.SkinType
	var err error
	if args == "" {
		t, err = r.chooseSkinType()
	} else {
		t, err = skin.Parse(args)
	}
	if err != nil {
		return err
	}

	p, err := skin.Lookup(t)
	if err != nil {
		return err
	}

	r.current = t
	r.refreshPrompt()
	r.displayMarkdown(ui.ProfileMarkdown(p, r.config.Content.ImageDir))
	return nil
}

func (r *REPL) requireSkin() (skin.Profile, error) {
	if r.current == "" {
		t, err := r.chooseSkinType()
		if err != nil {
			return skin.Profile{}, err
		}
		r.current = t
		r.refreshPrompt()
	}
	return skin.Lookup(r.current)
}

func (r *REPL) handleSchedule() error {
	p, err := r.requireSkin()
	if err != nil {
		return err
	}
	r.displayMarkdown(ui.ScheduleMarkdown(p))
	return nil
}

func (r *REPL) handleRemind(ctx context.Context) error {
	p, err := r.requireSkin()
	if err != nil {
		return err
	}

	r.displaySystem(fmt.Sprintf("Set a reminder for your %s skin routine.", p.Type.Label()))

	date, err := r.readField("Date (" + reminder.DateLayoutHint + "): ")
	if err != nil {
		return err
	}
	clock, err := r.readField("Time (" + reminder.TimeLayoutHint + "): ")
	if err != nil {
		return err
	}
	meridiem, err := r.choose("AM or PM?", []string{reminder.AM, reminder.PM})
	if err != nil {
		return err
	}

	req := reminder.Request{Date: date, Time: clock, Meridiem: meridiem}
	h, err := r.scheduler.Schedule(ctx, p.Type, req, scheduler.ConfirmFunc(r.confirm))
	if err != nil {
		if errors.Is(err, reminder.ErrPastTimeDeclined) {
			return nil
		}
		return err
	}

	r.displaySuccess(fmt.Sprintf("Reminder set for %s (id %s).", h.At.Format("Mon Jan 2 2006, 3:04 PM"), h.ID))
	return nil
}

func (r *REPL) handlePending() {
	pending := r.scheduler.Pending()
	if len(pending) == 0 {
		r.displayInfo("No pending reminders.")
		return
	}

	var sb strings.Builder
	for _, p := range pending {
		fmt.Fprintf(&sb, "%s  %-11s  %s (in %s)\n", p.ID, p.SkinType,
			p.At.Format("2006-01-02 03:04 PM"), time.Until(p.At).Round(time.Second))
	}
	r.displayInfo(strings.TrimRight(sb.String(), "\n"))
}

func (r *REPL) handleCancel(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /cancel <id>")
	}
	if !r.scheduler.Cancel(args) {
		return fmt.Errorf("no pending reminder with id %s", args)
	}
	r.displaySystem(fmt.Sprintf("Reminder %s cancelled.", args))
	return nil
}

func (r *REPL) handleHistory(ctx context.Context, args string) error {
	if r.history == nil {
		r.displayInfo("Reminder history is disabled (journal.enabled is false).")
		return nil
	}

	limit := defaultHistoryLimit
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n <= 0 {
			return fmt.Errorf("usage: /history [count]")
		}
		limit = n
	}

	events, err := r.history.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		r.displayInfo("No reminder history yet.")
		return nil
	}

	r.displayInfo(FormatHistory(events))
	return nil
}

// FormatHistory renders journal events one per line, newest first.
func FormatHistory(events []reminder.Event) string {
	var sb strings.Builder
	for _, e := range events {
		fmt.Fprintf(&sb, "%s  %-9s  %-11s  fire at %s\n",
			e.RecordedAt.Format("2006-01-02 15:04:05"), e.Kind, e.SkinType,
			e.FireAt.Format("2006-01-02 03:04 PM"))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *REPL) handleQuit() bool {
	question := "Are you sure you want to exit the application?"
	if n := len(r.scheduler.Pending()); n > 0 {
		question = fmt.Sprintf("You have %d pending reminder(s) that will be lost. Exit anyway?", n)
	}
	if !r.confirm(question) {
		return false
	}
	fmt.Println("\nGoodbye!")
	return true
}

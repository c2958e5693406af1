package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nkahoots/beauty-bot/internal/config"
	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/skin"
)

func TestAppCloseJournalsPendingReminders(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "reminders.db")
	cfg := &config.Config{
		Journal: config.JournalConfig{Enabled: true, Path: dbPath},
		Notify:  config.NotifyConfig{Terminal: true},
	}

	a, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	at := time.Now().AddDate(0, 0, 2)
	if at.Year() != time.Now().Year() {
		t.Skip("two days ahead falls in the next year")
	}
	req := reminder.Request{Date: at.Format("01-02"), Time: "10:00", Meridiem: reminder.AM}
	h, err := a.sched.Schedule(context.Background(), skin.Dry, req, nil)
	if err != nil {
		a.close()
		t.Fatalf("schedule: %v", err)
	}

	a.close()

	journal, err := reminder.OpenJournal(dbPath)
	if err != nil {
		t.Fatalf("reopen journal: %v", err)
	}
	defer journal.Close()

	events, err := journal.ForReminder(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 2 || events[1].Kind != reminder.EventCancelled {
		t.Errorf("expected scheduled then cancelled, got %+v", events)
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

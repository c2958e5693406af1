package repl

import (
	"strings"
	"testing"
	"time"

	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/skin"
)

func TestParseCommand(t *testing.T) {
	r := &REPL{}

	tests := []struct {
		input     string
		isCommand bool
		command   string
		args      string
	}{
		{"/skin dry", true, "/skin", "dry"},
		{"/REMIND", true, "/remind", ""},
		{"/cancel   01ABC  ", true, "/cancel", "01ABC"},
		{"Oily", false, "", ""},
	}

	for _, tt := range tests {
		isCommand, command, args := r.parseCommand(tt.input)
		if isCommand != tt.isCommand || command != tt.command || args != tt.args {
			t.Errorf("%q: got (%v, %q, %q), want (%v, %q, %q)", tt.input,
				isCommand, command, args, tt.isCommand, tt.command, tt.args)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	fireAt := time.Date(2026, time.October, 17, 7, 30, 0, 0, time.UTC)
	events := []reminder.Event{
		{ReminderID: "b", SkinType: skin.Dry, FireAt: fireAt, Kind: reminder.EventFired, RecordedAt: fireAt},
		{ReminderID: "b", SkinType: skin.Dry, FireAt: fireAt, Kind: reminder.EventScheduled, RecordedAt: fireAt.Add(-time.Hour)},
	}

	out := FormatHistory(events)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "fired") || !strings.Contains(lines[0], "2026-10-17 07:30 AM") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "scheduled") || !strings.Contains(lines[1], "Dry") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

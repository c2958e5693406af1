package reminder

import (
	"errors"
	"time"

	"github.com/nkahoots/beauty-bot/internal/skin"
)

// Meridiem designators.
const (
	AM = "AM"
	PM = "PM"
)

// Journal event kinds.
const (
	EventScheduled = "scheduled"
	EventFired     = "fired"
	EventCancelled = "cancelled"
)

// Input formats shown to the user.
const (
	DateLayoutHint = "MM-DD"
	TimeLayoutHint = "HH:MM"
)

var (
	// ErrInvalidDate is the kind of FormatError for a malformed date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime is the kind of FormatError for a malformed time.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidMeridiem is the kind of FormatError for anything other than AM/PM.
	ErrInvalidMeridiem = errors.New("invalid meridiem")

	// ErrPastTimeDeclined means the user chose not to move a past time to the next day.
	ErrPastTimeDeclined = errors.New("past time declined")

	// ErrTimePassed means no future instant could be derived from the request.
	ErrTimePassed = errors.New("the chosen time has already passed")
)

// Request is the raw user input for a reminder.
type Request struct {
	Date     string `json:"date"`     // MM-DD
	Time     string `json:"time"`     // HH:MM, 12-hour clock
	Meridiem string `json:"meridiem"` // AM or PM
}

// Resolved is a validated reminder bound to an absolute instant.
type Resolved struct {
	ID        string        `json:"id"`
	SkinType  skin.SkinType `json:"skin_type"`
	At        time.Time     `json:"at"`
	CreatedAt time.Time     `json:"created_at"`
}

// Event is one row of the reminder journal.
type Event struct {
	ID         int64         `json:"id"`
	ReminderID string        `json:"reminder_id"`
	SkinType   skin.SkinType `json:"skin_type"`
	FireAt     time.Time     `json:"fire_at"`
	Kind       string        `json:"kind"`
	RecordedAt time.Time     `json:"recorded_at"`
}

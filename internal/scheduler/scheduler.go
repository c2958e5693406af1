package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/skin"
)

// PastTimeQuestion is asked when the requested time is not in the future.
const PastTimeQuestion = "The chosen time has already passed. Would you like to set the reminder for the following day?"

// NextYearQuestion is asked when the date already passed this year and the
// reminder can only be set for the same date next year.
func NextYearQuestion(next time.Time) string {
	return fmt.Sprintf("This date has already passed this year. Would you like to set the reminder for %s?",
		next.Format("Mon Jan 2 2006, 3:04 PM"))
}

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) bool

func (f ConfirmFunc) Confirm(question string) bool {
	return f(question)
}

// Fixed answers for non-interactive callers.
var (
	AlwaysRollForward Confirmer = ConfirmFunc(func(string) bool { return true })
	NeverRollForward  Confirmer = ConfirmFunc(func(string) bool { return false })
)

// Recorder persists reminder events. *reminder.Journal satisfies it.
type Recorder interface {
	Record(ctx context.Context, e reminder.Event) (*reminder.Event, error)
}

// Handle refers to one armed reminder.
type Handle struct {
	reminder.Resolved

	s     *Scheduler
	timer Timer
	done  chan struct{}
	once  sync.Once
}

// Cancel disarms the reminder. It reports false if the reminder already
// fired or was cancelled.
func (h *Handle) Cancel() bool {
	return h.s.Cancel(h.ID)
}

// Done is closed once the reminder fires or is cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) finish() {
	h.once.Do(func() { close(h.done) })
}

// Scheduler arms one deferred notification per reminder.
type Scheduler struct {
	clock    Clock
	notifier Notifier
	journal  Recorder

	mu      sync.Mutex
	pending map[string]*Handle
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithJournal records scheduled, fired and cancelled events.
func WithJournal(r Recorder) Option {
	return func(s *Scheduler) { s.journal = r }
}

// New creates a Scheduler that delivers notifications to notifier.
func New(notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:    realClock{},
		notifier: notifier,
		pending:  make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule validates req, resolves it to an instant and arms a one-shot
// notification for skinType. If the instant is not in the future, confirm is
// asked whether to move it forward one day, or to the same date next year when
// a day is not enough; a nil confirm or a "no" answer returns
// reminder.ErrPastTimeDeclined and arms nothing. Schedule returns as soon as the
// reminder is armed.
func (s *Scheduler) Schedule(ctx context.Context, skinType skin.SkinType, req reminder.Request, confirm Confirmer) (*Handle, error) {
	if !skinType.Valid() {
		return nil, fmt.Errorf("%w: %q", skin.ErrUnknownSkinType, string(skinType))
	}

	now := s.clock.Now()
	at, err := reminder.Resolve(req, now)
	if err != nil {
		return nil, err
	}

	if reminder.NeedsRollover(at, now) {
		question, next := PastTimeQuestion, reminder.Rollover(at)
		nextYear, shifted := reminder.NextOccurrence(at, now)
		if shifted {
			question, next = NextYearQuestion(nextYear), nextYear
		}
		if confirm == nil || !confirm.Confirm(question) {
			return nil, reminder.ErrPastTimeDeclined
		}
		if shifted {
			log.Printf("[scheduler] %s already passed this year, using %s", at.Format("01-02"), next.Format("2006-01-02"))
		}
		at = next
	}

	// The prompt may have taken a while; measure the delay from a fresh reading.
	now = s.clock.Now()
	delay := at.Sub(now)
	if delay <= 0 {
		return nil, reminder.ErrTimePassed
	}

	h := &Handle{
		Resolved: reminder.Resolved{
			ID:        ulid.Make().String(),
			SkinType:  skinType,
			At:        at,
			CreatedAt: now,
		},
		s:    s,
		done: make(chan struct{}),
	}

	s.record(ctx, h, reminder.EventScheduled)

	s.mu.Lock()
	s.pending[h.ID] = h
	h.timer = s.clock.AfterFunc(delay, func() { s.fire(h) })
	s.mu.Unlock()

	log.Printf("[scheduler] Reminder %s set for %s (%s skin, in %s)",
		h.ID, at.Format("2006-01-02 15:04"), skinType, delay.Round(time.Second))

	return h, nil
}

func (s *Scheduler) fire(h *Handle) {
	s.mu.Lock()
	_, ok := s.pending[h.ID]
	delete(s.pending, h.ID)
	s.mu.Unlock()
	if !ok {
		return
	}
	defer h.finish()

	title, body := Message(h.SkinType)
	if s.notifier != nil {
		if err := s.notifier.ShowMessage(title, body); err != nil {
			log.Printf("[scheduler] Error: notification for %s failed: %v", h.ID, err)
		}
	}
	log.Printf("[scheduler] Reminder %s fired", h.ID)

	s.record(context.Background(), h, reminder.EventFired)
}

// Cancel disarms the reminder with the given ID.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	h, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
		h.timer.Stop()
	}
	s.mu.Unlock()
	if !ok {
		return false
	}

	h.finish()
	log.Printf("[scheduler] Reminder %s cancelled", id)
	s.record(context.Background(), h, reminder.EventCancelled)
	return true
}

// Pending returns the armed reminders ordered by fire time.
func (s *Scheduler) Pending() []reminder.Resolved {
	s.mu.Lock()
	out := make([]reminder.Resolved, 0, len(s.pending))
	for _, h := range s.pending {
		out = append(out, h.Resolved)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}

// Stop cancels every pending reminder and returns how many were dropped.
func (s *Scheduler) Stop() int {
	var n int
	for _, r := range s.Pending() {
		if s.Cancel(r.ID) {
			n++
		}
	}
	if n > 0 {
		log.Printf("[scheduler] Shutting down, %d pending reminder(s) dropped", n)
	}
	return n
}

func (s *Scheduler) record(ctx context.Context, h *Handle, kind string) {
	if s.journal == nil {
		return
	}
	_, err := s.journal.Record(ctx, reminder.Event{
		ReminderID: h.ID,
		SkinType:   h.SkinType,
		FireAt:     h.At,
		Kind:       kind,
		RecordedAt: s.clock.Now(),
	})
	if err != nil {
		log.Printf("[scheduler] Warning: failed to record %s event: %v", kind, err)
	}
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/skin"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Advance moves time forward and runs every timer that became due, in
// deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type message struct{ title, body string }

type recordingNotifier struct {
	mu       sync.Mutex
	messages []message
}

func (n *recordingNotifier) ShowMessage(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message{title, body})
	return nil
}

func (n *recordingNotifier) all() []message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]message(nil), n.messages...)
}

type recordingConfirmer struct {
	answer    bool
	questions []string
}

func (c *recordingConfirmer) Confirm(q string) bool {
	c.questions = append(c.questions, q)
	return c.answer
}

// Friday 2026-10-16 14:30:15 UTC
var baseNow = time.Date(2026, time.October, 16, 14, 30, 15, 0, time.UTC)

func newTestScheduler(t *testing.T) (*Scheduler, *fakeClock, *recordingNotifier) {
	t.Helper()
	clock := newFakeClock(baseNow)
	notifier := &recordingNotifier{}
	return New(notifier, WithClock(clock)), clock, notifier
}

func TestScheduleInvalidDateArmsNothing(t *testing.T) {
	s, clock, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "10/17", Time: "08:00", Meridiem: reminder.AM}, AlwaysRollForward)
	if !errors.Is(err, reminder.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if clock.armed() != 0 || len(s.Pending()) != 0 {
		t.Error("expected nothing armed")
	}
}

func TestScheduleInvalidTimeArmsNothing(t *testing.T) {
	s, clock, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "10-17", Time: "8:00", Meridiem: reminder.AM}, AlwaysRollForward)
	if !errors.Is(err, reminder.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
	if clock.armed() != 0 {
		t.Error("expected nothing armed")
	}
}

func TestScheduleUnknownSkinType(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), skin.SkinType("Normal"), reminder.Request{Date: "10-17", Time: "08:00", Meridiem: reminder.AM}, nil)
	if !errors.Is(err, skin.ErrUnknownSkinType) {
		t.Errorf("expected ErrUnknownSkinType, got %v", err)
	}
}

func TestScheduleFutureFires(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)
	confirm := &recordingConfirmer{answer: false}

	h, err := s.Schedule(context.Background(), skin.Combination, reminder.Request{Date: "10-16", Time: "03:00", Meridiem: reminder.PM}, confirm)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(confirm.questions) != 0 {
		t.Error("did not expect a prompt for a future time")
	}

	want := time.Date(2026, time.October, 16, 15, 0, 0, 0, time.UTC)
	if !h.At.Equal(want) {
		t.Errorf("expected %s, got %s", want, h.At)
	}
	if h.ID == "" {
		t.Error("expected an ID")
	}
	if len(s.Pending()) != 1 {
		t.Fatalf("expected 1 pending, got %d", len(s.Pending()))
	}

	clock.Advance(29 * time.Minute)
	if len(notifier.all()) != 0 {
		t.Fatal("fired too early")
	}

	clock.Advance(time.Minute)
	msgs := notifier.all()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(msgs))
	}
	title, body := Message(skin.Combination)
	if msgs[0].title != title || msgs[0].body != body {
		t.Errorf("unexpected notification %+v", msgs[0])
	}

	select {
	case <-h.Done():
	default:
		t.Error("expected Done to be closed after firing")
	}
	if len(s.Pending()) != 0 {
		t.Error("expected no pending reminders after firing")
	}
	if h.Cancel() {
		t.Error("cancel after firing should report false")
	}
}

func TestSchedulePastDeclined(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)
	confirm := &recordingConfirmer{answer: false}

	_, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "10-16", Time: "09:00", Meridiem: reminder.AM}, confirm)
	if !errors.Is(err, reminder.ErrPastTimeDeclined) {
		t.Fatalf("expected ErrPastTimeDeclined, got %v", err)
	}
	if len(confirm.questions) != 1 || confirm.questions[0] != PastTimeQuestion {
		t.Errorf("expected one rollover prompt, got %v", confirm.questions)
	}
	if clock.armed() != 0 || len(s.Pending()) != 0 {
		t.Error("expected nothing armed")
	}

	clock.Advance(48 * time.Hour)
	if len(notifier.all()) != 0 {
		t.Error("expected no notification")
	}
}

func TestSchedulePastWithoutConfirmerIsDeclined(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "10-16", Time: "09:00", Meridiem: reminder.AM}, nil)
	if !errors.Is(err, reminder.ErrPastTimeDeclined) {
		t.Errorf("expected ErrPastTimeDeclined, got %v", err)
	}
}

func TestSchedulePastAcceptedRollsForwardOneDay(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)
	confirm := &recordingConfirmer{answer: true}

	req := reminder.Request{Date: "10-16", Time: "09:00", Meridiem: reminder.AM}
	original, err := reminder.Resolve(req, baseNow)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	h, err := s.Schedule(context.Background(), skin.Sensitive, req, confirm)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(confirm.questions) != 1 {
		t.Errorf("expected one prompt, got %d", len(confirm.questions))
	}
	if got := h.At.Sub(original); got != 24*time.Hour {
		t.Errorf("expected exactly 24h rollover, got %s", got)
	}
	if !h.At.After(clock.Now()) {
		t.Error("expected rolled instant in the future")
	}

	clock.Advance(h.At.Sub(clock.Now()))
	if len(notifier.all()) != 1 {
		t.Errorf("expected notification at rolled instant, got %d", len(notifier.all()))
	}
}

func TestScheduleExactlyNowPrompts(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.October, 16, 14, 30, 0, 0, time.UTC))
	s := New(&recordingNotifier{}, WithClock(clock))
	confirm := &recordingConfirmer{answer: true}

	h, err := s.Schedule(context.Background(), skin.Oily, reminder.Request{Date: "10-16", Time: "02:30", Meridiem: reminder.PM}, confirm)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(confirm.questions) != 1 {
		t.Error("expected a prompt for an instant equal to now")
	}
	if h.At.Sub(clock.Now()) != 24*time.Hour {
		t.Errorf("expected fire in 24h, got %s", h.At.Sub(clock.Now()))
	}
}

func TestScheduleDatePassedThisYearAsksForNextYear(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	confirm := &recordingConfirmer{answer: true}

	h, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "01-01", Time: "12:00", Meridiem: reminder.AM}, confirm)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	want := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !h.At.Equal(want) {
		t.Errorf("expected %s, got %s", want, h.At)
	}
	if len(confirm.questions) != 1 || confirm.questions[0] != NextYearQuestion(want) {
		t.Errorf("expected one next-year prompt, got %v", confirm.questions)
	}
}

func TestScheduleYesterdayDeclinedArmsNothing(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)
	confirm := &recordingConfirmer{answer: false}

	_, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "10-15", Time: "09:00", Meridiem: reminder.AM}, confirm)
	if !errors.Is(err, reminder.ErrPastTimeDeclined) {
		t.Fatalf("expected ErrPastTimeDeclined, got %v", err)
	}
	if len(confirm.questions) != 1 {
		t.Errorf("expected one prompt, got %v", confirm.questions)
	}
	if clock.armed() != 0 || len(s.Pending()) != 0 {
		t.Error("expected nothing armed")
	}

	clock.Advance(400 * 24 * time.Hour)
	if len(notifier.all()) != 0 {
		t.Error("expected no notification")
	}
}

func TestScheduleYesterdayWithoutConfirmerIsDeclined(t *testing.T) {
	s, clock, _ := newTestScheduler(t)

	_, err := s.Schedule(context.Background(), skin.Oily, reminder.Request{Date: "10-15", Time: "09:00", Meridiem: reminder.AM}, nil)
	if !errors.Is(err, reminder.ErrPastTimeDeclined) {
		t.Errorf("expected ErrPastTimeDeclined, got %v", err)
	}
	if clock.armed() != 0 {
		t.Error("expected nothing armed")
	}
}

func TestTwoRemindersFireIndependently(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)
	ctx := context.Background()

	late, err := s.Schedule(ctx, skin.Oily, reminder.Request{Date: "10-16", Time: "06:00", Meridiem: reminder.PM}, nil)
	if err != nil {
		t.Fatalf("schedule oily: %v", err)
	}
	early, err := s.Schedule(ctx, skin.Dry, reminder.Request{Date: "10-16", Time: "04:00", Meridiem: reminder.PM}, nil)
	if err != nil {
		t.Fatalf("schedule dry: %v", err)
	}
	if late.ID == early.ID {
		t.Fatal("expected distinct IDs")
	}

	pending := s.Pending()
	if len(pending) != 2 || pending[0].ID != early.ID {
		t.Fatalf("expected pending ordered by fire time, got %+v", pending)
	}

	clock.Advance(2 * time.Hour)
	msgs := notifier.all()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(msgs))
	}
	_, dryBody := Message(skin.Dry)
	if msgs[0].body != dryBody {
		t.Errorf("expected dry reminder first, got %q", msgs[0].body)
	}

	clock.Advance(2 * time.Hour)
	msgs = notifier.all()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(msgs))
	}
	_, oilyBody := Message(skin.Oily)
	if msgs[1].body != oilyBody {
		t.Errorf("expected oily reminder second, got %q", msgs[1].body)
	}
}

func TestDuplicateRequestsAreNotDeduplicated(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)
	req := reminder.Request{Date: "10-16", Time: "05:00", Meridiem: reminder.PM}

	for i := 0; i < 2; i++ {
		if _, err := s.Schedule(context.Background(), skin.Dry, req, nil); err != nil {
			t.Fatalf("schedule %d: %v", i, err)
		}
	}

	clock.Advance(3 * time.Hour)
	if len(notifier.all()) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(notifier.all()))
	}
}

func TestCancel(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)

	h, err := s.Schedule(context.Background(), skin.Dry, reminder.Request{Date: "10-17", Time: "07:00", Meridiem: reminder.AM}, nil)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if !h.Cancel() {
		t.Fatal("expected cancel to succeed")
	}
	if s.Cancel(h.ID) {
		t.Error("second cancel should report false")
	}
	select {
	case <-h.Done():
	default:
		t.Error("expected Done closed after cancel")
	}

	clock.Advance(48 * time.Hour)
	if len(notifier.all()) != 0 {
		t.Error("cancelled reminder fired")
	}
}

func TestStopCancelsAll(t *testing.T) {
	s, clock, notifier := newTestScheduler(t)

	for _, st := range skin.All() {
		if _, err := s.Schedule(context.Background(), st, reminder.Request{Date: "10-17", Time: "07:00", Meridiem: reminder.AM}, nil); err != nil {
			t.Fatalf("schedule %s: %v", st, err)
		}
	}

	if n := s.Stop(); n != 4 {
		t.Errorf("expected 4 dropped, got %d", n)
	}
	clock.Advance(48 * time.Hour)
	if len(notifier.all()) != 0 {
		t.Error("expected no notifications after Stop")
	}
}

func TestJournalRecordsLifecycle(t *testing.T) {
	journal, err := reminder.OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer journal.Close()

	clock := newFakeClock(baseNow)
	s := New(&recordingNotifier{}, WithClock(clock), WithJournal(journal))
	ctx := context.Background()

	fired, err := s.Schedule(ctx, skin.Dry, reminder.Request{Date: "10-16", Time: "04:00", Meridiem: reminder.PM}, nil)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	cancelled, err := s.Schedule(ctx, skin.Oily, reminder.Request{Date: "10-16", Time: "05:00", Meridiem: reminder.PM}, nil)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	cancelled.Cancel()
	clock.Advance(2 * time.Hour)

	check := func(id string, kinds ...string) {
		t.Helper()
		events, err := journal.ForReminder(ctx, id)
		if err != nil {
			t.Fatalf("events: %v", err)
		}
		if len(events) != len(kinds) {
			t.Fatalf("%s: expected %d events, got %d", id, len(kinds), len(events))
		}
		for i, k := range kinds {
			if events[i].Kind != k {
				t.Errorf("%s: event %d expected %s, got %s", id, i, k, events[i].Kind)
			}
		}
	}
	check(fired.ID, reminder.EventScheduled, reminder.EventFired)
	check(cancelled.ID, reminder.EventScheduled, reminder.EventCancelled)
}

// For instants within a day either side of now, the delay handed to the timer
// is always strictly positive, with or without rollover.
func TestDelayAlwaysPositiveNearNow(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		clock := newFakeClock(baseNow)
		s := New(&recordingNotifier{}, WithClock(clock))

		offset := time.Duration(rng.Intn(2*23*60)-23*60) * time.Minute
		target := baseNow.Add(offset)
		req := requestFor(target)

		h, err := s.Schedule(context.Background(), skin.Dry, req, AlwaysRollForward)
		if err != nil {
			t.Fatalf("offset %s (%+v): %v", offset, req, err)
		}
		if delay := h.At.Sub(clock.Now()); delay <= 0 {
			t.Fatalf("offset %s: non-positive delay %s", offset, delay)
		}
		if d := h.At.Sub(clock.Now()); d > 24*time.Hour {
			t.Fatalf("offset %s: delay %s exceeds one day", offset, d)
		}
	}
}

func requestFor(at time.Time) reminder.Request {
	hour := at.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := reminder.AM
	if at.Hour() >= 12 {
		meridiem = reminder.PM
	}
	return reminder.Request{
		Date:     at.Format("01-02"),
		Time:     fmt.Sprintf("%02d:%02d", hour, at.Minute()),
		Meridiem: meridiem,
	}
}

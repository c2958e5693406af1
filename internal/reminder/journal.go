package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nkahoots/beauty-bot/internal/skin"
	_ "modernc.org/sqlite"
)

// Journal is an append-only SQLite log of reminder events. It is a history
// only; nothing is re-armed from it on start-up.
type Journal struct {
	db *sql.DB
}

// OpenJournal opens (or creates) the SQLite database at dbPath and ensures
// the events table exists.
func OpenJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createTable(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

func createTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reminder_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			reminder_id TEXT    NOT NULL,
			skin_type   TEXT    NOT NULL,
			fire_at     TEXT    NOT NULL,
			kind        TEXT    NOT NULL,
			recorded_at TEXT    NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends an event. RecordedAt defaults to the current time.
func (j *Journal) Record(ctx context.Context, e Event) (*Event, error) {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}

	result, err := j.db.ExecContext(ctx, `
		INSERT INTO reminder_events (reminder_id, skin_type, fire_at, kind, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ReminderID, string(e.SkinType),
		e.FireAt.Format(time.RFC3339), e.Kind,
		e.RecordedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted ID: %w", err)
	}
	e.ID = id

	return &e, nil
}

// List returns the most recent events, newest first. A limit <= 0 returns all.
func (j *Journal) List(ctx context.Context, limit int) ([]Event, error) {
	query := `
		SELECT id, reminder_id, skin_type, fire_at, kind, recorded_at
		FROM reminder_events ORDER BY id DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ForReminder returns every event of one reminder in insertion order.
func (j *Journal) ForReminder(ctx context.Context, reminderID string) ([]Event, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, reminder_id, skin_type, fire_at, kind, recorded_at
		FROM reminder_events WHERE reminder_id = ? ORDER BY id ASC
	`, reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for %s: %w", reminderID, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var e Event
		var skinType, fireAt, recordedAt string

		if err := rows.Scan(&e.ID, &e.ReminderID, &skinType,
			&fireAt, &e.Kind, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		e.SkinType = skin.SkinType(skinType)
		e.FireAt, _ = time.Parse(time.RFC3339, fireAt)
		e.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)

		events = append(events, e)
	}
	return events, rows.Err()
}

// Package persistence provides SQLite storage for run transcripts.
// Only the journal is stored; the agent itself is never saved or restored.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/daily-routine/internal/engine"
	"github.com/talgya/daily-routine/internal/routine"
)

// ErrNotFound is returned when a run or metadata key does not exist.
var ErrNotFound = errors.New("persistence: not found")

// DB wraps a SQLite connection for transcript storage.
type DB struct {
	conn *sqlx.DB
}

// Run describes one simulation run.
type Run struct {
	ID          string `db:"id"`
	Seed        int64  `db:"seed"`
	Days        int    `db:"days"`
	StartedAt   int64  `db:"started_at"`  // Unix seconds
	FinishedAt  int64  `db:"finished_at"` // 0 while running
	Hours       int64  `db:"hours"`
	FinalState  string `db:"final_state"`
	FinalEnergy int    `db:"final_energy"`
	FinalHunger int    `db:"final_hunger"`
}

// NewRun creates a run record with a fresh ID.
func NewRun(seed int64, days int) Run {
	return Run{
		ID:        uuid.NewString(),
		Seed:      seed,
		Days:      days,
		StartedAt: time.Now().Unix(),
	}
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		days INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		finished_at INTEGER NOT NULL DEFAULT 0,
		hours INTEGER NOT NULL DEFAULT 0,
		final_state TEXT NOT NULL DEFAULT '',
		final_energy INTEGER NOT NULL DEFAULT 0,
		final_hunger INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		day INTEGER NOT NULL,
		hour INTEGER NOT NULL,
		from_state TEXT NOT NULL,
		to_state TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_meta (
		run_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (run_id, key)
	);

	CREATE INDEX IF NOT EXISTS idx_events_run_tick ON events(run_id, tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun inserts or replaces a run record.
func (db *DB) SaveRun(r Run) error {
	_, err := db.conn.NamedExec(`INSERT OR REPLACE INTO runs
		(id, seed, days, started_at, finished_at, hours, final_state, final_energy, final_hunger)
		VALUES (:id, :seed, :days, :started_at, :finished_at, :hours, :final_state, :final_energy, :final_hunger)`, r)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}
	return nil
}

// FinishRun records the end of a run and the agent's final status.
func (db *DB) FinishRun(id string, hours uint64, status routine.Status) error {
	res, err := db.conn.Exec(`UPDATE runs
		SET finished_at = ?, hours = ?, final_state = ?, final_energy = ?, final_hunger = ?
		WHERE id = ?`,
		time.Now().Unix(), hours, status.State.String(), status.Energy, status.Hunger, id,
	)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run %s: %w", id, ErrNotFound)
	}
	return nil
}

// LoadRun fetches a run by ID.
func (db *DB) LoadRun(id string) (Run, error) {
	var r Run
	err := db.conn.Get(&r, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("load run %s: %w", id, ErrNotFound)
	}
	return r, err
}

// SaveEvents appends events to a run's journal.
func (db *DB) SaveEvents(runID string, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO events
		(run_id, tick, day, hour, from_state, to_state, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(runID, e.Tick, e.Day, e.Hour, e.From, e.To, e.Message); err != nil {
			return fmt.Errorf("insert event %d: %w", e.Tick, err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns a run's most recent N events, oldest first.
func (db *DB) RecentEvents(runID string, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events, `SELECT tick, day, hour, from_state, to_state, message FROM (
			SELECT * FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`,
		runID, limit,
	)
	return events, err
}

// CountEvents returns how many events a run has stored.
func (db *DB) CountEvents(runID string) (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM events WHERE run_id = ?", runID)
	return n, err
}

// SaveMeta stores a key-value pair for a run.
func (db *DB) SaveMeta(runID, key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (run_id, key, value) VALUES (?, ?, ?)",
		runID, key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(runID, key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM run_meta WHERE run_id = ? AND key = ?", runID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return value, err
}

// SaveDay stores the simulation's queued events for a run. Events stay
// queued until the insert commits, so a failed save is retried next time.
func (db *DB) SaveDay(runID string, sim *engine.Simulation) error {
	events := sim.Pending()
	if err := db.SaveEvents(runID, events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	sim.AckPending(len(events))
	if err := db.SaveMeta(runID, "last_tick", fmt.Sprintf("%d", sim.CurrentTick())); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	slog.Debug("journal saved", "run", runID, "events", len(events))
	return nil
}

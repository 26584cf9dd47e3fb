// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE HERE?
// Production runs on PostgreSQL (see repository/postgres). SQLite is the
// zero-infrastructure backend: `DATABASE_DRIVER=sqlite` runs the whole API
// from one file, and the tests use ":memory:" so they need no server at all.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// modernc.org/sqlite is a pure Go translation of the SQLite C code, so no C
// compiler is needed and cross-compilation keeps working.
//
// DIALECT NOTES:
//   - Dates are stored as "YYYY-MM-DD" text, which sorts and compares the same
//     way CURRENT_DATE does.
//   - tags has no array type here; it is stored as a JSON array in TEXT.
//   - The pool is capped at ONE connection. A ":memory:" database exists per
//     connection, and PRAGMA foreign_keys is per connection too, so a single
//     shared connection keeps every request on the same database with the
//     same settings. SQLite serialises writers anyway.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sakif/plant-care/internal/repository"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

var _ repository.Store = (*DB)(nil)

// DB wraps a sql.DB connection pool and provides repository methods.
type DB struct {
	conn *sql.DB
	sb   sq.StatementBuilderType
}

// New opens the database and applies the schema.
//
// dbPath examples:
//   - "data/plants.db"  → file-based database (persistent)
//   - ":memory:"        → in-memory database (tests, lost on close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	// Keep the connection alive between requests; closing the last
	// connection of a ":memory:" database drops it.
	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets readers proceed during a write on file databases. On
	// ":memory:" SQLite answers "memory" and carries on.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite. journal_entries and
	// reminders must reference an existing plant.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks that the database still answers.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return nil
}

// migrate creates the tables. CREATE ... IF NOT EXISTS makes it safe to run
// on every open.
func (db *DB) migrate() error {
	statements := []struct {
		name string
		sql  string
	}{
		{"plants", `
			CREATE TABLE IF NOT EXISTS plants (
				id                   INTEGER PRIMARY KEY AUTOINCREMENT,
				name                 TEXT NOT NULL DEFAULT '',
				species              TEXT NOT NULL DEFAULT '',
				emoji                TEXT NOT NULL DEFAULT '🌱',
				water_frequency_days INTEGER DEFAULT 7 CHECK (water_frequency_days >= 0),
				light                TEXT NOT NULL DEFAULT '',
				humidity             INTEGER NOT NULL DEFAULT 50,
				health               INTEGER NOT NULL DEFAULT 100,
				notes                TEXT NOT NULL DEFAULT '',
				variety              TEXT,
				purchase_date        DATE,
				price                REAL,
				photo_url            TEXT,
				last_watered         DATE,
				created_at           DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
			);
			CREATE INDEX IF NOT EXISTS idx_plants_created_at ON plants(created_at);
		`},
		{"journal_entries", `
			CREATE TABLE IF NOT EXISTS journal_entries (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				plant_id   INTEGER NOT NULL REFERENCES plants(id),
				entry_date DATE NOT NULL DEFAULT CURRENT_DATE,
				tag        TEXT NOT NULL DEFAULT '',
				text       TEXT NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
			);
			CREATE INDEX IF NOT EXISTS idx_journal_entries_entry_date ON journal_entries(entry_date, created_at);
		`},
		{"reminders", `
			CREATE TABLE IF NOT EXISTS reminders (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				plant_id   INTEGER NOT NULL REFERENCES plants(id),
				type       TEXT NOT NULL DEFAULT 'watering',
				due_date   DATE,
				is_done    BOOLEAN NOT NULL DEFAULT FALSE,
				created_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
			);
			CREATE INDEX IF NOT EXISTS idx_reminders_due_date ON reminders(due_date);
		`},
		{"community_posts", `
			CREATE TABLE IF NOT EXISTS community_posts (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				author_name TEXT NOT NULL DEFAULT 'Anonymous',
				text        TEXT NOT NULL DEFAULT '',
				tags        TEXT NOT NULL DEFAULT '[]',
				likes       INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
				comments    INTEGER NOT NULL DEFAULT 0 CHECK (comments >= 0),
				created_at  DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
			);
			CREATE INDEX IF NOT EXISTS idx_community_posts_created_at ON community_posts(created_at);
		`},
	}

	for _, s := range statements {
		if _, err := db.conn.Exec(s.sql); err != nil {
			return fmt.Errorf("creating %s table: %w", s.name, err)
		}
	}
	return nil
}

// withTx runs fn in a transaction on a connection checked out for just this
// call. The connection goes back to the pool on every path, including a
// failed Begin or a panic in fn.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback after Commit is a no-op returning sql.ErrTxDone.
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// insert runs an INSERT and returns the new row id.
func (db *DB) insert(ctx context.Context, q sq.InsertBuilder) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building insert: %w", err)
	}

	var id int64
	err = db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// exec runs a single write statement.
func (db *DB) exec(ctx context.Context, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("building statement: %w", err)
	}
	return db.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

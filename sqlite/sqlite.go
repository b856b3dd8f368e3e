// Package sqlite provides SQLite-backed storage for the confidx search
// index, using FTS5 for full-text queries over document content.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database, creating the index schema when no database file
// exists at the path yet. The returned flag reports whether a new index was
// created. Opening an existing index never re-applies the schema.
func (db *DB) Open() (created bool, err error) {
	// In-memory databases are always fresh and always need the schema.
	created = true
	if db.path != ":memory:" {
		if _, err := os.Stat(db.path); err == nil {
			created = false
		} else if !os.IsNotExist(err) {
			return false, err
		}
	}

	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return false, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return false, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return false, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases so a crash mid-run leaves the
	// index structurally valid with only the documents committed before the
	// crash. Not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return false, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if created {
		if err := db.createSchema(); err != nil {
			conn.Close()
			return false, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return created, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the index tables. Only the content column is
// tokenized for search; the remaining document fields are stored for
// display. The FTS table mirrors documents(content) via triggers.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE documents (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL,
			subtype TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			org TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			indexed_at TEXT NOT NULL
		);

		CREATE VIRTUAL TABLE documents_fts USING fts5(
			content,
			content='documents',
			content_rowid='rowid'
		);

		CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
			INSERT INTO documents_fts(rowid, content) VALUES (new.rowid, new.content);
		END;

		CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
			INSERT INTO documents_fts(documents_fts, rowid, content) VALUES ('delete', old.rowid, old.content);
		END;
	`

	_, err := db.db.Exec(schema)
	return err
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"parley/internal/store"
)

// schema creates the messages log. receiver is NULL for public messages.
const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	sender     TEXT NOT NULL,
	receiver   TEXT,
	text       TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender, receiver, created_at);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithSetup(dbPath, func(db *sql.DB) error {
		_, err := db.Exec(schema)
		return err
	})
}

// NewWithSetup creates a new SQLite store and runs a setup function.
// Useful for tests to apply a custom schema.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A single connection serializes appends, which keeps id assignment
	// deterministic and matches delivery order to live recipients.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append validates and persists a message, assigning id and timestamp.
func (s *SQLiteStore) Append(ctx context.Context, sender, receiver, text string) (*store.Message, error) {
	if err := store.ValidateText(text); err != nil {
		return nil, err
	}

	// Timestamp is fixed at persistence time; the single connection keeps it
	// non-decreasing with id.
	createdAt := time.Now()

	var recv sql.NullString
	if receiver != "" {
		recv = sql.NullString{String: receiver, Valid: true}
	}

	query := `
		INSERT INTO messages (sender, receiver, text, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, sender, recv, text, createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &store.Message{
		ID:        id,
		Sender:    sender,
		Receiver:  receiver,
		Text:      text,
		CreatedAt: createdAt,
	}, nil
}

// History returns the two-party private conversation in ascending order.
func (s *SQLiteStore) History(ctx context.Context, userA, userB string) ([]*store.Message, error) {
	query := `
		SELECT id, sender, COALESCE(receiver, ''), text, created_at
		FROM messages
		WHERE (sender = ? AND receiver = ?)
		   OR (sender = ? AND receiver = ?)
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, userA, userB, userB, userA)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	messages := make([]*store.Message, 0)
	for rows.Next() {
		var msg store.Message
		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Receiver, &msg.Text, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return messages, nil
}

package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendlog/internal/core"

	_ "modernc.org/sqlite"
)

// DefaultSlotName is the key under which the expense list is stored.
const DefaultSlotName = "expenses"

// SQLiteSlot persists the snapshot in a single-row key-value table. The
// table is keyed by slot name so the same database could carry other slots
// later without a schema change.
type SQLiteSlot struct {
	db   *sql.DB
	slot string
}

func NewSQLiteSlot(dbPath, slot string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if slot == "" {
		slot = DefaultSlotName
	}
	return &SQLiteSlot{db: db, slot: slot}, nil
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]core.Expense, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE slot = ?`, s.slot,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot row: %w", err)
	}
	return Decode(data)
}

func (s *SQLiteSlot) Save(ctx context.Context, list []core.Expense) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (slot, data, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   data = excluded.data,
		   updated_at = excluded.updated_at`,
		s.slot, data)
	if err != nil {
		return fmt.Errorf("write snapshot row: %w", err)
	}

	slog.DebugContext(ctx, "Snapshot saved to SQLite",
		"slot", s.slot,
		"records", len(list),
		"bytes", len(data))
	return nil
}

func (s *SQLiteSlot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

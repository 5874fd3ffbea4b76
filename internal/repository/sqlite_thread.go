package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asifrahman/gradus/internal/db"
)

// SQLiteThreadRepo implements ThreadRepo using a SQLite database. One row
// per user key; the payload is the serialized thread store.
type SQLiteThreadRepo struct {
	db db.DBTX
}

// NewSQLiteThreadRepo creates a new SQLiteThreadRepo.
func NewSQLiteThreadRepo(conn db.DBTX) *SQLiteThreadRepo {
	return &SQLiteThreadRepo{db: conn}
}

func (r *SQLiteThreadRepo) Load(ctx context.Context, userKey string) (*ThreadRecord, error) {
	query := `SELECT schema_version, payload, updated_at FROM chat_threads WHERE user_key = ?`
	row := r.db.QueryRowContext(ctx, query, userKey)

	var rec ThreadRecord
	var payload, updatedAt string
	err := row.Scan(&rec.Version, &payload, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chat thread: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning chat thread: %w", err)
	}
	rec.Payload = []byte(payload)
	rec.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteThreadRepo) Save(ctx context.Context, userKey string, version int, payload []byte) error {
	query := `INSERT OR REPLACE INTO chat_threads (user_key, schema_version, payload, updated_at)
		VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userKey, version, string(payload), nowUTC()); err != nil {
		return fmt.Errorf("saving chat thread: %w", err)
	}
	return nil
}

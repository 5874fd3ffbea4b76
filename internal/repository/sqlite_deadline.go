package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/asifrahman/gradus/internal/db"
	"github.com/asifrahman/gradus/internal/domain"
)

// SQLiteDeadlineRepo implements DeadlineRepo using a SQLite database.
type SQLiteDeadlineRepo struct {
	db db.DBTX
}

// NewSQLiteDeadlineRepo creates a new SQLiteDeadlineRepo.
func NewSQLiteDeadlineRepo(conn db.DBTX) *SQLiteDeadlineRepo {
	return &SQLiteDeadlineRepo{db: conn}
}

const deadlineColumns = `id, user_id, kind, course_code, title, due_at`

func (r *SQLiteDeadlineRepo) Create(ctx context.Context, d *domain.Deadline) error {
	query := `INSERT INTO deadlines (` + deadlineColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.UserID,
		string(d.Kind),
		domain.CanonicalCode(d.Course),
		d.Title,
		formatTime(d.DueAt),
	)
	if err != nil {
		return fmt.Errorf("inserting deadline: %w", err)
	}
	return nil
}

func (r *SQLiteDeadlineRepo) List(ctx context.Context, userID string) ([]*domain.Deadline, error) {
	query := `SELECT ` + deadlineColumns + ` FROM deadlines WHERE user_id = ? ORDER BY due_at, id`
	return r.list(ctx, query, userID)
}

// ListUpcoming returns deadlines due at or after the given instant in due
// order. Fixed-width UTC strings compare lexicographically in time order.
func (r *SQLiteDeadlineRepo) ListUpcoming(ctx context.Context, userID string, from time.Time) ([]*domain.Deadline, error) {
	query := `SELECT ` + deadlineColumns + ` FROM deadlines
		WHERE user_id = ? AND due_at >= ? ORDER BY due_at, id`
	return r.list(ctx, query, userID, formatTime(from))
}

func (r *SQLiteDeadlineRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deadlines WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting deadline: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting deadline: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("deadline: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteDeadlineRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Deadline, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing deadlines: %w", err)
	}
	defer rows.Close()

	var deadlines []*domain.Deadline
	for rows.Next() {
		var d domain.Deadline
		var kind, dueAt string
		if err := rows.Scan(&d.ID, &d.UserID, &kind, &d.Course, &d.Title, &dueAt); err != nil {
			return nil, fmt.Errorf("scanning deadline: %w", err)
		}
		d.Kind = domain.DeadlineKind(kind)
		d.DueAt, err = parseTime(dueAt)
		if err != nil {
			return nil, err
		}
		deadlines = append(deadlines, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deadlines: %w", err)
	}
	return deadlines, nil
}

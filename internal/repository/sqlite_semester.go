package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asifrahman/gradus/internal/db"
	"github.com/asifrahman/gradus/internal/domain"
)

// SQLiteSemesterRepo implements SemesterRepo using a SQLite database.
type SQLiteSemesterRepo struct {
	db db.DBTX
}

// NewSQLiteSemesterRepo creates a new SQLiteSemesterRepo.
func NewSQLiteSemesterRepo(conn db.DBTX) *SQLiteSemesterRepo {
	return &SQLiteSemesterRepo{db: conn}
}

const semesterColumns = `id, user_id, name, created_at`

func (r *SQLiteSemesterRepo) Create(ctx context.Context, s *domain.Semester) error {
	query := `INSERT INTO semesters (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Name,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting semester: %w", err)
	}
	return nil
}

func (r *SQLiteSemesterRepo) GetByID(ctx context.Context, userID, id string) (*domain.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)
	return scanSemester(row)
}

func (r *SQLiteSemesterRepo) GetByName(ctx context.Context, userID, name string) (*domain.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE user_id = ? AND name = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, userID, name)
	return scanSemester(row)
}

func (r *SQLiteSemesterRepo) List(ctx context.Context, userID string) ([]*domain.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE user_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*domain.Semester
	for rows.Next() {
		s, err := scanSemesterFromRows(rows)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating semesters: %w", err)
	}
	return semesters, nil
}

// Delete removes a semester. Enrollments referencing it are removed by the
// ON DELETE CASCADE foreign key; callers wanting atomicity with other
// writes should run this inside a UnitOfWork.
func (r *SQLiteSemesterRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting semester: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting semester: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("semester: %w", ErrNotFound)
	}
	return nil
}

func scanSemester(row *sql.Row) (*domain.Semester, error) {
	var s domain.Semester
	var createdAt string
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("semester: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning semester: %w", err)
	}
	s.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSemesterFromRows(rows *sql.Rows) (*domain.Semester, error) {
	var s domain.Semester
	var createdAt string
	if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning semester: %w", err)
	}
	var err error
	s.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

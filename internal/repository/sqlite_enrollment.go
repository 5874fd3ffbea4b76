package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asifrahman/gradus/internal/db"
	"github.com/asifrahman/gradus/internal/domain"
)

// SQLiteEnrollmentRepo implements EnrollmentRepo using a SQLite database.
type SQLiteEnrollmentRepo struct {
	db db.DBTX
}

// NewSQLiteEnrollmentRepo creates a new SQLiteEnrollmentRepo.
func NewSQLiteEnrollmentRepo(conn db.DBTX) *SQLiteEnrollmentRepo {
	return &SQLiteEnrollmentRepo{db: conn}
}

const enrollmentColumns = `id, user_id, semester_id, code, title, credits, letter, is_retake, created_at`

func (r *SQLiteEnrollmentRepo) Create(ctx context.Context, e *domain.Enrollment) error {
	query := `INSERT INTO enrollments (` + enrollmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.SemesterID,
		domain.CanonicalCode(e.Code),
		e.Title,
		e.Credits,
		e.Letter,
		boolToInt(e.IsRetake),
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting enrollment: %w", err)
	}
	return nil
}

func (r *SQLiteEnrollmentRepo) GetByID(ctx context.Context, userID, id string) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)
	return scanEnrollment(row)
}

func (r *SQLiteEnrollmentRepo) ListBySemester(ctx context.Context, userID, semesterID string) ([]*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments
		WHERE user_id = ? AND semester_id = ? ORDER BY created_at, id`
	return r.list(ctx, query, userID, semesterID)
}

func (r *SQLiteEnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments
		WHERE user_id = ? ORDER BY created_at, id`
	return r.list(ctx, query, userID)
}

func (r *SQLiteEnrollmentRepo) CountBySemester(ctx context.Context, userID, semesterID string) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE user_id = ? AND semester_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, semesterID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting enrollments: %w", err)
	}
	return n, nil
}

func (r *SQLiteEnrollmentRepo) ExistsInSemester(ctx context.Context, userID, semesterID, code string) (bool, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE user_id = ? AND semester_id = ? AND code = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, semesterID, domain.CanonicalCode(code)).Scan(&n); err != nil {
		return false, fmt.Errorf("checking enrollment in semester: %w", err)
	}
	return n > 0, nil
}

// ExistsElsewhere reports whether the user has an attempt at the course in
// any other semester. A true result means a new enrollment is a retake.
func (r *SQLiteEnrollmentRepo) ExistsElsewhere(ctx context.Context, userID, semesterID, code string) (bool, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE user_id = ? AND semester_id != ? AND code = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, semesterID, domain.CanonicalCode(code)).Scan(&n); err != nil {
		return false, fmt.Errorf("checking prior attempts: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteEnrollmentRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting enrollment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting enrollment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("enrollment: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteEnrollmentRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollmentFromRows(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enrollments: %w", err)
	}
	return enrollments, nil
}

func scanEnrollment(row *sql.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	var isRetake int
	var createdAt string
	err := row.Scan(&e.ID, &e.UserID, &e.SemesterID, &e.Code, &e.Title, &e.Credits, &e.Letter, &isRetake, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("enrollment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning enrollment: %w", err)
	}
	e.IsRetake = intToBool(isRetake)
	e.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEnrollmentFromRows(rows *sql.Rows) (*domain.Enrollment, error) {
	var e domain.Enrollment
	var isRetake int
	var createdAt string
	if err := rows.Scan(&e.ID, &e.UserID, &e.SemesterID, &e.Code, &e.Title, &e.Credits, &e.Letter, &isRetake, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning enrollment: %w", err)
	}
	e.IsRetake = intToBool(isRetake)
	var err error
	e.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

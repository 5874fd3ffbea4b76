package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asifrahman/gradus/internal/db"
	"github.com/asifrahman/gradus/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo across the preferences,
// study_windows, routine_entries, and course_difficulty tables.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

// Get assembles the full planner configuration for a user. A user with no
// stored rows gets defaults: empty timezone, 2 hours/day, no windows, no
// routine, no difficulty overrides.
func (r *SQLitePreferencesRepo) Get(ctx context.Context, userID string) (*domain.RoutinePreferences, error) {
	prefs := &domain.RoutinePreferences{
		UserID:        userID,
		MaxDailyHours: 2,
		Difficulty:    map[string]domain.Difficulty{},
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT timezone, max_daily_hours FROM preferences WHERE user_id = ?`, userID)
	if err := row.Scan(&prefs.Timezone, &prefs.MaxDailyHours); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}

	windows, err := r.listStudyWindows(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs.StudyWindows = windows

	routine, err := r.listRoutine(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs.Routine = routine

	if err := r.loadDifficulty(ctx, userID, prefs.Difficulty); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *SQLitePreferencesRepo) UpsertBase(ctx context.Context, userID, timezone string, maxDailyHours float64) error {
	query := `INSERT OR REPLACE INTO preferences (user_id, timezone, max_daily_hours) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, timezone, maxDailyHours); err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}

func (r *SQLitePreferencesRepo) AddStudyWindow(ctx context.Context, w *domain.StudyWindow) error {
	query := `INSERT INTO study_windows (id, user_id, day_selector, start_time, end_time)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, w.ID, w.UserID, w.DaySelector, w.Start, w.End); err != nil {
		return fmt.Errorf("inserting study window: %w", err)
	}
	return nil
}

func (r *SQLitePreferencesRepo) DeleteStudyWindow(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM study_windows WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting study window: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting study window: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("study window: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePreferencesRepo) AddRoutineEntry(ctx context.Context, e *domain.RoutineEntry) error {
	query := `INSERT INTO routine_entries (id, user_id, weekday, start_time, end_time, course_code)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, string(e.Day), e.Start, e.End, domain.CanonicalCode(e.Course))
	if err != nil {
		return fmt.Errorf("inserting routine entry: %w", err)
	}
	return nil
}

func (r *SQLitePreferencesRepo) DeleteRoutineEntry(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM routine_entries WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting routine entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting routine entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("routine entry: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePreferencesRepo) SetDifficulty(ctx context.Context, userID, courseCode string, tier domain.Difficulty) error {
	query := `INSERT OR REPLACE INTO course_difficulty (user_id, course_code, tier) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, userID, domain.CanonicalCode(courseCode), string(tier))
	if err != nil {
		return fmt.Errorf("setting course difficulty: %w", err)
	}
	return nil
}

func (r *SQLitePreferencesRepo) listStudyWindows(ctx context.Context, userID string) ([]domain.StudyWindow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, day_selector, start_time, end_time FROM study_windows
		WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing study windows: %w", err)
	}
	defer rows.Close()

	var windows []domain.StudyWindow
	for rows.Next() {
		var w domain.StudyWindow
		if err := rows.Scan(&w.ID, &w.UserID, &w.DaySelector, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("scanning study window: %w", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study windows: %w", err)
	}
	return windows, nil
}

func (r *SQLitePreferencesRepo) listRoutine(ctx context.Context, userID string) ([]domain.RoutineEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, weekday, start_time, end_time, course_code FROM routine_entries
		WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing routine entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RoutineEntry
	for rows.Next() {
		var e domain.RoutineEntry
		var day string
		if err := rows.Scan(&e.ID, &e.UserID, &day, &e.Start, &e.End, &e.Course); err != nil {
			return nil, fmt.Errorf("scanning routine entry: %w", err)
		}
		e.Day = domain.Weekday(day)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routine entries: %w", err)
	}
	return entries, nil
}

func (r *SQLitePreferencesRepo) loadDifficulty(ctx context.Context, userID string, into map[string]domain.Difficulty) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_code, tier FROM course_difficulty WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("listing course difficulty: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, tier string
		if err := rows.Scan(&code, &tier); err != nil {
			return fmt.Errorf("scanning course difficulty: %w", err)
		}
		into[code] = domain.Difficulty(tier)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating course difficulty: %w", err)
	}
	return nil
}

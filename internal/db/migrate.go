package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE re-runs that add an existing column are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS semesters (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(user_id, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_semesters_user ON semesters(user_id)`,

	`CREATE TABLE IF NOT EXISTS enrollments (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		semester_id TEXT NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
		code        TEXT NOT NULL,
		title       TEXT NOT NULL DEFAULT '',
		credits     REAL NOT NULL,
		letter      TEXT NOT NULL,
		is_retake   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		UNIQUE(user_id, semester_id, code)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_user ON enrollments(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_semester ON enrollments(semester_id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_user_code ON enrollments(user_id, code)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		user_id         TEXT PRIMARY KEY,
		timezone        TEXT NOT NULL DEFAULT '',
		max_daily_hours REAL NOT NULL DEFAULT 2
	)`,

	`CREATE TABLE IF NOT EXISTS study_windows (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		day_selector TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_windows_user ON study_windows(user_id)`,

	`CREATE TABLE IF NOT EXISTS routine_entries (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		weekday     TEXT NOT NULL
		            CHECK(weekday IN ('Mon','Tue','Wed','Thu','Fri','Sat','Sun')),
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		course_code TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_routine_entries_user ON routine_entries(user_id)`,

	`CREATE TABLE IF NOT EXISTS course_difficulty (
		user_id     TEXT NOT NULL,
		course_code TEXT NOT NULL,
		tier        TEXT NOT NULL
		            CHECK(tier IN ('easy','medium','hard')),
		PRIMARY KEY (user_id, course_code)
	)`,

	`CREATE TABLE IF NOT EXISTS deadlines (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('assignment','quiz','viva','exam')),
		course_code TEXT NOT NULL,
		title       TEXT NOT NULL DEFAULT '',
		due_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_deadlines_user ON deadlines(user_id)`,

	`CREATE TABLE IF NOT EXISTS chat_threads (
		user_key       TEXT PRIMARY KEY,
		schema_version INTEGER NOT NULL DEFAULT 1,
		payload        TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
}

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second run must be a no-op.
	require.NoError(t, Migrate(database))

	for _, table := range []string{
		"semesters", "enrollments", "preferences", "study_windows",
		"routine_entries", "course_difficulty", "deadlines", "chat_threads",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s must exist", table)
	}
}

func TestForeignKeys_EnrollmentCascade(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO semesters (id, user_id, name, created_at) VALUES ('s1', 'u1', 'Fall 2025', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(
		`INSERT INTO enrollments (id, user_id, semester_id, code, credits, letter, created_at)
		 VALUES ('e1', 'u1', 's1', 'CSE111', 3, 'A', '2025-01-02T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM semesters WHERE id = 's1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM enrollments`).Scan(&count))
	assert.Zero(t, count, "enrollments must cascade with their semester")
}

func TestUniqueIndex_DuplicateCodeInSemesterRejected(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO semesters (id, user_id, name, created_at) VALUES ('s1', 'u1', 'Fall 2025', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	insert := `INSERT INTO enrollments (id, user_id, semester_id, code, credits, letter, created_at)
		 VALUES (?, 'u1', 's1', 'CSE111', 3, 'A', '2025-01-02T00:00:00Z')`
	_, err = database.Exec(insert, "e1")
	require.NoError(t, err)

	// Storage-level uniqueness is the last line of defense against a
	// read-then-write race in the duplicate check.
	_, err = database.Exec(insert, "e2")
	assert.Error(t, err)
}

package testutil

import (
	"database/sql"
	"testing"

	"github.com/asifrahman/gradus/internal/db"
)

// NewTestDB opens a fresh in-memory SQLite database with the full gradus
// schema applied, closed automatically when the test finishes. Each call
// is isolated, so parallel tests never share state.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in the real SQLite UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

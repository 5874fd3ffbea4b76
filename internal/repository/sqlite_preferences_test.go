package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/testutil"
)

func TestPreferencesRepo_DefaultsWhenEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	prefs, err := repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, "", prefs.Timezone)
	assert.Equal(t, 2.0, prefs.MaxDailyHours)
	assert.Empty(t, prefs.Routine)
	assert.Empty(t, prefs.StudyWindows)
	assert.Empty(t, prefs.Difficulty)
}

func TestPreferencesRepo_UpsertBase(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertBase(ctx, testutil.TestUser, "Asia/Dhaka", 3))
	require.NoError(t, repo.UpsertBase(ctx, testutil.TestUser, "Asia/Dhaka", 4))

	prefs, err := repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Dhaka", prefs.Timezone)
	assert.Equal(t, 4.0, prefs.MaxDailyHours)
}

func TestPreferencesRepo_RoutineEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestRoutineEntry(domain.Monday, "09:00", "10:20", "cse110")
	require.NoError(t, repo.AddRoutineEntry(ctx, entry))

	prefs, err := repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, prefs.Routine, 1)
	assert.Equal(t, domain.Monday, prefs.Routine[0].Day)
	assert.Equal(t, "CSE110", prefs.Routine[0].Course)

	require.NoError(t, repo.DeleteRoutineEntry(ctx, testutil.TestUser, entry.ID))
	prefs, err = repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Empty(t, prefs.Routine)
}

func TestPreferencesRepo_InvalidWeekdayRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	bad := &domain.RoutineEntry{
		ID:     uuid.New().String(),
		UserID: testutil.TestUser,
		Day:    domain.Weekday("Monday"),
		Start:  "09:00",
		End:    "10:00",
		Course: "CSE110",
	}
	err := repo.AddRoutineEntry(ctx, bad)
	assert.Error(t, err, "CHECK constraint should reject non-canonical weekday")
}

func TestPreferencesRepo_StudyWindows(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	w := &domain.StudyWindow{
		ID:          uuid.New().String(),
		UserID:      testutil.TestUser,
		DaySelector: "Mon-Fri",
		Start:       "19:00",
		End:         "22:00",
	}
	require.NoError(t, repo.AddStudyWindow(ctx, w))

	prefs, err := repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, prefs.StudyWindows, 1)
	assert.Equal(t, "Mon-Fri", prefs.StudyWindows[0].DaySelector)

	require.NoError(t, repo.DeleteStudyWindow(ctx, testutil.TestUser, w.ID))
	prefs, err = repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Empty(t, prefs.StudyWindows)
}

func TestPreferencesRepo_DifficultyUpsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetDifficulty(ctx, testutil.TestUser, "cse110", domain.DifficultyHard))
	require.NoError(t, repo.SetDifficulty(ctx, testutil.TestUser, "CSE110", domain.DifficultyEasy))

	prefs, err := repo.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyEasy, prefs.Difficulty["CSE110"])
	assert.Len(t, prefs.Difficulty, 1)
}

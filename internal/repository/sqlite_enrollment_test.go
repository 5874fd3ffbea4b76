package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifrahman/gradus/internal/testutil"
)

func TestEnrollmentRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Spring 2025")
	require.NoError(t, semRepo.Create(ctx, sem))

	enr := testutil.NewTestEnrollment(sem.ID, "cse110",
		testutil.WithLetter("B+"),
		testutil.WithCredits(4),
		testutil.WithTitle("Programming Language I"),
	)
	require.NoError(t, repo.Create(ctx, enr))

	fetched, err := repo.GetByID(ctx, enr.UserID, enr.ID)
	require.NoError(t, err)
	// Codes are stored canonically.
	assert.Equal(t, "CSE110", fetched.Code)
	assert.Equal(t, "B+", fetched.Letter)
	assert.Equal(t, 4.0, fetched.Credits)
	assert.Equal(t, "Programming Language I", fetched.Title)
	assert.False(t, fetched.IsRetake)
}

func TestEnrollmentRepo_RetakeFlagRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Fall 2025")
	require.NoError(t, semRepo.Create(ctx, sem))

	enr := testutil.NewTestEnrollment(sem.ID, "MAT110", testutil.WithRetake())
	require.NoError(t, repo.Create(ctx, enr))

	fetched, err := repo.GetByID(ctx, enr.UserID, enr.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsRetake)
}

func TestEnrollmentRepo_DuplicateCodeInSemesterRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Spring 2025")
	require.NoError(t, semRepo.Create(ctx, sem))

	require.NoError(t, repo.Create(ctx, testutil.NewTestEnrollment(sem.ID, "CSE110")))
	// Differently-cased code canonicalizes to the same stored value.
	err := repo.Create(ctx, testutil.NewTestEnrollment(sem.ID, "cse110"))
	assert.Error(t, err)
}

func TestEnrollmentRepo_ListBySemester_CreationOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Spring 2025")
	require.NoError(t, semRepo.Create(ctx, sem))

	base := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	second := testutil.NewTestEnrollment(sem.ID, "MAT110", testutil.WithEnrollmentCreatedAt(base.Add(time.Hour)))
	first := testutil.NewTestEnrollment(sem.ID, "CSE110", testutil.WithEnrollmentCreatedAt(base))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	list, err := repo.ListBySemester(ctx, testutil.TestUser, sem.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CSE110", list[0].Code)
	assert.Equal(t, "MAT110", list[1].Code)
}

func TestEnrollmentRepo_SubSecondCreationOrderSurvivesStorage(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	semA := testutil.NewTestSemester("Spring 2025")
	semB := testutil.NewTestSemester("Fall 2025")
	require.NoError(t, semRepo.Create(ctx, semA))
	require.NoError(t, semRepo.Create(ctx, semB))

	// Two attempts within the same wall-clock second. The stored text must
	// keep nanosecond precision so the retake still sorts after the original.
	base := time.Date(2025, 1, 15, 9, 0, 0, 100, time.UTC)
	original := testutil.NewTestEnrollment(semA.ID, "CSE110",
		testutil.WithLetter("F"),
		testutil.WithEnrollmentCreatedAt(base))
	retake := testutil.NewTestEnrollment(semB.ID, "CSE110",
		testutil.WithLetter("A"),
		testutil.WithRetake(),
		testutil.WithEnrollmentCreatedAt(base.Add(200*time.Nanosecond)))
	require.NoError(t, repo.Create(ctx, retake))
	require.NoError(t, repo.Create(ctx, original))

	list, err := repo.ListByUser(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "F", list[0].Letter)
	assert.Equal(t, "A", list[1].Letter)
	assert.True(t, list[1].CreatedAt.After(list[0].CreatedAt))

	fetched, err := repo.GetByID(ctx, original.UserID, original.ID)
	require.NoError(t, err)
	assert.True(t, fetched.CreatedAt.Equal(base))
}

func TestEnrollmentRepo_CountAndExistence(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	semA := testutil.NewTestSemester("Spring 2025")
	semB := testutil.NewTestSemester("Fall 2025")
	require.NoError(t, semRepo.Create(ctx, semA))
	require.NoError(t, semRepo.Create(ctx, semB))

	require.NoError(t, repo.Create(ctx, testutil.NewTestEnrollment(semA.ID, "CSE110")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEnrollment(semA.ID, "MAT110")))

	n, err := repo.CountBySemester(ctx, testutil.TestUser, semA.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	inSem, err := repo.ExistsInSemester(ctx, testutil.TestUser, semA.ID, "cse110")
	require.NoError(t, err)
	assert.True(t, inSem)

	// Same code seen from another semester counts as a prior attempt.
	elsewhere, err := repo.ExistsElsewhere(ctx, testutil.TestUser, semB.ID, "CSE110")
	require.NoError(t, err)
	assert.True(t, elsewhere)

	elsewhere, err = repo.ExistsElsewhere(ctx, testutil.TestUser, semA.ID, "CSE110")
	require.NoError(t, err)
	assert.False(t, elsewhere)
}

func TestEnrollmentRepo_CascadeDeleteWithSemester(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := NewSQLiteSemesterRepo(db)
	repo := NewSQLiteEnrollmentRepo(db)
	ctx := context.Background()

	sem := testutil.NewTestSemester("Spring 2025")
	require.NoError(t, semRepo.Create(ctx, sem))

	enr := testutil.NewTestEnrollment(sem.ID, "CSE110")
	require.NoError(t, repo.Create(ctx, enr))

	require.NoError(t, semRepo.Delete(ctx, sem.UserID, sem.ID))

	_, err := repo.GetByID(ctx, enr.UserID, enr.ID)
	assert.Error(t, err, "enrollment should be cascade-deleted with its semester")
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifrahman/gradus/internal/repository"
	"github.com/asifrahman/gradus/internal/testutil"
)

func newSemesterFixture(t *testing.T) (SemesterService, EnrollmentService, context.Context) {
	t.Helper()
	db := testutil.NewTestDB(t)
	semRepo := repository.NewSQLiteSemesterRepo(db)
	enrRepo := repository.NewSQLiteEnrollmentRepo(db)
	uow := testutil.NewTestUoW(db)
	return NewSemesterService(semRepo, enrRepo, uow),
		NewEnrollmentService(semRepo, enrRepo),
		context.Background()
}

func TestSemesterService_Create(t *testing.T) {
	svc, _, ctx := newSemesterFixture(t)

	sem, err := svc.Create(ctx, testutil.TestUser, "  Spring 2025  ")
	require.NoError(t, err)
	assert.Equal(t, "Spring 2025", sem.Name)
	assert.NotEmpty(t, sem.ID)
}

func TestSemesterService_Create_DuplicateName(t *testing.T) {
	svc, _, ctx := newSemesterFixture(t)

	_, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)

	_, err = svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.Error(t, err)
	var dup *DuplicateError
	assert.True(t, errors.As(err, &dup))
}

func TestSemesterService_Create_NameTooShort(t *testing.T) {
	svc, _, ctx := newSemesterFixture(t)

	_, err := svc.Create(ctx, testutil.TestUser, "X")
	require.Error(t, err)
	var v *ValidationError
	assert.True(t, errors.As(err, &v))
}

func TestSemesterService_List_WithDerivedTotals(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)

	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.Name, Code: "CSE110", Credits: 3, Letter: "A",
	})
	require.NoError(t, err)
	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.Name, Code: "MAT110", Credits: 3, Letter: "B",
	})
	require.NoError(t, err)

	views, err := svc.List(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].CourseCount)
	assert.Equal(t, 6.0, views[0].TotalCredits)
	assert.InDelta(t, 3.5, views[0].GPA, 1e-9)
}

func TestSemesterService_Delete_CascadesToEnrollments(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := repository.NewSQLiteSemesterRepo(db)
	enrRepo := repository.NewSQLiteEnrollmentRepo(db)
	svc := NewSemesterService(semRepo, enrRepo, testutil.NewTestUoW(db))
	enrSvc := NewEnrollmentService(semRepo, enrRepo)
	ctx := context.Background()

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)
	enr, err := enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.ID, Code: "CSE110", Credits: 3, Letter: "A",
	})
	require.NoError(t, err)

	// Deleting by name resolves the same semester.
	require.NoError(t, svc.Delete(ctx, testutil.TestUser, "spring 2025"))

	_, err = enrRepo.GetByID(ctx, testutil.TestUser, enr.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSemesterService_Delete_RollsBackOnWriteFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	semRepo := repository.NewSQLiteSemesterRepo(db)
	enrRepo := repository.NewSQLiteEnrollmentRepo(db)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 1, Err: boom}
	svc := NewSemesterService(semRepo, enrRepo, uow)
	enrSvc := NewEnrollmentService(semRepo, enrRepo)
	ctx := context.Background()

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)
	enr, err := enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.ID, Code: "CSE110", Credits: 3, Letter: "A",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, testutil.TestUser, sem.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	// The transaction rolled back, so both rows survive.
	_, err = semRepo.GetByID(ctx, testutil.TestUser, sem.ID)
	require.NoError(t, err)
	_, err = enrRepo.GetByID(ctx, testutil.TestUser, enr.ID)
	require.NoError(t, err)
}

func TestSemesterService_Delete_UnknownRef(t *testing.T) {
	svc, _, ctx := newSemesterFixture(t)

	err := svc.Delete(ctx, testutil.TestUser, "No Such Term")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifrahman/gradus/internal/testutil"
)

func TestEnrollmentService_Create_ValidationOrder(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)

	cases := []struct {
		name  string
		input CourseInput
	}{
		{"bad code", CourseInput{Semester: sem.ID, Code: "C", Credits: 3, Letter: "A"}},
		{"bad credits", CourseInput{Semester: sem.ID, Code: "CSE110", Credits: 0, Letter: "A"}},
		{"bad letter", CourseInput{Semester: sem.ID, Code: "CSE110", Credits: 3, Letter: "E"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enrSvc.Create(ctx, testutil.TestUser, tc.input)
			require.Error(t, err)
			var v *ValidationError
			assert.True(t, errors.As(err, &v))
		})
	}
}

func TestEnrollmentService_Create_CapacityLimit(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := enrSvc.Create(ctx, testutil.TestUser, CourseInput{
			Semester: sem.ID,
			Code:     fmt.Sprintf("CSE1%d0", i+1),
			Credits:  3,
			Letter:   "A",
		})
		require.NoError(t, err)
	}

	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.ID, Code: "CSE160", Credits: 3, Letter: "A",
	})
	require.Error(t, err)
	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 5, capErr.Limit)
}

func TestEnrollmentService_Create_DuplicateInSemester(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)

	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.ID, Code: "CSE110", Credits: 3, Letter: "F",
	})
	require.NoError(t, err)

	// Duplicate in the same semester is rejected even with the retake flag.
	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.ID, Code: "cse110", Credits: 3, Letter: "A", IsRetake: true,
	})
	require.Error(t, err)
	var dup *DuplicateError
	assert.True(t, errors.As(err, &dup))
}

func TestEnrollmentService_Create_RetakeConfirmation(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	spring, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)
	fall, err := svc.Create(ctx, testutil.TestUser, "Fall 2025")
	require.NoError(t, err)

	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: spring.ID, Code: "CSE110", Credits: 3, Letter: "F",
	})
	require.NoError(t, err)

	// Second attempt in a later semester needs explicit confirmation.
	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: fall.ID, Code: "CSE110", Credits: 3, Letter: "A",
	})
	require.Error(t, err)
	var confirm *RetakeConfirmationError
	require.True(t, errors.As(err, &confirm))
	assert.Equal(t, "CSE110", confirm.Code)

	// Resubmitting with the flag succeeds and records the retake.
	enr, err := enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: fall.ID, Code: "CSE110", Credits: 3, Letter: "A", IsRetake: true,
	})
	require.NoError(t, err)
	assert.True(t, enr.IsRetake)
}

func TestEnrollmentService_Create_RetakeFlagIgnoredOnFirstAttempt(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	sem, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)

	enr, err := enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: sem.ID, Code: "CSE110", Credits: 3, Letter: "A", IsRetake: true,
	})
	require.NoError(t, err)
	assert.False(t, enr.IsRetake, "first attempt is never a retake")
}

func TestEnrollmentService_List_Annotations(t *testing.T) {
	svc, enrSvc, ctx := newSemesterFixture(t)

	spring, err := svc.Create(ctx, testutil.TestUser, "Spring 2025")
	require.NoError(t, err)
	fall, err := svc.Create(ctx, testutil.TestUser, "Fall 2025")
	require.NoError(t, err)

	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: spring.ID, Code: "CSE110", Credits: 3, Letter: "F",
	})
	require.NoError(t, err)
	_, err = enrSvc.Create(ctx, testutil.TestUser, CourseInput{
		Semester: fall.ID, Code: "CSE110", Credits: 3, Letter: "A", IsRetake: true,
	})
	require.NoError(t, err)

	// The superseded spring attempt drops out of the CGPA but carries no
	// retake mark. Only the attempt entered with the retake flag does.
	views, err := enrSvc.List(ctx, testutil.TestUser, spring.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Retake)
	assert.False(t, views[0].Counted)
	assert.Equal(t, 0.0, views[0].Points)

	views, err = enrSvc.List(ctx, testutil.TestUser, fall.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Retake)
	assert.True(t, views[0].Counted)
	assert.Equal(t, 4.0, views[0].Points)
}

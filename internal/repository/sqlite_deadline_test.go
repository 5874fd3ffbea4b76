package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/testutil"
)

func TestDeadlineRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(db)
	ctx := context.Background()

	due := time.Date(2025, 6, 5, 23, 59, 0, 0, time.UTC)
	d := testutil.NewTestDeadline(domain.DeadlineQuiz, "cse110", due, testutil.WithDeadlineTitle("Quiz 2"))
	require.NoError(t, repo.Create(ctx, d))

	list, err := repo.List(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.DeadlineQuiz, list[0].Kind)
	assert.Equal(t, "CSE110", list[0].Course)
	assert.Equal(t, "Quiz 2", list[0].Title)
	assert.True(t, list[0].DueAt.Equal(due))
}

func TestDeadlineRepo_ListUpcoming_FiltersAndOrders(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	past := testutil.NewTestDeadline(domain.DeadlineAssignment, "MAT110", now.AddDate(0, 0, -2))
	near := testutil.NewTestDeadline(domain.DeadlineQuiz, "CSE110", now.AddDate(0, 0, 1))
	far := testutil.NewTestDeadline(domain.DeadlineExam, "PHY111", now.AddDate(0, 0, 20))
	require.NoError(t, repo.Create(ctx, far))
	require.NoError(t, repo.Create(ctx, past))
	require.NoError(t, repo.Create(ctx, near))

	upcoming, err := repo.ListUpcoming(ctx, testutil.TestUser, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "CSE110", upcoming[0].Course)
	assert.Equal(t, "PHY111", upcoming[1].Course)
}

func TestDeadlineRepo_InvalidKindRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(db)
	ctx := context.Background()

	bad := testutil.NewTestDeadline(domain.DeadlineKind("homework"), "CSE110", time.Now().UTC())
	err := repo.Create(ctx, bad)
	assert.Error(t, err, "CHECK constraint should reject unknown deadline kind")
}

func TestDeadlineRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDeadlineRepo(db)
	ctx := context.Background()

	d := testutil.NewTestDeadline(domain.DeadlineViva, "CSE110", time.Now().UTC().AddDate(0, 0, 3))
	require.NoError(t, repo.Create(ctx, d))
	require.NoError(t, repo.Delete(ctx, testutil.TestUser, d.ID))

	err := repo.Delete(ctx, testutil.TestUser, d.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

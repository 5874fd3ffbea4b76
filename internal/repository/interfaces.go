package repository

import (
	"context"
	"time"

	"github.com/asifrahman/gradus/internal/domain"
)

// ThreadRecord is the stored form of a user's chat history: an opaque JSON
// payload plus the schema version it was written under. Migration between
// versions happens in the assistant package, not here.
type ThreadRecord struct {
	Version   int
	Payload   []byte
	UpdatedAt time.Time
}

type SemesterRepo interface {
	Create(ctx context.Context, s *domain.Semester) error
	GetByID(ctx context.Context, userID, id string) (*domain.Semester, error)
	GetByName(ctx context.Context, userID, name string) (*domain.Semester, error)
	List(ctx context.Context, userID string) ([]*domain.Semester, error)
	Delete(ctx context.Context, userID, id string) error
}

type EnrollmentRepo interface {
	Create(ctx context.Context, e *domain.Enrollment) error
	GetByID(ctx context.Context, userID, id string) (*domain.Enrollment, error)
	ListBySemester(ctx context.Context, userID, semesterID string) ([]*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
	CountBySemester(ctx context.Context, userID, semesterID string) (int, error)
	ExistsInSemester(ctx context.Context, userID, semesterID, code string) (bool, error)
	ExistsElsewhere(ctx context.Context, userID, semesterID, code string) (bool, error)
	Delete(ctx context.Context, userID, id string) error
}

// PreferencesRepo covers the planner configuration tables: the base
// preferences row, study windows, weekly routine entries, and per-course
// difficulty tiers. Get assembles all four into one RoutinePreferences.
type PreferencesRepo interface {
	Get(ctx context.Context, userID string) (*domain.RoutinePreferences, error)
	UpsertBase(ctx context.Context, userID, timezone string, maxDailyHours float64) error

	AddStudyWindow(ctx context.Context, w *domain.StudyWindow) error
	DeleteStudyWindow(ctx context.Context, userID, id string) error

	AddRoutineEntry(ctx context.Context, e *domain.RoutineEntry) error
	DeleteRoutineEntry(ctx context.Context, userID, id string) error

	SetDifficulty(ctx context.Context, userID, courseCode string, tier domain.Difficulty) error
}

type DeadlineRepo interface {
	Create(ctx context.Context, d *domain.Deadline) error
	List(ctx context.Context, userID string) ([]*domain.Deadline, error)
	ListUpcoming(ctx context.Context, userID string, from time.Time) ([]*domain.Deadline, error)
	Delete(ctx context.Context, userID, id string) error
}

type ThreadRepo interface {
	Load(ctx context.Context, userKey string) (*ThreadRecord, error)
	Save(ctx context.Context, userKey string, version int, payload []byte) error
}

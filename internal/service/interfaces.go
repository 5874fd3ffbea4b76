package service

import (
	"context"
	"time"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/scheduler"
)

// SemesterView is a semester with its derived totals. GPA and credit totals
// are computed on read from the semester's enrollments.
type SemesterView struct {
	Semester     domain.Semester
	CourseCount  int
	TotalCredits float64
	GPA          float64
}

// CourseInput is the caller-facing payload for enrolling in a course.
// Semester may be a semester id or its (case-insensitive) name.
type CourseInput struct {
	Semester string
	Code     string
	Title    string
	Credits  float64
	Letter   string
	IsRetake bool
}

// CourseView is an enrollment with its display annotations. Retake marks an
// attempt recorded in more than one semester; Counted reports whether this
// attempt is the one the CGPA grouping keeps.
type CourseView struct {
	Enrollment domain.Enrollment
	Points     float64
	Retake     bool
	Counted    bool
}

// TrendPoint is one semester in the academic trend series: the semester's
// own GPA plus the running retake-aware CGPA through that semester.
type TrendPoint struct {
	Semester string
	GPA      float64
	CGPA     float64
}

type SemesterService interface {
	Create(ctx context.Context, userID, name string) (*domain.Semester, error)
	List(ctx context.Context, userID string) ([]SemesterView, error)
	Delete(ctx context.Context, userID, ref string) error
}

type EnrollmentService interface {
	Create(ctx context.Context, userID string, in CourseInput) (*domain.Enrollment, error)
	List(ctx context.Context, userID, semesterRef string) ([]CourseView, error)
	Delete(ctx context.Context, userID, id string) error
}

type ComputeService interface {
	SemesterGPA(ctx context.Context, userID, semesterRef string) (float64, error)
	CGPA(ctx context.Context, userID string) (float64, error)
	Trend(ctx context.Context, userID string) ([]TrendPoint, error)
}

type PreferencesService interface {
	Get(ctx context.Context, userID string) (*domain.RoutinePreferences, error)
	SetTimezone(ctx context.Context, userID, tz string) error
	SetMaxDailyHours(ctx context.Context, userID string, hours float64) error

	AddRoutineEntry(ctx context.Context, userID, day, start, end, course string) (*domain.RoutineEntry, error)
	RemoveRoutineEntry(ctx context.Context, userID, id string) error

	AddStudyWindow(ctx context.Context, userID, daySelector, start, end string) (*domain.StudyWindow, error)
	RemoveStudyWindow(ctx context.Context, userID, id string) error

	SetDifficulty(ctx context.Context, userID, course, tier string) error

	AddDeadline(ctx context.Context, userID, kind, course, title string, dueAt time.Time) (*domain.Deadline, error)
	ListDeadlines(ctx context.Context, userID string) ([]*domain.Deadline, error)
	RemoveDeadline(ctx context.Context, userID, id string) error
}

// PlanStore persists the most recent plan for a user. The chat thread store
// implements it so the assistant and the plan command share one cache.
type PlanStore interface {
	RecordPlan(ctx context.Context, userID string, plan scheduler.Plan) error
	LastPlan(ctx context.Context, userID string) (*scheduler.Plan, error)
}

type PlannerService interface {
	BuildPlan(ctx context.Context, userID string, now time.Time, horizonDays int) (scheduler.Plan, error)
	LastPlan(ctx context.Context, userID string) (*scheduler.Plan, error)
}

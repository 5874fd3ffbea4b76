package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/asifrahman/gradus/internal/domain"
)

// TestUser is the user id fixtures default to.
const TestUser = "student"

// Semester options
type SemesterOption func(*domain.Semester)

func WithSemesterUser(userID string) SemesterOption {
	return func(s *domain.Semester) {
		s.UserID = userID
	}
}

func WithSemesterCreatedAt(t time.Time) SemesterOption {
	return func(s *domain.Semester) {
		s.CreatedAt = t
	}
}

func NewTestSemester(name string, opts ...SemesterOption) *domain.Semester {
	s := &domain.Semester{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enrollment options
type EnrollmentOption func(*domain.Enrollment)

func WithEnrollmentUser(userID string) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.UserID = userID
	}
}

func WithCredits(c float64) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.Credits = c
	}
}

func WithLetter(letter string) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.Letter = letter
	}
}

func WithRetake() EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.IsRetake = true
	}
}

func WithEnrollmentCreatedAt(t time.Time) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.CreatedAt = t
	}
}

func WithTitle(title string) EnrollmentOption {
	return func(e *domain.Enrollment) {
		e.Title = title
	}
}

func NewTestEnrollment(semesterID, code string, opts ...EnrollmentOption) *domain.Enrollment {
	e := &domain.Enrollment{
		ID:         uuid.New().String(),
		UserID:     TestUser,
		SemesterID: semesterID,
		Code:       domain.CanonicalCode(code),
		Credits:    3,
		Letter:     "A",
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RoutineEntry options
type RoutineOption func(*domain.RoutineEntry)

func WithRoutineUser(userID string) RoutineOption {
	return func(e *domain.RoutineEntry) {
		e.UserID = userID
	}
}

func NewTestRoutineEntry(day domain.Weekday, start, end, course string, opts ...RoutineOption) *domain.RoutineEntry {
	e := &domain.RoutineEntry{
		ID:     uuid.New().String(),
		UserID: TestUser,
		Day:    day,
		Start:  start,
		End:    end,
		Course: domain.CanonicalCode(course),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Deadline options
type DeadlineOption func(*domain.Deadline)

func WithDeadlineUser(userID string) DeadlineOption {
	return func(d *domain.Deadline) {
		d.UserID = userID
	}
}

func WithDeadlineTitle(title string) DeadlineOption {
	return func(d *domain.Deadline) {
		d.Title = title
	}
}

func NewTestDeadline(kind domain.DeadlineKind, course string, dueAt time.Time, opts ...DeadlineOption) *domain.Deadline {
	d := &domain.Deadline{
		ID:     uuid.New().String(),
		UserID: TestUser,
		Kind:   kind,
		Course: domain.CanonicalCode(course),
		DueAt:  dueAt,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

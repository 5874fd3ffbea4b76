package domain

import "time"

// Deadline is an upcoming dated obligation for a course. No uniqueness is
// enforced; students may record several deadlines per course.
type Deadline struct {
	ID     string
	UserID string
	Kind   DeadlineKind
	Course string
	Title  string
	DueAt  time.Time
}

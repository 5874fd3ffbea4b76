package service

import "fmt"

// ValidationError reports malformed caller input (bad course code, credits
// outside bounds, unknown grade letter, inverted time interval).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "VALIDATION: " + e.Message
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError reports a uniqueness conflict, such as a semester name
// already in use or a course code already present in the target semester.
type DuplicateError struct {
	Entity string
	Name   string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("DUPLICATE: %s %q already exists", e.Entity, e.Name)
}

// CapacityError reports that a semester already holds the maximum number
// of courses.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("CAPACITY: semester already has %d courses", e.Limit)
}

// RetakeConfirmationError is returned when a course was attempted in an
// earlier semester and the new enrollment did not carry the retake flag.
// Callers confirm with the user and resubmit with IsRetake set.
type RetakeConfirmationError struct {
	Code string
}

func (e *RetakeConfirmationError) Error() string {
	return fmt.Sprintf("RETAKE_CONFIRMATION: %s was attempted in an earlier semester; confirm retake to proceed", e.Code)
}

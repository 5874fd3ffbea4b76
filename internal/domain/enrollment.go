package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var courseCodePattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{2,4}$`)

// Enrollment is one attempt at one course within one semester. Enrollments
// are immutable once created; CreatedAt is the attempt ordering key used by
// the retake-aware CGPA grouping.
type Enrollment struct {
	ID         string
	UserID     string
	SemesterID string
	Code       string
	Title      string
	Credits    float64
	Letter     string
	IsRetake   bool
	CreatedAt  time.Time
}

// CanonicalCode trims and uppercases a course code. All duplicate and
// retake checks compare canonical codes.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode checks the canonical course code shape: 2-6 letters followed
// by 2-4 digits (e.g. CSE111, PHY0234).
func ValidateCode(code string) error {
	c := CanonicalCode(code)
	if len(c) < 2 || len(c) > 20 {
		return fmt.Errorf("course code must be 2-20 characters")
	}
	if !courseCodePattern.MatchString(c) {
		return fmt.Errorf("course code %q must be 2-6 letters followed by 2-4 digits (e.g. CSE111)", c)
	}
	return nil
}

// ValidateCredits checks the accepted credit weight range.
func ValidateCredits(credits float64) error {
	if credits < 0.5 || credits > 10 {
		return fmt.Errorf("credits must be between 0.5 and 10, got %g", credits)
	}
	return nil
}

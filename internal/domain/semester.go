package domain

import (
	"fmt"
	"strings"
	"time"
)

// Semester is a named grouping of enrollments for one user. Total credits
// and GPA are derived on read, never stored.
type Semester struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// ValidateName checks the semester name length bounds.
func (s *Semester) ValidateName() error {
	name := strings.TrimSpace(s.Name)
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("semester name must be 2-100 characters")
	}
	return nil
}

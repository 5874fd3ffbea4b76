package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/repository"
)

// resolveSemester finds a semester by id first, then by case-insensitive
// name. CLI callers pass whichever they have.
func resolveSemester(ctx context.Context, semesters repository.SemesterRepo, userID, ref string) (*domain.Semester, error) {
	sem, err := semesters.GetByID(ctx, userID, ref)
	if err == nil {
		return sem, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	sem, err = semesters.GetByName(ctx, userID, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("semester %q: %w", ref, repository.ErrNotFound)
		}
		return nil, err
	}
	return sem, nil
}

func derefEnrollments(list []*domain.Enrollment) []domain.Enrollment {
	out := make([]domain.Enrollment, 0, len(list))
	for _, e := range list {
		out = append(out, *e)
	}
	return out
}

func derefDeadlines(list []*domain.Deadline) []domain.Deadline {
	out := make([]domain.Deadline, 0, len(list))
	for _, d := range list {
		out = append(out, *d)
	}
	return out
}

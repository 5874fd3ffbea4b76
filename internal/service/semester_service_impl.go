package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asifrahman/gradus/internal/db"
	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/grades"
	"github.com/asifrahman/gradus/internal/repository"
)

type semesterService struct {
	semesters   repository.SemesterRepo
	enrollments repository.EnrollmentRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewSemesterService(
	semesters repository.SemesterRepo,
	enrollments repository.EnrollmentRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SemesterService {
	return &semesterService{
		semesters:   semesters,
		enrollments: enrollments,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *semesterService) Create(ctx context.Context, userID, name string) (sem *domain.Semester, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "semester-create",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"name": name},
		})
	}()

	sem = &domain.Semester{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	if vErr := sem.ValidateName(); vErr != nil {
		return nil, &ValidationError{Message: vErr.Error()}
	}

	// Pre-check gives a typed error; the UNIQUE index still backstops races.
	_, getErr := s.semesters.GetByName(ctx, userID, sem.Name)
	if getErr == nil {
		return nil, &DuplicateError{Entity: "semester", Name: sem.Name}
	}
	if !errors.Is(getErr, repository.ErrNotFound) {
		return nil, getErr
	}

	if err = s.semesters.Create(ctx, sem); err != nil {
		return nil, err
	}
	return sem, nil
}

func (s *semesterService) List(ctx context.Context, userID string) ([]SemesterView, error) {
	list, err := s.semesters.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]SemesterView, 0, len(list))
	for _, sem := range list {
		enrollments, err := s.enrollments.ListBySemester(ctx, userID, sem.ID)
		if err != nil {
			return nil, err
		}
		view := SemesterView{Semester: *sem, CourseCount: len(enrollments)}
		for _, e := range enrollments {
			view.TotalCredits += e.Credits
		}
		view.GPA = grades.ComputeGPA(grades.RowsOf(derefEnrollments(enrollments)))
		views = append(views, view)
	}
	return views, nil
}

// Delete removes a semester and its enrollments in one transaction.
func (s *semesterService) Delete(ctx context.Context, userID, ref string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "semester-delete",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"ref": ref},
		})
	}()

	sem, err := resolveSemester(ctx, s.semesters, userID, ref)
	if err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		return txSemesters.Delete(ctx, userID, sem.ID)
	})
}

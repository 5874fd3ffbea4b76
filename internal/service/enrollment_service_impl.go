package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/grades"
	"github.com/asifrahman/gradus/internal/repository"
)

// maxCoursesPerSemester caps how many courses one semester may hold.
const maxCoursesPerSemester = 5

type enrollmentService struct {
	semesters   repository.SemesterRepo
	enrollments repository.EnrollmentRepo
	observer    UseCaseObserver
}

func NewEnrollmentService(
	semesters repository.SemesterRepo,
	enrollments repository.EnrollmentRepo,
	observers ...UseCaseObserver,
) EnrollmentService {
	return &enrollmentService{
		semesters:   semesters,
		enrollments: enrollments,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Create enrolls a course. Checks run in a fixed order: input validation,
// semester resolution, capacity, duplicate-in-semester, retake
// confirmation. The duplicate check fires regardless of the retake flag;
// a retake goes into a different semester, never the same one twice.
func (s *enrollmentService) Create(ctx context.Context, userID string, in CourseInput) (enr *domain.Enrollment, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "course-add",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"code": domain.CanonicalCode(in.Code), "semester": in.Semester},
		})
	}()

	code := domain.CanonicalCode(in.Code)
	if vErr := domain.ValidateCode(code); vErr != nil {
		return nil, &ValidationError{Message: vErr.Error()}
	}
	if vErr := domain.ValidateCredits(in.Credits); vErr != nil {
		return nil, &ValidationError{Message: vErr.Error()}
	}
	if !grades.IsLetter(in.Letter) {
		return nil, validationf("unknown grade letter %q", in.Letter)
	}

	sem, err := resolveSemester(ctx, s.semesters, userID, in.Semester)
	if err != nil {
		return nil, err
	}

	count, err := s.enrollments.CountBySemester(ctx, userID, sem.ID)
	if err != nil {
		return nil, err
	}
	if count >= maxCoursesPerSemester {
		return nil, &CapacityError{Limit: maxCoursesPerSemester}
	}

	inSemester, err := s.enrollments.ExistsInSemester(ctx, userID, sem.ID, code)
	if err != nil {
		return nil, err
	}
	if inSemester {
		return nil, &DuplicateError{Entity: "course", Name: code}
	}

	elsewhere, err := s.enrollments.ExistsElsewhere(ctx, userID, sem.ID, code)
	if err != nil {
		return nil, err
	}
	if elsewhere && !in.IsRetake {
		return nil, &RetakeConfirmationError{Code: code}
	}

	enr = &domain.Enrollment{
		ID:         uuid.New().String(),
		UserID:     userID,
		SemesterID: sem.ID,
		Code:       code,
		Title:      in.Title,
		Credits:    in.Credits,
		Letter:     in.Letter,
		IsRetake:   elsewhere && in.IsRetake,
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.enrollments.Create(ctx, enr); err != nil {
		return nil, err
	}
	return enr, nil
}

// List returns enrollments with display annotations. An empty semesterRef
// lists every enrollment for the user; annotations are always computed
// against the user's full history so retakes in other semesters show up.
func (s *enrollmentService) List(ctx context.Context, userID, semesterRef string) ([]CourseView, error) {
	all, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history := derefEnrollments(all)
	counted := grades.IsLatestAttempt(history)

	scope := all
	if semesterRef != "" {
		sem, err := resolveSemester(ctx, s.semesters, userID, semesterRef)
		if err != nil {
			return nil, err
		}
		scope, err = s.enrollments.ListBySemester(ctx, userID, sem.ID)
		if err != nil {
			return nil, err
		}
	}

	views := make([]CourseView, 0, len(scope))
	for _, e := range scope {
		points, _ := grades.PointsOf(e.Letter)
		views = append(views, CourseView{
			Enrollment: *e,
			Points:     points,
			Retake:     e.IsRetake,
			Counted:    counted[e.ID],
		})
	}
	return views, nil
}

func (s *enrollmentService) Delete(ctx context.Context, userID, id string) error {
	return s.enrollments.Delete(ctx, userID, id)
}

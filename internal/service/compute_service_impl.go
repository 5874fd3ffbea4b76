package service

import (
	"context"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/grades"
	"github.com/asifrahman/gradus/internal/repository"
)

type computeService struct {
	semesters   repository.SemesterRepo
	enrollments repository.EnrollmentRepo
}

func NewComputeService(
	semesters repository.SemesterRepo,
	enrollments repository.EnrollmentRepo,
) ComputeService {
	return &computeService{semesters: semesters, enrollments: enrollments}
}

func (s *computeService) SemesterGPA(ctx context.Context, userID, semesterRef string) (float64, error) {
	sem, err := resolveSemester(ctx, s.semesters, userID, semesterRef)
	if err != nil {
		return 0, err
	}
	list, err := s.enrollments.ListBySemester(ctx, userID, sem.ID)
	if err != nil {
		return 0, err
	}
	return grades.ComputeGPA(grades.RowsOf(derefEnrollments(list))), nil
}

func (s *computeService) CGPA(ctx context.Context, userID string) (float64, error) {
	all, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return grades.CGPA(derefEnrollments(all)), nil
}

// Trend walks semesters in creation order and reports each semester's GPA
// alongside the running retake-aware CGPA through that semester.
func (s *computeService) Trend(ctx context.Context, userID string) ([]TrendPoint, error) {
	semesters, err := s.semesters.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(semesters))
	var history []domain.Enrollment
	for _, sem := range semesters {
		list, err := s.enrollments.ListBySemester(ctx, userID, sem.ID)
		if err != nil {
			return nil, err
		}
		own := derefEnrollments(list)
		history = append(history, own...)
		points = append(points, TrendPoint{
			Semester: sem.Name,
			GPA:      grades.ComputeGPA(grades.RowsOf(own)),
			CGPA:     grades.CGPA(history),
		})
	}
	return points, nil
}

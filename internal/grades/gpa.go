package grades

import (
	"sort"

	"github.com/asifrahman/gradus/internal/domain"
)

// CourseRow is the minimal input the GPA engine needs: a letter grade and
// its credit weight.
type CourseRow struct {
	Letter  string
	Credits float64
}

// ComputeGPA returns the credit-weighted grade-point average over rows.
// Rows whose letter has no point value or whose credits are <= 0 are
// excluded from both numerator and denominator. An empty denominator
// yields 0. The result is full precision; callers round for display.
func ComputeGPA(rows []CourseRow) float64 {
	var num, den float64
	for _, r := range rows {
		p, ok := PointsOf(r.Letter)
		if !ok || r.Credits <= 0 {
			continue
		}
		num += p * r.Credits
		den += r.Credits
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// RowsOf projects enrollments onto GPA engine rows.
func RowsOf(enrollments []domain.Enrollment) []CourseRow {
	rows := make([]CourseRow, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, CourseRow{Letter: e.Letter, Credits: e.Credits})
	}
	return rows
}

// LatestAttempts reduces a user's enrollments to exactly one per distinct
// canonical course code: the attempt with the most recent CreatedAt.
// Creation-timestamp ties are broken by enrollment ID descending so the
// result is deterministic. Output order follows first encounter of each
// code in the input.
func LatestAttempts(enrollments []domain.Enrollment) []domain.Enrollment {
	latest := make(map[string]domain.Enrollment)
	var order []string
	for _, e := range enrollments {
		code := domain.CanonicalCode(e.Code)
		cur, seen := latest[code]
		if !seen {
			latest[code] = e
			order = append(order, code)
			continue
		}
		if e.CreatedAt.After(cur.CreatedAt) ||
			(e.CreatedAt.Equal(cur.CreatedAt) && e.ID > cur.ID) {
			latest[code] = e
		}
	}
	out := make([]domain.Enrollment, 0, len(order))
	for _, code := range order {
		out = append(out, latest[code])
	}
	return out
}

// CGPA computes the retake-aware cumulative GPA: latest attempt per course
// code, credit-weighted.
func CGPA(enrollments []domain.Enrollment) float64 {
	return ComputeGPA(RowsOf(LatestAttempts(enrollments)))
}

// IsLatestAttempt reports, for each enrollment in the input, whether it is
// the counted attempt for its course code. Keys are enrollment IDs.
// Enrollments that are not the latest attempt are displayed annotated
// "not counted" so students understand why CGPA excludes them.
func IsLatestAttempt(enrollments []domain.Enrollment) map[string]bool {
	counted := make(map[string]bool, len(enrollments))
	for _, e := range LatestAttempts(enrollments) {
		counted[e.ID] = true
	}
	out := make(map[string]bool, len(enrollments))
	for _, e := range enrollments {
		out[e.ID] = counted[e.ID]
	}
	return out
}

// SortByCreation orders enrollments by creation time ascending, ID as the
// secondary key. Sorting is stable with respect to the derived ordering so
// repeated calls agree.
func SortByCreation(enrollments []domain.Enrollment) {
	sort.SliceStable(enrollments, func(i, j int) bool {
		a, b := enrollments[i], enrollments[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

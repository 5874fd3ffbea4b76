package formatter

import (
	"fmt"
	"strings"

	"github.com/asifrahman/gradus/internal/service"
)

// FormatSemesterList renders the semester table with derived totals.
func FormatSemesterList(semesters []service.SemesterView) string {
	headers := []string{"SEMESTER", "COURSES", "CREDITS", "GPA"}
	rows := make([][]string, 0, len(semesters))

	for _, s := range semesters {
		gpa := Dim("--")
		if s.CourseCount > 0 {
			gpa = GPAValue(s.GPA)
		}
		rows = append(rows, []string{
			Bold(s.Semester.Name),
			fmt.Sprintf("%d", s.CourseCount),
			fmt.Sprintf("%.1f", s.TotalCredits),
			gpa,
		})
	}

	return RenderBox("Semesters", RenderTable(headers, rows))
}

// FormatCourseList renders enrollments with their retake annotations.
// Attempts superseded by a retake are dimmed and marked "not counted".
func FormatCourseList(title string, courses []service.CourseView) string {
	headers := []string{"ID", "CODE", "TITLE", "CREDITS", "GRADE", "POINTS", "NOTES"}
	rows := make([][]string, 0, len(courses))

	for _, c := range courses {
		var notes []string
		if c.Retake {
			notes = append(notes, "retake")
		}
		if !c.Counted {
			notes = append(notes, "not counted")
		}

		code := Bold(c.Enrollment.Code)
		points := fmt.Sprintf("%.2f", c.Points)
		if !c.Counted {
			code = Dim(c.Enrollment.Code)
			points = Dim(points)
		}

		rows = append(rows, []string{
			Dim(TruncID(c.Enrollment.ID)),
			code,
			c.Enrollment.Title,
			fmt.Sprintf("%.1f", c.Enrollment.Credits),
			c.Enrollment.Letter,
			points,
			Dim(strings.Join(notes, ", ")),
		})
	}

	return RenderBox(title, RenderTable(headers, rows))
}

// FormatTrend renders the per-semester GPA series next to the running CGPA.
func FormatTrend(points []service.TrendPoint) string {
	headers := []string{"SEMESTER", "GPA", "CGPA"}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			Bold(p.Semester),
			GPAValue(p.GPA),
			GPAValue(p.CGPA),
		})
	}
	return RenderBox("Academic trend", RenderTable(headers, rows))
}

package formatter

import (
	"fmt"
	"sort"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/scheduler"
)

// EmptyPlanGuidance is shown when the scheduler produced no sessions.
const EmptyPlanGuidance = "No sessions could be scheduled based on your routine. " +
	"Try widening your preferred hours or increasing max hours/day."

// FormatPlan renders the study plan grouped by day.
func FormatPlan(plan scheduler.Plan) string {
	if len(plan.Sessions) == 0 {
		return Dim(EmptyPlanGuidance)
	}

	headers := []string{"DAY", "TIME", "SESSION"}
	rows := make([][]string, 0, len(plan.Sessions))
	lastDay := ""
	for _, s := range plan.Sessions {
		// Session times are local wall-clock values. The preferences
		// timezone labels the plan, it never shifts the hours.
		day := s.Start.Format("Mon Jan 2")
		label := day
		if day == lastDay {
			label = ""
		}
		lastDay = day

		rows = append(rows, []string{
			Bold(label),
			fmt.Sprintf("%s - %s", s.Start.Format("15:04"), s.End.Format("15:04")),
			s.Title,
		})
	}

	title := "Study plan"
	if plan.Timezone != "" {
		title += " (" + plan.Timezone + ")"
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatSessionLinks renders one Google Calendar link per session.
func FormatSessionLinks(sessions []domain.StudySession, links []string) string {
	var rows [][]string
	for i, s := range sessions {
		if i >= len(links) {
			break
		}
		rows = append(rows, []string{Bold(s.Title), Dim(links[i])})
	}
	return RenderTable([]string{"SESSION", "LINK"}, rows)
}

// FormatDeadlines renders upcoming deadlines with urgency coloring.
func FormatDeadlines(deadlines []*domain.Deadline) string {
	headers := []string{"ID", "KIND", "COURSE", "TITLE", "DUE"}
	rows := make([][]string, 0, len(deadlines))
	for _, d := range deadlines {
		rows = append(rows, []string{
			Dim(TruncID(d.ID)),
			string(d.Kind),
			Bold(d.Course),
			d.Title,
			RelativeDateStyled(d.DueAt),
		})
	}
	return RenderBox("Deadlines", RenderTable(headers, rows))
}

// FormatRoutine renders the weekly class routine.
func FormatRoutine(entries []domain.RoutineEntry) string {
	headers := []string{"ID", "DAY", "TIME", "COURSE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(TruncID(e.ID)),
			string(e.Day),
			fmt.Sprintf("%s - %s", e.Start, e.End),
			Bold(e.Course),
		})
	}
	return RenderBox("Class routine", RenderTable(headers, rows))
}

// FormatStudyWindows renders the preferred study windows.
func FormatStudyWindows(windows []domain.StudyWindow) string {
	headers := []string{"ID", "DAYS", "TIME"}
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, []string{
			Dim(TruncID(w.ID)),
			Bold(w.DaySelector),
			fmt.Sprintf("%s - %s", w.Start, w.End),
		})
	}
	return RenderBox("Study windows", RenderTable(headers, rows))
}

// FormatDifficulty renders the per-course difficulty ratings.
func FormatDifficulty(ratings map[string]domain.Difficulty) string {
	courses := make([]string, 0, len(ratings))
	for course := range ratings {
		courses = append(courses, course)
	}
	sort.Strings(courses)

	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, []string{Bold(course), string(ratings[course])})
	}
	return RenderBox("Course difficulty", RenderTable([]string{"COURSE", "TIER"}, rows))
}

// FormatPreferences renders the planner configuration summary.
func FormatPreferences(prefs *domain.RoutinePreferences) string {
	tz := prefs.Timezone
	if tz == "" {
		tz = "UTC"
	}

	var b []byte
	b = fmt.Appendf(b, "%s %s\n", Bold("Timezone:"), tz)
	b = fmt.Appendf(b, "%s %.1fh\n", Bold("Max daily study:"), prefs.MaxDailyHours)
	b = fmt.Appendf(b, "%s %d\n", Bold("Routine entries:"), len(prefs.Routine))
	b = fmt.Appendf(b, "%s %d\n", Bold("Study windows:"), len(prefs.StudyWindows))

	if len(prefs.Difficulty) > 0 {
		courses := make([]string, 0, len(prefs.Difficulty))
		for course := range prefs.Difficulty {
			courses = append(courses, course)
		}
		sort.Strings(courses)

		b = fmt.Appendf(b, "%s\n", Bold("Difficulty:"))
		for _, course := range courses {
			b = fmt.Appendf(b, "  %s %s\n", course, Dim(string(prefs.Difficulty[course])))
		}
	}

	return RenderBox("Planner preferences", string(b))
}

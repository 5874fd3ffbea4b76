package scheduler

import (
	"fmt"
	"time"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/routine"
)

const (
	// MaxBlockMin caps a single study block; long windows are carved into
	// blocks of at most 90 minutes.
	MaxBlockMin = 90

	// MinBlockMin is the shortest block worth placing.
	MinBlockMin = 30

	// DefaultDailyHours applies when preferences carry no daily budget.
	DefaultDailyHours = 2

	// DefaultHorizonDays is the standard planning horizon.
	DefaultHorizonDays = 7
)

// Plan is the output of one scheduling run. Timezone is the preferences'
// zone identifier, carried for display only; all session arithmetic is
// local wall-clock.
type Plan struct {
	Timezone string
	Sessions []domain.StudySession
}

// BuildSessions greedily allocates dated study blocks across the planning
// horizon [now, now+horizonDays). Per day: compute free windows from the
// class routine, rank the routine courses, then carve blocks from the
// windows in order, assigning courses round-robin over the ranked list
// until the daily minute budget is spent or the windows run out.
//
// The allocator is single-pass and deterministic for a fixed now: no
// backtracking, no cross-day rebalancing. An empty session list is a
// valid outcome, not an error.
func BuildSessions(prefs domain.RoutinePreferences, deadlines []domain.Deadline, now time.Time, horizonDays int) Plan {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	budgetHours := prefs.MaxDailyHours
	if budgetHours == 0 {
		budgetHours = DefaultDailyHours
	}
	if budgetHours < 1 {
		budgetHours = 1
	}
	dailyBudget := int(budgetHours * 60)

	plan := Plan{Timezone: prefs.Timezone}
	for offset := 0; offset < horizonDays; offset++ {
		date := now.AddDate(0, 0, offset)
		plan.Sessions = append(plan.Sessions, buildDay(prefs, deadlines, date, dailyBudget)...)
	}
	return plan
}

func buildDay(prefs domain.RoutinePreferences, deadlines []domain.Deadline, date time.Time, dailyBudget int) []domain.StudySession {
	day := domain.WeekdayOf(int(date.Weekday()))
	free := routine.FreeWindowsForDay(prefs, day)
	if len(free) == 0 {
		return nil
	}

	order := RankCourses(prefs, deadlines, date)
	if len(order) == 0 {
		return nil
	}

	var sessions []domain.StudySession
	remaining := dailyBudget
	fi, ci := 0, 0
	for remaining > 0 && fi < len(free) {
		slot := free[fi]
		block := min(remaining, min(MaxBlockMin, slot.Len()))
		if block < MinBlockMin {
			fi++
			continue
		}

		course := order[ci%len(order)]
		sessions = append(sessions, sessionAt(date, slot.Start, slot.Start+block, course))

		free[fi].Start = slot.Start + block
		if free[fi].Len() < MinBlockMin {
			fi++
		}
		remaining -= block
		ci++
	}
	return sessions
}

func sessionAt(date time.Time, startMin, endMin int, course string) domain.StudySession {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return domain.StudySession{
		Title:       "Study: " + course,
		Start:       midnight.Add(time.Duration(startMin) * time.Minute),
		End:         midnight.Add(time.Duration(endMin) * time.Minute),
		Description: fmt.Sprintf("Focused block for %s. Pomodoro 25×3 + recap.", course),
	}
}

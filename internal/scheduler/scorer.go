package scheduler

import (
	"sort"
	"time"

	"github.com/asifrahman/gradus/internal/domain"
)

// deadlineBoostDays is the lookahead for deadline pressure: a deadline
// falling within this many days of the reference date (inclusive) boosts
// its course's priority.
const deadlineBoostDays = 3

// deadlineBoost is the score added when a course has an imminent deadline.
const deadlineBoost = 0.7

// ScoredCourse is one routine course with its priority score for a
// specific planning day.
type ScoredCourse struct {
	Course string
	Score  float64
}

// DifficultyWeight maps a difficulty tier to its base priority weight.
// Unset courses default to medium.
func DifficultyWeight(d domain.Difficulty) float64 {
	switch d {
	case domain.DifficultyHard:
		return 1.5
	case domain.DifficultyEasy:
		return 0.75
	default:
		return 1.0
	}
}

// RankCourses orders the distinct routine courses by planning priority for
// one reference date: difficulty weight plus a deadline boost when any
// deadline for the course lands within the next three days of refDate.
// Sorting is descending by score and stable, so tied courses keep their
// routine encounter order.
func RankCourses(prefs domain.RoutinePreferences, deadlines []domain.Deadline, refDate time.Time) []string {
	seen := make(map[string]bool)
	var scored []ScoredCourse
	for _, r := range prefs.Routine {
		if r.Course == "" || seen[r.Course] {
			continue
		}
		seen[r.Course] = true
		scored = append(scored, ScoredCourse{
			Course: r.Course,
			Score:  scoreCourse(r.Course, prefs, deadlines, refDate),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Course
	}
	return out
}

func scoreCourse(course string, prefs domain.RoutinePreferences, deadlines []domain.Deadline, refDate time.Time) float64 {
	tier := domain.DifficultyMedium
	if prefs.Difficulty != nil {
		if d, ok := prefs.Difficulty[course]; ok {
			tier = d
		}
	}
	score := DifficultyWeight(tier)
	if deadlineSoon(course, deadlines, refDate) {
		score += deadlineBoost
	}
	return score
}

func deadlineSoon(course string, deadlines []domain.Deadline, refDate time.Time) bool {
	for _, d := range deadlines {
		if d.Course != course {
			continue
		}
		days := d.DueAt.Sub(refDate).Hours() / 24
		if days >= 0 && days <= deadlineBoostDays {
			return true
		}
	}
	return false
}

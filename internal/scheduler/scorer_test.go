package scheduler

import (
	"testing"
	"time"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/stretchr/testify/assert"
)

func routineFor(courses ...string) domain.RoutinePreferences {
	prefs := domain.RoutinePreferences{Difficulty: map[string]domain.Difficulty{}}
	for _, c := range courses {
		prefs.Routine = append(prefs.Routine, domain.RoutineEntry{
			Day: domain.Monday, Start: "09:00", End: "10:00", Course: c,
		})
	}
	return prefs
}

func TestDifficultyWeight(t *testing.T) {
	assert.Equal(t, 1.5, DifficultyWeight(domain.DifficultyHard))
	assert.Equal(t, 1.0, DifficultyWeight(domain.DifficultyMedium))
	assert.Equal(t, 0.75, DifficultyWeight(domain.DifficultyEasy))
	assert.Equal(t, 1.0, DifficultyWeight(domain.Difficulty("")), "unset tier defaults to medium")
}

func TestRankCourses_HarderFirst(t *testing.T) {
	prefs := routineFor("ENG101", "CSE111", "MAT110")
	prefs.Difficulty["CSE111"] = domain.DifficultyHard
	prefs.Difficulty["ENG101"] = domain.DifficultyEasy

	order := RankCourses(prefs, nil, time.Now())
	assert.Equal(t, []string{"CSE111", "MAT110", "ENG101"}, order)
}

func TestRankCourses_TiesKeepEncounterOrder(t *testing.T) {
	prefs := routineFor("PHY111", "CSE111", "MAT110")

	order := RankCourses(prefs, nil, time.Now())
	assert.Equal(t, []string{"PHY111", "CSE111", "MAT110"}, order)
}

func TestRankCourses_DeadlineWithinThreeDaysBoosts(t *testing.T) {
	ref := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) // Monday
	prefs := routineFor("CSE111", "MAT110")
	deadlines := []domain.Deadline{
		{Kind: domain.DeadlineQuiz, Course: "MAT110", DueAt: ref.AddDate(0, 0, 2)},
	}

	order := RankCourses(prefs, deadlines, ref)
	assert.Equal(t, []string{"MAT110", "CSE111"}, order)
}

func TestRankCourses_PastAndFarDeadlinesDoNotBoost(t *testing.T) {
	ref := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	prefs := routineFor("CSE111", "MAT110")
	deadlines := []domain.Deadline{
		{Course: "MAT110", DueAt: ref.AddDate(0, 0, -1)}, // already past
		{Course: "MAT110", DueAt: ref.AddDate(0, 0, 10)}, // beyond lookahead
	}

	order := RankCourses(prefs, deadlines, ref)
	assert.Equal(t, []string{"CSE111", "MAT110"}, order, "no boost applies, encounter order holds")
}

func TestRankCourses_DuplicateRoutineEntriesCollapse(t *testing.T) {
	prefs := routineFor("CSE111", "CSE111", "MAT110")
	order := RankCourses(prefs, nil, time.Now())
	assert.Equal(t, []string{"CSE111", "MAT110"}, order)
}

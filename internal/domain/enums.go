package domain

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty tier strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

type DeadlineKind string

const (
	DeadlineAssignment DeadlineKind = "assignment"
	DeadlineQuiz       DeadlineKind = "quiz"
	DeadlineViva       DeadlineKind = "viva"
	DeadlineExam       DeadlineKind = "exam"
)

// ValidDeadlineKinds is the canonical set of accepted deadline type strings.
var ValidDeadlineKinds = map[string]bool{
	"assignment": true, "quiz": true, "viva": true, "exam": true,
}

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Weekdays lists the seven weekdays in routine display order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf maps a time.Weekday index (0=Sunday) to the routine weekday label.
func WeekdayOf(goWeekday int) Weekday {
	switch goWeekday {
	case 0:
		return Sunday
	case 1:
		return Monday
	case 2:
		return Tuesday
	case 3:
		return Wednesday
	case 4:
		return Thursday
	case 5:
		return Friday
	default:
		return Saturday
	}
}

// ParseWeekday resolves a weekday label case-insensitively from its
// three-letter form. The second result is false for unknown labels.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RoutineEntry is one weekly class slot: the student is busy on Day
// between Start and End (local wall-clock "HH:MM").
type RoutineEntry struct {
	ID     string
	UserID string
	Day    Weekday
	Start  string
	End    string
	Course string
}

// StudyWindow is a preferred weekly study interval. The day selector may
// name a single weekday ("Mon") or a range ("Mon-Fri"). Windows are stored
// as configuration; the free-time calculation does not currently consume
// them (it always starts from the fixed default day).
type StudyWindow struct {
	ID          string
	UserID      string
	DaySelector string
	Start       string
	End         string
}

// RoutinePreferences is the per-user planner configuration consumed by the
// session scheduler.
type RoutinePreferences struct {
	UserID        string
	Timezone      string
	MaxDailyHours float64
	StudyWindows  []StudyWindow
	Routine       []RoutineEntry
	Difficulty    map[string]Difficulty
}

// ParseClock parses a local wall-clock "HH:MM" value into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// ValidateInterval checks that start and end parse and that the interval
// is not inverted.
func ValidateInterval(start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	e, err := ParseClock(end)
	if err != nil {
		return err
	}
	if s >= e {
		return fmt.Errorf("interval %s-%s is inverted", start, end)
	}
	return nil
}

package routine

import (
	"github.com/asifrahman/gradus/internal/domain"
)

// Window is a contiguous local time-of-day interval in minutes since
// midnight, half-open in spirit: Start inclusive, End exclusive.
type Window struct {
	Start int
	End   int
}

// Len returns the window length in minutes.
func (w Window) Len() int {
	return w.End - w.Start
}

const (
	// DayStartMin and DayEndMin bound the default availability interval
	// (08:00-22:00) that every day starts from.
	DayStartMin = 8 * 60
	DayEndMin   = 22 * 60

	// MinUsableMin is the shortest window worth keeping; fragments under
	// 30 minutes are discarded as unusable.
	MinUsableMin = 30
)

func overlaps(a, b Window) bool {
	return max(a.Start, b.Start) < min(a.End, b.End)
}

// SubtractBusy removes every busy interval from the free list by interval
// splitting: an overlapped free window is replaced with up to two
// sub-windows, the part before the busy start and the part after the busy
// end. Fragments shorter than MinUsableMin are dropped.
func SubtractBusy(free, busy []Window) []Window {
	slots := make([]Window, len(free))
	copy(slots, free)

	for _, b := range busy {
		var next []Window
		for _, s := range slots {
			if !overlaps(s, b) {
				next = append(next, s)
				continue
			}
			if b.Start > s.Start {
				next = append(next, Window{Start: s.Start, End: b.Start})
			}
			if b.End < s.End {
				next = append(next, Window{Start: b.End, End: s.End})
			}
		}
		slots = next
	}

	usable := slots[:0]
	for _, s := range slots {
		if s.Len() >= MinUsableMin {
			usable = append(usable, s)
		}
	}
	return usable
}

// FreeWindowsForDay computes the free study windows for one weekday:
// the default 08:00-22:00 availability minus that day's class-routine
// entries. Study-window preferences are deliberately not consulted here;
// the planner's free-time source is the default day minus routine only.
// Output is ascending by start with no overlaps and no degenerate windows.
func FreeWindowsForDay(prefs domain.RoutinePreferences, day domain.Weekday) []Window {
	free := []Window{{Start: DayStartMin, End: DayEndMin}}

	var busy []Window
	for _, r := range prefs.Routine {
		if r.Day != day {
			continue
		}
		start, err := domain.ParseClock(r.Start)
		if err != nil {
			continue
		}
		end, err := domain.ParseClock(r.End)
		if err != nil || end <= start {
			continue
		}
		busy = append(busy, Window{Start: start, End: end})
	}

	return SubtractBusy(free, busy)
}

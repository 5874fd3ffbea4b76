package calendar

import (
	"fmt"
	"strings"

	"github.com/asifrahman/gradus/internal/domain"
)

// prodID identifies generated calendars.
const prodID = "-//Gradus Study Planner//EN"

// formatStamp renders a session timestamp in the zone-naive local form
// YYYYMMDDTHHMMSS, seconds forced to zero. Returns "" for an unusable
// timestamp so callers can skip the event.
func formatStamp(s domain.StudySession, end bool) string {
	t := s.Start
	if end {
		t = s.End
	}
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d%02d%02dT%02d%02d00",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// flatten collapses newlines so multi-line text stays on one ICS line.
func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ToICS serializes sessions as a portable VCALENDAR document with CRLF
// line endings. Sessions whose start or end cannot be resolved are
// silently skipped; malformed cached data must not break export.
func ToICS(sessions []domain.StudySession) string {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:" + prodID}
	for _, s := range sessions {
		start := formatStamp(s, false)
		end := formatStamp(s, true)
		if start == "" || end == "" {
			continue
		}
		title := s.Title
		if title == "" {
			title = "Study Session"
		}
		lines = append(lines, "BEGIN:VEVENT")
		lines = append(lines, "SUMMARY:"+flatten(title))
		if s.Description != "" {
			lines = append(lines, "DESCRIPTION:"+flatten(s.Description))
		}
		lines = append(lines, "DTSTART:"+start)
		lines = append(lines, "DTEND:"+end)
		lines = append(lines, "END:VEVENT")
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

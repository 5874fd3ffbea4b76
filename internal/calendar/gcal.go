package calendar

import (
	"net/url"

	"github.com/asifrahman/gradus/internal/domain"
)

const gcalRenderURL = "https://calendar.google.com/calendar/render"

// GoogleCalendarURL builds a pre-filled Google Calendar event link for one
// session: title, description, and a zone-naive local start/end range.
// Returns "" when either timestamp is invalid so the caller can hide the
// affordance instead of emitting a broken link.
func GoogleCalendarURL(s domain.StudySession) string {
	start := formatStamp(s, false)
	end := formatStamp(s, true)
	if start == "" || end == "" {
		return ""
	}

	title := s.Title
	if title == "" {
		title = "Study Session"
	}
	details := s.Description
	if details == "" {
		details = "Study session"
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("dates", start+"/"+end)
	q.Set("details", details)
	return gcalRenderURL + "?" + q.Encode()
}

package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(title string, start, end time.Time) domain.StudySession {
	return domain.StudySession{
		Title:       title,
		Start:       start,
		End:         end,
		Description: "Focused block for CSE111. Pomodoro 25×3 + recap.",
	}
}

func TestToICS_SingleEvent(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	s := session("Study: CSE111", start, start.Add(90*time.Minute))

	got := ToICS([]domain.StudySession{s})
	want := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Gradus Study Planner//EN",
		"BEGIN:VEVENT",
		"SUMMARY:Study: CSE111",
		"DESCRIPTION:Focused block for CSE111. Pomodoro 25×3 + recap.",
		"DTSTART:20250602T090000",
		"DTEND:20250602T103000",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")
	assert.Equal(t, want, got)
}

func TestToICS_InvalidSessionSkippedSilently(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	good := session("Study: CSE111", start, start.Add(time.Hour))
	broken := domain.StudySession{Title: "Study: MAT110"} // zero timestamps

	got := ToICS([]domain.StudySession{broken, good})
	assert.Equal(t, 1, strings.Count(got, "BEGIN:VEVENT"))
	assert.NotContains(t, got, "MAT110")
}

func TestToICS_NewlinesFlattened(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	s := session("Study:\nCSE111", start, start.Add(time.Hour))

	got := ToICS([]domain.StudySession{s})
	assert.Contains(t, got, "SUMMARY:Study: CSE111")
}

func TestToICS_EmptyPlanStillWellFormed(t *testing.T) {
	got := ToICS(nil)
	assert.True(t, strings.HasPrefix(got, "BEGIN:VCALENDAR"))
	assert.True(t, strings.HasSuffix(got, "END:VCALENDAR"))
	assert.NotContains(t, got, "VEVENT")
}

func TestGoogleCalendarURL_PrefilledLink(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	s := session("Study: CSE111", start, start.Add(time.Hour))

	link := GoogleCalendarURL(s)
	require.NotEmpty(t, link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Study: CSE111", q.Get("text"))
	assert.Equal(t, "20250602T090000/20250602T100000", q.Get("dates"))
	assert.NotEmpty(t, q.Get("details"))
}

func TestGoogleCalendarURL_InvalidTimestampYieldsNoLink(t *testing.T) {
	assert.Empty(t, GoogleCalendarURL(domain.StudySession{Title: "Study: CSE111"}))

	s := session("Study: CSE111", time.Time{}, time.Now())
	assert.Empty(t, GoogleCalendarURL(s))
}

func TestToXLSX_WritesWorkbook(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	plan := scheduler.Plan{
		Timezone: "Asia/Dhaka",
		Sessions: []domain.StudySession{
			session("Study: CSE111", start, start.Add(time.Hour)),
			{Title: "Study: MAT110"}, // invalid, skipped
		},
	}

	buf, filename, err := ToXLSX(plan)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
	assert.True(t, strings.HasPrefix(filename, "study-plan-"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
}

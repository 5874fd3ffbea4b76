package domain

import "time"

// StudySession is a scheduled, course-tagged study block. Sessions are
// produced fresh by each planning run and never persisted on their own;
// the chat thread caches the latest batch for display and export.
type StudySession struct {
	Title       string
	Start       time.Time
	End         time.Time
	Description string
}

// Valid reports whether both timestamps resolve to usable instants.
// Sessions rehydrated from a cached thread may carry zero times when the
// stored payload was malformed; exporters skip those silently.
func (s StudySession) Valid() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

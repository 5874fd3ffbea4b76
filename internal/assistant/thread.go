package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/scheduler"
)

// StoreVersion is the current thread store payload schema. Version 0 rows
// hold the legacy single-thread shape and are migrated on read.
const StoreVersion = 1

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const welcomeText = `Hi! I'm your study planning assistant.

Tell me your courses, deadlines, and available time. I can:
- build weekly study schedules
- break topics into bite-size tasks
- make exam countdown plans
- generate Pomodoro blocks

You can also record your class routine, course difficulty, and deadlines
with the routine, difficulty, and deadline commands. I'll plan around
your free time.`

const (
	defaultThreadTitle  = "New chat"
	importedThreadTitle = "Imported chat"
	titleMaxRunes       = 38
)

// Message is one chat turn.
type Message struct {
	ID      string    `json:"id"`
	Role    string    `json:"role"`
	TS      time.Time `json:"ts"`
	Content string    `json:"content"`
}

// PlanSession is the stored form of one scheduled study block.
type PlanSession struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Desc  string    `json:"desc"`
}

// LastPlan caches the most recent generated plan on a thread.
type LastPlan struct {
	Timezone string        `json:"tz"`
	Sessions []PlanSession `json:"sessions"`
}

// Meta carries the conversational state of a thread.
type Meta struct {
	AwaitingCGPA  bool      `json:"awaitingCgpa"`
	LastCGPA      *float64  `json:"lastCgpa"`
	PendingAction string    `json:"pendingAction"`
	LastSessions  *LastPlan `json:"lastSessions"`
}

// Thread is one conversation with its state.
type Thread struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Meta      Meta      `json:"meta"`
	Messages  []Message `json:"messages"`
}

// Store is a user's full chat history: ordered threads plus the current
// selection. Order is most recently touched first.
type Store struct {
	CurrentID string             `json:"currentId"`
	Order     []string           `json:"order"`
	Threads   map[string]*Thread `json:"threads"`
}

// NewWelcomeThread creates a fresh thread seeded with the greeting.
func NewWelcomeThread() *Thread {
	now := time.Now().UTC()
	return &Thread{
		ID:        uuid.New().String(),
		Title:     defaultThreadTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []Message{{
			ID:      uuid.New().String(),
			Role:    RoleAssistant,
			TS:      now,
			Content: welcomeText,
		}},
	}
}

// NewStore creates a store holding a single welcome thread.
func NewStore() *Store {
	t := NewWelcomeThread()
	return &Store{
		CurrentID: t.ID,
		Order:     []string{t.ID},
		Threads:   map[string]*Thread{t.ID: t},
	}
}

// Current returns the selected thread, falling back to the first ordered
// thread if the selection is stale.
func (s *Store) Current() *Thread {
	if t, ok := s.Threads[s.CurrentID]; ok {
		return t
	}
	for _, id := range s.Order {
		if t, ok := s.Threads[id]; ok {
			s.CurrentID = id
			return t
		}
	}
	t := NewWelcomeThread()
	s.CurrentID = t.ID
	s.Order = []string{t.ID}
	s.Threads = map[string]*Thread{t.ID: t}
	return t
}

// Touch marks a thread as most recently used.
func (s *Store) Touch(id string) {
	order := make([]string, 0, len(s.Order))
	order = append(order, id)
	for _, other := range s.Order {
		if other != id {
			order = append(order, other)
		}
	}
	s.Order = order
	if t, ok := s.Threads[id]; ok {
		t.UpdatedAt = time.Now().UTC()
	}
}

// NewThread starts a fresh thread and selects it.
func (s *Store) NewThread() *Thread {
	t := NewWelcomeThread()
	s.Threads[t.ID] = t
	s.Order = append([]string{t.ID}, s.Order...)
	s.CurrentID = t.ID
	return t
}

// EnsureFreshThread starts a new thread when the current one has already
// been used, so each chat session opens clean.
func (s *Store) EnsureFreshThread() {
	cur := s.Current()
	for _, m := range cur.Messages {
		if m.Role == RoleUser {
			s.NewThread()
			return
		}
	}
}

// DeleteThread removes a thread, guaranteeing at least one remains.
func (s *Store) DeleteThread(id string) {
	delete(s.Threads, id)
	order := s.Order[:0]
	for _, other := range s.Order {
		if other != id {
			order = append(order, other)
		}
	}
	s.Order = order
	if len(s.Order) == 0 {
		t := NewWelcomeThread()
		s.Threads[t.ID] = t
		s.Order = []string{t.ID}
		s.CurrentID = t.ID
		return
	}
	if s.CurrentID == id {
		s.CurrentID = s.Order[0]
	}
}

// AutoTitle names an untouched thread after the first user message.
func (t *Thread) AutoTitle(firstUserText string) {
	if t.Title != defaultThreadTitle && t.Title != importedThreadTitle {
		return
	}
	t.Title = TitleFrom(firstUserText)
}

// TitleFrom derives a short thread title from message text.
func TitleFrom(text string) string {
	if text == "" {
		return defaultThreadTitle
	}
	runes := []rune(text)
	if len(runes) > titleMaxRunes {
		runes = runes[:titleMaxRunes]
	}
	return string(runes)
}

// Append adds a message and returns it.
func (t *Thread) Append(role, content string) Message {
	m := Message{
		ID:      uuid.New().String(),
		Role:    role,
		TS:      time.Now().UTC(),
		Content: content,
	}
	t.Messages = append(t.Messages, m)
	t.UpdatedAt = m.TS
	return m
}

// FromPlan converts a scheduler plan to its stored form.
func FromPlan(plan scheduler.Plan) *LastPlan {
	sessions := make([]PlanSession, 0, len(plan.Sessions))
	for _, s := range plan.Sessions {
		sessions = append(sessions, PlanSession{
			Title: s.Title,
			Start: s.Start,
			End:   s.End,
			Desc:  s.Description,
		})
	}
	return &LastPlan{Timezone: plan.Timezone, Sessions: sessions}
}

// ToPlan converts a stored plan back to the scheduler shape.
func (p *LastPlan) ToPlan() scheduler.Plan {
	sessions := make([]domain.StudySession, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		sessions = append(sessions, domain.StudySession{
			Title:       s.Title,
			Start:       s.Start,
			End:         s.End,
			Description: s.Desc,
		})
	}
	return scheduler.Plan{Timezone: p.Timezone, Sessions: sessions}
}

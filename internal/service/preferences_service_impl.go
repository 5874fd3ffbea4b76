package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asifrahman/gradus/internal/domain"
	"github.com/asifrahman/gradus/internal/repository"
)

type preferencesService struct {
	prefs     repository.PreferencesRepo
	deadlines repository.DeadlineRepo
}

func NewPreferencesService(
	prefs repository.PreferencesRepo,
	deadlines repository.DeadlineRepo,
) PreferencesService {
	return &preferencesService{prefs: prefs, deadlines: deadlines}
}

func (s *preferencesService) Get(ctx context.Context, userID string) (*domain.RoutinePreferences, error) {
	return s.prefs.Get(ctx, userID)
}

func (s *preferencesService) SetTimezone(ctx context.Context, userID, tz string) error {
	if _, err := time.LoadLocation(tz); err != nil {
		return validationf("unknown timezone %q", tz)
	}
	current, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return err
	}
	return s.prefs.UpsertBase(ctx, userID, tz, current.MaxDailyHours)
}

func (s *preferencesService) SetMaxDailyHours(ctx context.Context, userID string, hours float64) error {
	if hours <= 0 || hours > 16 {
		return validationf("max daily hours must be between 0 and 16, got %g", hours)
	}
	current, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return err
	}
	return s.prefs.UpsertBase(ctx, userID, current.Timezone, hours)
}

func (s *preferencesService) AddRoutineEntry(ctx context.Context, userID, day, start, end, course string) (*domain.RoutineEntry, error) {
	weekday, ok := domain.ParseWeekday(day)
	if !ok {
		return nil, validationf("unknown weekday %q", day)
	}
	if err := domain.ValidateInterval(start, end); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	code := domain.CanonicalCode(course)
	if err := domain.ValidateCode(code); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	entry := &domain.RoutineEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Day:    weekday,
		Start:  start,
		End:    end,
		Course: code,
	}
	if err := s.prefs.AddRoutineEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *preferencesService) RemoveRoutineEntry(ctx context.Context, userID, id string) error {
	return s.prefs.DeleteRoutineEntry(ctx, userID, id)
}

func (s *preferencesService) AddStudyWindow(ctx context.Context, userID, daySelector, start, end string) (*domain.StudyWindow, error) {
	if err := domain.ValidateInterval(start, end); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	w := &domain.StudyWindow{
		ID:          uuid.New().String(),
		UserID:      userID,
		DaySelector: daySelector,
		Start:       start,
		End:         end,
	}
	if err := s.prefs.AddStudyWindow(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *preferencesService) RemoveStudyWindow(ctx context.Context, userID, id string) error {
	return s.prefs.DeleteStudyWindow(ctx, userID, id)
}

func (s *preferencesService) SetDifficulty(ctx context.Context, userID, course, tier string) error {
	if !domain.ValidDifficulties[tier] {
		return validationf("unknown difficulty tier %q", tier)
	}
	code := domain.CanonicalCode(course)
	if err := domain.ValidateCode(code); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return s.prefs.SetDifficulty(ctx, userID, code, domain.Difficulty(tier))
}

func (s *preferencesService) AddDeadline(ctx context.Context, userID, kind, course, title string, dueAt time.Time) (*domain.Deadline, error) {
	if !domain.ValidDeadlineKinds[kind] {
		return nil, validationf("unknown deadline type %q", kind)
	}
	code := domain.CanonicalCode(course)
	if err := domain.ValidateCode(code); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if dueAt.IsZero() {
		return nil, validationf("deadline needs a due time")
	}

	d := &domain.Deadline{
		ID:     uuid.New().String(),
		UserID: userID,
		Kind:   domain.DeadlineKind(kind),
		Course: code,
		Title:  title,
		DueAt:  dueAt,
	}
	if err := s.deadlines.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *preferencesService) ListDeadlines(ctx context.Context, userID string) ([]*domain.Deadline, error) {
	return s.deadlines.List(ctx, userID)
}

func (s *preferencesService) RemoveDeadline(ctx context.Context, userID, id string) error {
	return s.deadlines.Delete(ctx, userID, id)
}

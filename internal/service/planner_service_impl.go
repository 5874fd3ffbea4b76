package service

import (
	"context"
	"time"

	"github.com/asifrahman/gradus/internal/repository"
	"github.com/asifrahman/gradus/internal/scheduler"
)

type plannerService struct {
	prefs     repository.PreferencesRepo
	deadlines repository.DeadlineRepo
	plans     PlanStore
	observer  UseCaseObserver
}

func NewPlannerService(
	prefs repository.PreferencesRepo,
	deadlines repository.DeadlineRepo,
	plans PlanStore,
	observers ...UseCaseObserver,
) PlannerService {
	return &plannerService{
		prefs:     prefs,
		deadlines: deadlines,
		plans:     plans,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// BuildPlan assembles the study plan for the coming horizon and caches it
// as the user's last plan. An empty plan is a valid result; presentation
// decides what to show for it.
func (s *plannerService) BuildPlan(ctx context.Context, userID string, now time.Time, horizonDays int) (plan scheduler.Plan, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-build",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"horizon_days": horizonDays, "sessions": len(plan.Sessions)},
		})
	}()

	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return scheduler.Plan{}, err
	}
	upcoming, err := s.deadlines.ListUpcoming(ctx, userID, now)
	if err != nil {
		return scheduler.Plan{}, err
	}

	plan = scheduler.BuildSessions(*prefs, derefDeadlines(upcoming), now, horizonDays)
	if s.plans != nil {
		if err = s.plans.RecordPlan(ctx, userID, plan); err != nil {
			return scheduler.Plan{}, err
		}
	}
	return plan, nil
}

func (s *plannerService) LastPlan(ctx context.Context, userID string) (*scheduler.Plan, error) {
	if s.plans == nil {
		return nil, nil
	}
	return s.plans.LastPlan(ctx, userID)
}

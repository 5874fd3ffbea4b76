package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asifrahman/gradus/internal/remote"
	"github.com/asifrahman/gradus/internal/scheduler"
	"github.com/asifrahman/gradus/internal/service"
)

const planHorizonDays = 7

const maxRenderedSessions = 40

const exportHint = "\n\nExport it with gradus plan --ics or gradus plan --xlsx."

const emptyPlanText = "No sessions could be scheduled based on your routine. " +
	"Try widening your preferred hours or increasing max hours/day."

const setupGuideText = "I can plan around your free time. Record your class routine, " +
	"course difficulty, and deadlines first:\n\n" +
	"  gradus routine add mon 10:00 11:20 CSE110\n" +
	"  gradus difficulty set CSE110 hard\n" +
	"  gradus deadline add quiz CSE110 2025-06-12T10:00\n\n" +
	"Then say plan my week."

// Engine runs the chat loop: classify the message, walk the conversational
// state machine, and fall back to the remote backend and then local replies.
type Engine struct {
	classifier    *Classifier
	threads       *ThreadStore
	planner       service.PlannerService
	prefs         service.PreferencesService
	remote        remote.Client
	remoteEnabled bool
	now           func() time.Time
}

func NewEngine(threads *ThreadStore, planner service.PlannerService, prefs service.PreferencesService, remoteClient remote.Client, remoteEnabled bool) *Engine {
	return &Engine{
		classifier:    NewClassifier(),
		threads:       threads,
		planner:       planner,
		prefs:         prefs,
		remote:        remoteClient,
		remoteEnabled: remoteEnabled,
		now:           time.Now,
	}
}

// OpenSession prepares the user's store for an interactive chat: when the
// current thread was already used, a fresh one is started. Returns the
// messages of the active thread.
func (e *Engine) OpenSession(ctx context.Context, userKey string) ([]Message, error) {
	store, err := e.threads.Load(ctx, userKey)
	if err != nil {
		return nil, err
	}
	store.EnsureFreshThread()
	if err := e.threads.Save(ctx, userKey, store); err != nil {
		return nil, err
	}
	return store.Current().Messages, nil
}

// Send processes one user message and returns the assistant's reply.
func (e *Engine) Send(ctx context.Context, userKey, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", nil
	}

	store, err := e.threads.Load(ctx, userKey)
	if err != nil {
		return "", err
	}
	cur := store.Current()
	store.Touch(cur.ID)
	cur.AutoTitle(content)
	cur.Append(RoleUser, content)

	reply, err := e.respond(ctx, userKey, cur, content)
	if err != nil {
		return "", err
	}
	cur.Append(RoleAssistant, reply)
	if err := e.threads.Save(ctx, userKey, store); err != nil {
		return "", err
	}
	return reply, nil
}

func (e *Engine) respond(ctx context.Context, userKey string, cur *Thread, content string) (string, error) {
	meta := &cur.Meta

	// A confirmed pending action runs its plan.
	if meta.PendingAction != "" && IsAffirmative(content) {
		plan, err := e.runPendingAction(ctx, userKey, cur, meta.PendingAction)
		if err != nil {
			return "", err
		}
		if plan != "" {
			meta.PendingAction = ""
			return plan, nil
		}
	}

	// A CGPA we asked for earlier.
	if meta.AwaitingCGPA {
		if g, ok := ExtractCGPA(content); ok {
			return e.motivate(meta, g), nil
		}
		return "Got it, could you share your current CGPA (0.00-4.00)?", nil
	}

	intent := e.classifier.Predict(content)

	// CGPA satisfaction entry points.
	if intent == IntentCgpaDissatisfied || intent == IntentCgpaSatisfied {
		if g, ok := ExtractCGPA(content); ok {
			return e.motivate(meta, g), nil
		}
		meta.AwaitingCGPA = true
		return "I hear you. What's your current CGPA (0.00-4.00)? I'll tailor some encouragement and a plan around it.", nil
	}

	// A CGPA shared inline.
	if g, ok := ExtractCGPA(content); ok && MentionsCGPA(content) {
		return e.motivate(meta, g), nil
	}

	if intent == IntentPlanRequest {
		hasData, err := e.hasPlanningData(ctx, userKey)
		if err != nil {
			return "", err
		}
		if hasData {
			return e.buildPlanReply(ctx, userKey, cur)
		}
		meta.PendingAction = ActionPlanFromPrefs
		return setupGuideText, nil
	}

	if reply := e.remoteReply(ctx, cur); reply != "" {
		return reply, nil
	}

	switch intent {
	case IntentGreeting:
		return "Hello! How can I help you with your study planner today?", nil
	case IntentHowAreYou:
		return "I'm doing well, thanks! How are you feeling about your studies today?", nil
	case IntentThanks:
		return "You're welcome! Want me to draft a plan around your routine?", nil
	case IntentFarewell:
		return "Bye for now! Keep going, small steps add up.", nil
	default:
		return FallbackPlanReply(content), nil
	}
}

func (e *Engine) motivate(meta *Meta, cgpa float64) string {
	text, action := MotivationReply(cgpa)
	meta.AwaitingCGPA = false
	meta.LastCGPA = &cgpa
	meta.PendingAction = action
	return text
}

func (e *Engine) runPendingAction(ctx context.Context, userKey string, cur *Thread, action string) (string, error) {
	if action == ActionPlanFromPrefs {
		return e.buildPlanReply(ctx, userKey, cur)
	}
	return CannedPlan(action), nil
}

func (e *Engine) hasPlanningData(ctx context.Context, userKey string) (bool, error) {
	prefs, err := e.prefs.Get(ctx, userKey)
	if err != nil {
		return false, err
	}
	if len(prefs.Routine) > 0 {
		return true, nil
	}
	deadlines, err := e.prefs.ListDeadlines(ctx, userKey)
	if err != nil {
		return false, err
	}
	return len(deadlines) > 0, nil
}

func (e *Engine) buildPlanReply(ctx context.Context, userKey string, cur *Thread) (string, error) {
	plan, err := e.planner.BuildPlan(ctx, userKey, e.now(), planHorizonDays)
	if err != nil {
		return "", err
	}
	// The planner already persisted the plan through the shared store; the
	// in-memory copy gets the same value so the save below does not roll
	// it back.
	cur.Meta.LastSessions = FromPlan(plan)
	return RenderSessions(plan) + exportHint, nil
}

func (e *Engine) remoteReply(ctx context.Context, cur *Thread) string {
	if !e.remoteEnabled || e.remote == nil {
		return ""
	}
	history := make([]remote.Message, 0, len(cur.Messages))
	for _, m := range cur.Messages {
		history = append(history, remote.Message{Role: m.Role, Content: m.Content})
	}
	reply, err := e.remote.Chat(ctx, history)
	if err != nil {
		return ""
	}
	return reply
}

// RenderSessions formats a plan as chat text, one line per session.
func RenderSessions(plan scheduler.Plan) string {
	if len(plan.Sessions) == 0 {
		return emptyPlanText
	}
	// Session times are already local wall-clock values. The preferences
	// timezone is a display tag, never a conversion target.
	var b strings.Builder
	b.WriteString("7-Day Study Plan (fits your free time)\n")
	sessions := plan.Sessions
	if len(sessions) > maxRenderedSessions {
		sessions = sessions[:maxRenderedSessions]
	}
	for _, s := range sessions {
		fmt.Fprintf(&b, "- %s to %s: %s\n",
			s.Start.Format("Mon Jan 2 15:04"),
			s.End.Format("15:04"),
			s.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
